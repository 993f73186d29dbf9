// Package server holds the configuration for the read-only catalog
// HTTP server. The server itself is assembled in cmd/start.go from the
// fiber app, the middleware stack, and the feature loader.
package server
