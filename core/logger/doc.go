// Package logger provides the zap-based logging setup for modhangar.
//
// CLI commands use console encoding so import and cleanup output stays
// readable; the catalog server switches to json for structured shipping.
// Helpers attach correlation fields: WithRayID for HTTP requests and
// WithRun for ingestion runs.
package logger
