// Package config loads the application configuration from environment
// variables and an optional .env file.
//
// Configuration is split into sections owned by the packages that consume
// them (database, logger, server, sprite). Defaults come from `default`
// struct tags, discovered by reflection and registered with viper so that
// AutomaticEnv picks up nested keys like DATABASE_HOST or SPRITE_ROOT.
package config
