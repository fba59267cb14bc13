// Package config loads and validates users API configuration.
//
// # Sources
//
// Later sources override earlier ones:
//
//  1. Built-in defaults
//  2. config/default.*, config/local.*, config/{APP_ENVIRONMENT}.* (any
//     format viper reads; each file optional)
//  3. The file passed with --config
//  4. Environment variables prefixed APP_, with "__" separating sections:
//     APP_SERVER__PORT, APP_LOGGING__LEVEL, APP_CORS__ORIGINS (comma
//     separated) and so on
//
// # Reloading
//
// Watcher observes the merged files and hands a freshly loaded, validated
// Config to its callback. The server uses this to change log verbosity
// without a restart; other settings take effect on the next start.
package config
