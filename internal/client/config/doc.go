// Package config loads runtime configuration for the recipe CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with a .env file loaded first (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   path of the SQLite session store
//	-t int      request timeout (seconds)
//
// # Environment
//
// The loader reads RECETTES_ENDPOINT, RECETTES_DB and RECETTES_TIMEOUT
// (a Go duration string such as "10s"). A .env file in the working directory
// is applied first and never overrides variables already set in the process.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "500ms" or integer nanoseconds:
//
//	{
//	  "server_endpoint_url": "http://127.0.0.1:8000/api",
//	  "database_path": "recettes.db",
//	  "request_timeout": "10s",
//	  "search_debounce": "500ms"
//	}
package config
