// Package config manages application configuration for the phonebook API.
//
// Configuration is read from environment variables. A .env file in the
// working directory, when present, is loaded first; variables already set in
// the process environment take precedence over the file.
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//
// # Environment Variables
//
//	PORT                    - HTTP server port (default: 3001)
//	SERVER_ENV              - development, production or test (default: development)
//	CORS_ALLOWED_ORIGINS    - comma separated origins (default: *)
//	STATIC_DIR              - directory of the built frontend (default: build)
//	LOG_LEVEL               - debug, info, warn or error (default: info)
//	DB_DRIVER               - surrealdb or memory (default: surrealdb)
//	DB_HOST, DB_PORT        - SurrealDB address (default: localhost:8000)
//	DB_NAMESPACE            - SurrealDB namespace (default: phonebook)
//	DB_DATABASE             - SurrealDB database (default: main)
//	DB_USER, DB_PASSWORD    - SurrealDB root credentials
//	DB_AUTO_MIGRATE         - apply the bundled table definitions on startup (default: true)
//	METRICS_ENABLED         - expose /metrics (default: true)
//	METRICS_SAMPLE_INTERVAL - how often the phonebook size gauge is refreshed (default: 1m)
package config
