// Package config loads seeding configuration from environment variables.
//
// # Configuration Groups
//
//   - DatabaseConfig: SurrealDB connection settings
//   - SeedConfig: how many records to create and from which factories
//   - LogConfig: slog level
//
// # Environment Variables
//
//	DB_HOST          - SurrealDB host (default: localhost)
//	DB_PORT          - SurrealDB port (default: 8000)
//	DB_NAMESPACE     - Namespace (default: forge)
//	DB_DATABASE      - Database (default: fixtures)
//	DB_USER          - Root user (default: root)
//	DB_PASSWORD      - Root password (default: root)
//	SEED_COUNT       - Records per factory (default: 10)
//	SEED_FACTORIES   - Comma separated factory names (default: user,guild)
//	SEED_TIMEOUT     - Overall deadline (default: 30s)
//	LOG_LEVEL        - debug, info, warn or error (default: info)
package config
