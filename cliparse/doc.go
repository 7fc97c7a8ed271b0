// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse loads the server configuration.

# Layers

Load merges, from lowest to highest precedence:

  - built-in defaults
  - a YAML file named by RESULTS_CONFIG (optional)
  - environment variables
  - command-line flags

	cfg, err := cliparse.Load(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminAccessKey, AdminPassword: admin login credentials (required)
  - TokenSecret: HMAC key for admin bearer tokens (required)
  - TokenTTL: admin session lifetime (default: 12h)
  - LogLevel: debug, info, warn or error (default: info)
  - CORSOrigin: allowed origin; empty echoes the request Origin

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-log-level       Log level
	-cors-origin     Allowed CORS origin
	-admin-key       Admin access key
	-admin-password  Admin password
	-token-secret    Token signing secret
	-token-ttl       Admin session lifetime

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, ADMIN_ACCESS_KEY, ADMIN_PASSWORD,
	TOKEN_SECRET, TOKEN_TTL, LOG_LEVEL, CORS_ORIGIN

YAML keys use the same names in lower case.
*/
package cliparse
