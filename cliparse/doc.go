/*
Package cliparse handles configuration from flags, environment variables,
and an optional .env file (loaded via godotenv).

# Precedence

Flags win over environment variables; .env entries are loaded into the
environment before reading it, so real environment variables win over .env.

# Keys

	-p       / PORT            server port (default 8080)
	-d       / DATABASE_URL    database URL (required for postgres)
	-t       / DATABASE_TYPE   sqlite (default) or postgres
	-origin  / ALLOWED_ORIGIN  websocket origin allow-list entry (default *)

The sqlite engine defaults its URL to file:livepoll.db so the server can
run with zero configuration in development. The change-feed backstop is
available on postgres only.
*/
package cliparse
