/*
Package main provides the entry point for the ActionFlow API server.

ActionFlow is a task-tracking service: users authenticate, then manage two
kinds of dated action items (resource actions, which carry an assignee, and
activity actions, which do not) scoped to their account.

# Starting the Server

The server runs on an embedded SQLite database and needs no external
services:

	go run main.go

Or with flags:

	go run main.go -p 3001 -d data/actionflow.db

# Configuration

Optional settings (flags override environment variables; a .env file is
loaded if present):

  - PORT (-p): server port (default: 3001)
  - DB_PATH (-d): SQLite database file path (default: data/actionflow.db)

On first run the server creates the schema and seeds a demo account
(demo@actionflow.com / demo123) with example action items.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, action items)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - store: Storage adapter over database/sql
  - auth: Password hashing and id generation
  - db: Schema creation and demo seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
