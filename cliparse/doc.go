/*
Package cliparse parses configuration for the ActionFlow API server.

Settings come from CLI flags first, then environment variables:

  - PORT (-p): server port (default: 3001)
  - DB_PATH (-d): SQLite database file path (default: data/actionflow.db)

A .env file in the working directory is loaded by main before parsing.
*/
package cliparse
