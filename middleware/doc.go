/*
Package middleware provides HTTP middleware and JSON helpers for the
ActionFlow API.

# Middleware

  - CORS: permissive cross-origin headers on every response; answers
    preflight OPTIONS requests with a bare 200
  - WithLogging: structured request start/completion logging via slog

# JSON Helpers

  - JSONResponse: writes a JSON body with the given status
  - ErrorResponse: writes {"error": message}
  - ParseJSONBody: decodes a request body into a struct
*/
package middleware
