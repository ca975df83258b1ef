/*
Package db owns the SQLite schema and first-run seeding for the ActionFlow
API.

CreateSchema creates the users, resource_actions, and activity_actions tables
and their owner indexes. All statements use IF NOT EXISTS, so it runs on every
startup.

Seed populates a fresh database with one demo user and a handful of example
resource and activity actions. Seeding only happens when the users table is
empty, which keeps it idempotent across restarts.
*/
package db
