package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT UNIQUE NOT NULL,
    password TEXT NOT NULL,
    name TEXT NOT NULL
);

-- Resource actions
CREATE TABLE IF NOT EXISTS resource_actions (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    section TEXT NOT NULL,
    dueDate TEXT NOT NULL,
    status TEXT NOT NULL,
    assignee TEXT NOT NULL,
    completedAt TEXT,
    createdAt TEXT NOT NULL,
    userId TEXT NOT NULL,
    FOREIGN KEY (userId) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_resource_actions_userId ON resource_actions(userId);

-- Activity actions
CREATE TABLE IF NOT EXISTS activity_actions (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    section TEXT NOT NULL,
    dueDate TEXT NOT NULL,
    status TEXT NOT NULL,
    completedAt TEXT,
    createdAt TEXT NOT NULL,
    userId TEXT NOT NULL,
    FOREIGN KEY (userId) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_activity_actions_userId ON activity_actions(userId);
`
