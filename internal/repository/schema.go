package repository

import (
	"database/sql"
	"fmt"
)

const accountsSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	address TEXT NOT NULL,
	phone_number TEXT NOT NULL,
	date_joined DATE NOT NULL DEFAULT CURRENT_DATE
)`

// EnsureSchema creates the accounts table if it does not already exist.
// Safe to run on every startup.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(accountsSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
