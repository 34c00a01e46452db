package models

import "errors"

// ErrAccountNotFound indicates that no account exists with the requested id.
var ErrAccountNotFound = errors.New("account not found")

// Account is the customer record persisted in the accounts table.
// ID is assigned by PostgreSQL on insert and is immutable afterwards.
type Account struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	DateJoined  Date   `json:"date_joined"`
}
