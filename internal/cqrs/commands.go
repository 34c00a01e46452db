package cqrs

import "github.com/silverbank/account-service/internal/models"

type CreateAccountCommand struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  models.Date
}

type UpdateAccountCommand struct {
	AccountID   int64
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  models.Date
}

type DeleteAccountCommand struct {
	AccountID int64
}
