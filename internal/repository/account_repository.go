package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/silverbank/account-service/internal/models"
)

// AccountWriteRepository handles all state-mutating operations for accounts.
// It operates exclusively against the PostgreSQL write store (source of truth).
type AccountWriteRepository struct {
	db *sql.DB
}

func NewAccountWriteRepository(db *sql.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// Insert stores a new account and assigns its generated id.
func (r *AccountWriteRepository) Insert(account *models.Account) error {
	query := `
		INSERT INTO accounts (name, email, address, phone_number, date_joined)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(query,
		account.Name, account.Email, account.Address,
		account.PhoneNumber, account.DateJoined,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *AccountWriteRepository) GetByID(id int64) (*models.Account, error) {
	query := `
		SELECT id, name, email, address, phone_number, date_joined
		FROM accounts
		WHERE id = $1
	`
	var account models.Account
	err := r.db.QueryRow(query, id).Scan(
		&account.ID, &account.Name, &account.Email,
		&account.Address, &account.PhoneNumber, &account.DateJoined,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// Update replaces every mutable field of an existing account.
func (r *AccountWriteRepository) Update(account *models.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, email = $3, address = $4, phone_number = $5, date_joined = $6
		WHERE id = $1
	`
	result, err := r.db.Exec(query,
		account.ID, account.Name, account.Email,
		account.Address, account.PhoneNumber, account.DateJoined,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}

func (r *AccountWriteRepository) Delete(id int64) error {
	query := `DELETE FROM accounts WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}
