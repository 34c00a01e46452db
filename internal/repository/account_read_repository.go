package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/silverbank/account-service/internal/models"
	accountredis "github.com/silverbank/account-service/internal/redis"
)

const accountKeyPrefix = "account:view:"

// AccountReadRepository handles all read operations for accounts. It treats
// Redis as the read model store and falls back to PostgreSQL transparently,
// warming the cache on every cold read. Constructed with a nil Redis client
// it serves every read straight from PostgreSQL.
type AccountReadRepository struct {
	db    *sql.DB
	cache *accountredis.ViewCache[models.Account]
}

func NewAccountReadRepository(db *sql.DB, redisClient *goredis.Client) *AccountReadRepository {
	r := &AccountReadRepository{db: db}
	if redisClient != nil {
		r.cache = accountredis.NewViewCache[models.Account](redisClient, 0)
	}
	return r
}

func accountKey(id int64) string {
	return fmt.Sprintf("%s%d", accountKeyPrefix, id)
}

// GetByID returns an account, trying Redis first then PostgreSQL.
func (r *AccountReadRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	if r.cache != nil {
		if account, ok := r.cache.Get(ctx, accountKey(id)); ok {
			return account, nil
		}
	}

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

	r.CacheAccount(ctx, &account)
	return &account, nil
}

// List returns every account from PostgreSQL in id order.
// The result is never nil so an empty store serialises as [].
func (r *AccountReadRepository) List(ctx context.Context) ([]models.Account, error) {
	query := `
		SELECT id, name, email, address, phone_number, date_joined
		FROM accounts
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID, &account.Name, &account.Email,
			&account.Address, &account.PhoneNumber, &account.DateJoined,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// CacheAccount stores or refreshes the Redis entry for an account.
// Called by the command service after every mutation to keep the read model current.
func (r *AccountReadRepository) CacheAccount(ctx context.Context, account *models.Account) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, accountKey(account.ID), account)
}

// InvalidateAccount removes the Redis entry for a deleted account.
func (r *AccountReadRepository) InvalidateAccount(ctx context.Context, id int64) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, accountKey(id))
}
