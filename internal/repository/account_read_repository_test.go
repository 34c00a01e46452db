package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/silverbank/account-service/internal/models"
)

func newReadRepoWithMock(t *testing.T) (*AccountReadRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	// nil Redis client: cache disabled, every read hits Postgres
	return NewAccountReadRepository(db, nil), mock, db
}

func TestReadGetByID_Found(t *testing.T) {
	repo, mock, db := newReadRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "address", "phone_number", "date_joined"}).
		AddRow(int64(3), "Alice", "alice@x.com", "2 High St", "555-2222", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`SELECT id, name, email, address, phone_number, date_joined`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	account, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if account.ID != 3 || account.Email != "alice@x.com" || account.DateJoined.String() != "2026-01-02" {
		t.Errorf("unexpected account: %+v", account)
	}
}

func TestReadGetByID_NotFound(t *testing.T) {
	repo, mock, db := newReadRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email, address, phone_number, date_joined`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestList_ReturnsAllInOrder(t *testing.T) {
	repo, mock, db := newReadRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "address", "phone_number", "date_joined"}).
		AddRow(int64(1), "Alice", "alice@x.com", "2 High St", "555-2222", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)).
		AddRow(int64(2), "Bob", "bob@x.com", "1 Main St", "555-1111", time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`SELECT id, name, email, address, phone_number, date_joined`).
		WillReturnRows(rows)

	accounts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].ID != 1 || accounts[1].ID != 2 {
		t.Errorf("unexpected order: %+v", accounts)
	}
}

func TestList_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newReadRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email, address, phone_number, date_joined`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "phone_number", "date_joined"}))

	accounts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if accounts == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(accounts) != 0 {
		t.Errorf("expected 0 accounts, got %d", len(accounts))
	}
}
