package query

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/silverbank/account-service/internal/cqrs"
	"github.com/silverbank/account-service/internal/models"
	"github.com/silverbank/account-service/internal/repository"
)

func newServiceWithMock(t *testing.T) (*AccountQueryService, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewAccountQueryService(repository.NewAccountReadRepository(db, nil)), mock, db
}

func TestGetAccount(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "address", "phone_number", "date_joined"}).
		AddRow(int64(5), "Carol", "carol@x.com", "5 Elm St", "555-3333", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`SELECT id, name, email, address, phone_number, date_joined`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	account, err := svc.GetAccount(cqrs.GetAccountQuery{AccountID: 5})
	if err != nil {
		t.Fatalf("GetAccount error: %v", err)
	}
	if account.ID != 5 || account.Name != "Carol" {
		t.Errorf("unexpected account: %+v", account)
	}
}

func TestGetAccount_NotFound(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email, address, phone_number, date_joined`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.GetAccount(cqrs.GetAccountQuery{AccountID: 99})
	if !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestListAccounts(t *testing.T) {
	svc, mock, db := newServiceWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "address", "phone_number", "date_joined"}).
		AddRow(int64(1), "Alice", "alice@x.com", "2 High St", "555-2222", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`SELECT id, name, email, address, phone_number, date_joined`).
		WillReturnRows(rows)

	accounts, err := svc.ListAccounts(cqrs.ListAccountsQuery{})
	if err != nil {
		t.Fatalf("ListAccounts error: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
}
