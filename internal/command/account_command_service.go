package command

import (
	"context"
	"errors"
	"log"

	"github.com/silverbank/account-service/internal/cqrs"
	"github.com/silverbank/account-service/internal/events"
	"github.com/silverbank/account-service/internal/models"
	"github.com/silverbank/account-service/internal/repository"
)

// AccountCommandService writes account state and keeps the read model in sync.
type AccountCommandService struct {
	writeRepo *repository.AccountWriteRepository
	readRepo  *repository.AccountReadRepository
	publisher *events.Publisher
}

// NewAccountCommandService wires the write path. publisher may be nil when
// Redis is disabled; events are then skipped entirely.
func NewAccountCommandService(
	writeRepo *repository.AccountWriteRepository,
	readRepo *repository.AccountReadRepository,
	publisher *events.Publisher,
) *AccountCommandService {
	return &AccountCommandService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
		publisher: publisher,
	}
}

// CreateAccount inserts a new account. A missing join date defaults to today.
func (s *AccountCommandService) CreateAccount(cmd cqrs.CreateAccountCommand) (*models.Account, error) {
	account := &models.Account{
		Name:        cmd.Name,
		Email:       cmd.Email,
		Address:     cmd.Address,
		PhoneNumber: cmd.PhoneNumber,
		DateJoined:  cmd.DateJoined,
	}
	if account.DateJoined.IsZero() {
		account.DateJoined = models.Today()
	}
	if err := s.writeRepo.Insert(account); err != nil {
		return nil, err
	}
	ctx := context.Background()
	s.readRepo.CacheAccount(ctx, account)
	s.publish(ctx, events.AccountCreated, events.AccountCreatedEvent{
		AccountID: account.ID,
		Name:      account.Name,
		Email:     account.Email,
	})
	return account, nil
}

// UpdateAccount replaces every field of an existing account. A missing join
// date keeps the stored value.
func (s *AccountCommandService) UpdateAccount(cmd cqrs.UpdateAccountCommand) (*models.Account, error) {
	account, err := s.writeRepo.GetByID(cmd.AccountID)
	if err != nil {
		return nil, err
	}
	account.Name = cmd.Name
	account.Email = cmd.Email
	account.Address = cmd.Address
	account.PhoneNumber = cmd.PhoneNumber
	if !cmd.DateJoined.IsZero() {
		account.DateJoined = cmd.DateJoined
	}
	if err := s.writeRepo.Update(account); err != nil {
		return nil, err
	}
	ctx := context.Background()
	s.readRepo.CacheAccount(ctx, account)
	s.publish(ctx, events.AccountUpdated, events.AccountUpdatedEvent{
		AccountID: account.ID,
		Name:      account.Name,
	})
	return account, nil
}

// DeleteAccount removes an account if it exists. Deleting an unknown id is a
// no-op, not an error: DELETE is idempotent at the API level.
func (s *AccountCommandService) DeleteAccount(cmd cqrs.DeleteAccountCommand) error {
	if err := s.writeRepo.Delete(cmd.AccountID); err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return nil
		}
		return err
	}
	ctx := context.Background()
	s.readRepo.InvalidateAccount(ctx, cmd.AccountID)
	s.publish(ctx, events.AccountDeleted, events.AccountDeletedEvent{
		AccountID: cmd.AccountID,
	})
	return nil
}

func (s *AccountCommandService) publish(ctx context.Context, eventType string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.AccountEventsStream, eventType, data); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
