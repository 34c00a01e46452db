package query

import (
	"context"

	"github.com/silverbank/account-service/internal/cqrs"
	"github.com/silverbank/account-service/internal/models"
	"github.com/silverbank/account-service/internal/repository"
)

type AccountQueryService struct {
	readRepo *repository.AccountReadRepository
}

func NewAccountQueryService(readRepo *repository.AccountReadRepository) *AccountQueryService {
	return &AccountQueryService{readRepo: readRepo}
}

// GetAccount fetches a single account by id.
func (s *AccountQueryService) GetAccount(q cqrs.GetAccountQuery) (*models.Account, error) {
	return s.readRepo.GetByID(context.Background(), q.AccountID)
}

// ListAccounts fetches every account in id order.
func (s *AccountQueryService) ListAccounts(q cqrs.ListAccountsQuery) ([]models.Account, error) {
	return s.readRepo.List(context.Background())
}
