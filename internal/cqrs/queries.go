package cqrs

// GetAccountQuery fetches a single account by id.
type GetAccountQuery struct {
	AccountID int64
}

// ListAccountsQuery fetches every account in the store.
type ListAccountsQuery struct{}
