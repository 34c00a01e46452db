package events

import "time"

// Event types
const (
	AccountCreated = "account.created"
	AccountUpdated = "account.updated"
	AccountDeleted = "account.deleted"
)

// AccountEventsStream is the Redis stream account lifecycle events are published to.
const AccountEventsStream = "account.events"

// Event is the envelope written to the stream.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type AccountCreatedEvent struct {
	AccountID int64  `json:"accountId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type AccountUpdatedEvent struct {
	AccountID int64  `json:"accountId"`
	Name      string `json:"name"`
}

type AccountDeletedEvent struct {
	AccountID int64 `json:"accountId"`
}
