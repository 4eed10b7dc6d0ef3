// internal/domain/event.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType records why a net worth snapshot was taken.
type EventType string

const (
	EventTypeBalanceUpdate EventType = "BALANCE_UPDATE"
	EventTypeSourceAdded   EventType = "FINANCIAL_SOURCE_ADDED"
	EventTypeSourceDeleted EventType = "FINANCIAL_SOURCE_DELETED"
	EventTypeManual        EventType = "MANUAL"
)

// Valid reports whether t is one of the allowed event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeBalanceUpdate, EventTypeSourceAdded, EventTypeSourceDeleted, EventTypeManual:
		return true
	}
	return false
}

// NetWorthEvent is a persisted snapshot of a user's net worth at a
// point in time. Events are append-only: once written they are never
// updated, only deleted by their owner.
type NetWorthEvent struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	UserID    uuid.UUID       `db:"user_id" json:"user_id"`
	NetWorth  decimal.Decimal `db:"net_worth" json:"net_worth"` // NUMERIC(15, 2) in DB
	EventType EventType       `db:"event_type" json:"event_type"`
	EventDate time.Time       `db:"event_date" json:"event_date"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// NewNetWorthEvent creates a new NetWorthEvent instance. A zero
// eventDate defaults to now.
func NewNetWorthEvent(userID uuid.UUID, netWorth decimal.Decimal, eventType EventType, eventDate time.Time) *NetWorthEvent {
	now := time.Now().UTC()
	if eventDate.IsZero() {
		eventDate = now
	}
	return &NetWorthEvent{
		ID:        uuid.New(),
		UserID:    userID,
		NetWorth:  netWorth,
		EventType: eventType,
		EventDate: eventDate,
		CreatedAt: now,
	}
}
