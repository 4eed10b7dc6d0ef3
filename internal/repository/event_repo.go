// internal/repository/event_repo.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"networth-tracker/internal/domain"
)

// EventRepository defines the interface for net worth event data operations.
// Events are append-only: there is no update method.
type EventRepository interface {
	// Create appends a new net worth event using the provided DBExecutor.
	Create(ctx context.Context, q DBExecutor, event *domain.NetWorthEvent) error
	// GetByID retrieves an event by id, scoped to userID.
	GetByID(ctx context.Context, q DBExecutor, userID, id uuid.UUID) (*domain.NetWorthEvent, error)
	// ListByUser retrieves a user's events ordered by event_date
	// ascending, at most limit rows. A non-nil since restricts to
	// event_date >= since.
	ListByUser(ctx context.Context, q DBExecutor, userID uuid.UUID, since *time.Time, limit int) ([]domain.NetWorthEvent, error)
	// Latest retrieves the user's most recent event by event_date.
	Latest(ctx context.Context, q DBExecutor, userID uuid.UUID) (*domain.NetWorthEvent, error)
	// Delete removes an event, scoped to userID.
	Delete(ctx context.Context, q DBExecutor, userID, id uuid.UUID) error
}
