// internal/repository/update_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"networth-tracker/internal/domain"
)

// UpdateRepository defines the interface for balance update data operations.
type UpdateRepository interface {
	// Create adds a new balance update using the provided DBExecutor.
	Create(ctx context.Context, q DBExecutor, update *domain.SourceUpdate) error
	// GetByID retrieves an update by id, scoped to its source.
	GetByID(ctx context.Context, q DBExecutor, sourceID, id uuid.UUID) (*domain.SourceUpdate, error)
	// ListBySource retrieves all updates for one source ordered by
	// observation date descending, then creation timestamp descending.
	ListBySource(ctx context.Context, q DBExecutor, sourceID uuid.UUID) ([]domain.SourceUpdate, error)
	// ListBySources retrieves updates across several sources ordered by
	// observation date ascending, then creation timestamp ascending.
	// A non-empty since restricts to observation dates >= since
	// (domain.DateLayout). An empty sourceIDs slice yields no rows.
	ListBySources(ctx context.Context, q DBExecutor, sourceIDs []uuid.UUID, since string) ([]domain.SourceUpdate, error)
	// Update persists the mutable fields of an update.
	Update(ctx context.Context, q DBExecutor, update *domain.SourceUpdate) error
	// Delete removes a single update.
	Delete(ctx context.Context, q DBExecutor, id uuid.UUID) error
	// DeleteBySource removes every update belonging to a source, as the
	// first half of the explicit source-delete cascade.
	DeleteBySource(ctx context.Context, q DBExecutor, sourceID uuid.UUID) error
}
