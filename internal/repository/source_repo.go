// internal/repository/source_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"networth-tracker/internal/domain"
)

// SourceRepository defines the interface for financial source data operations.
// Read, update and delete are scoped to the owning user: a source that
// exists but belongs to someone else is reported as not found.
type SourceRepository interface {
	// Create adds a new financial source using the provided DBExecutor.
	Create(ctx context.Context, q DBExecutor, source *domain.FinancialSource) error
	// GetByID retrieves a source by id, scoped to userID.
	GetByID(ctx context.Context, q DBExecutor, userID, id uuid.UUID) (*domain.FinancialSource, error)
	// ListByUser retrieves all of a user's sources ordered by name ascending.
	ListByUser(ctx context.Context, q DBExecutor, userID uuid.UUID) ([]domain.FinancialSource, error)
	// ListActiveByUser retrieves the user's active sources ordered by name ascending.
	ListActiveByUser(ctx context.Context, q DBExecutor, userID uuid.UUID) ([]domain.FinancialSource, error)
	// Update persists the mutable fields of a source, scoped to its owner.
	Update(ctx context.Context, q DBExecutor, source *domain.FinancialSource) error
	// Delete removes a source, scoped to userID. Associated updates must
	// already have been removed by the caller.
	Delete(ctx context.Context, q DBExecutor, userID, id uuid.UUID) error
}
