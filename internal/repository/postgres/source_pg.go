// internal/repository/postgres/source_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"networth-tracker/internal/domain"
	"networth-tracker/internal/repository"
	"networth-tracker/internal/util"
)

// SourceRepository implements repository.SourceRepository for PostgreSQL.
type SourceRepository struct {
	// Methods receive a DBExecutor directly, so no *sqlx.DB is held here.
}

// NewSourceRepository creates a new SourceRepository.
func NewSourceRepository(db *sqlx.DB) repository.SourceRepository {
	return &SourceRepository{}
}

const sourceColumns = `id, user_id, name, type, institution, description, color_code, is_active, created_at, updated_at`

// Create inserts a new financial source using the provided DBExecutor.
func (r *SourceRepository) Create(ctx context.Context, q repository.DBExecutor, source *domain.FinancialSource) error {
	query := `INSERT INTO financial_sources (id, user_id, name, type, institution, description, color_code, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := q.ExecContext(ctx, query,
		source.ID,
		source.UserID,
		source.Name,
		source.Type,
		source.Institution,
		source.Description,
		source.ColorCode,
		source.IsActive,
		source.CreatedAt,
		source.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create financial source: %w", err)
	}
	return nil
}

// GetByID retrieves a financial source by id, scoped to its owner.
func (r *SourceRepository) GetByID(ctx context.Context, q repository.DBExecutor, userID, id uuid.UUID) (*domain.FinancialSource, error) {
	var source domain.FinancialSource
	query := `SELECT ` + sourceColumns + ` FROM financial_sources WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &source, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get financial source %s: %w", id, err)
	}
	return &source, nil
}

// ListByUser retrieves all of a user's financial sources ordered by name.
func (r *SourceRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]domain.FinancialSource, error) {
	sources := []domain.FinancialSource{}
	query := `SELECT ` + sourceColumns + ` FROM financial_sources WHERE user_id = $1 ORDER BY name ASC`
	if err := q.SelectContext(ctx, &sources, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list financial sources for user %s: %w", userID, err)
	}
	return sources, nil
}

// ListActiveByUser retrieves the user's active financial sources ordered by name.
func (r *SourceRepository) ListActiveByUser(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]domain.FinancialSource, error) {
	sources := []domain.FinancialSource{}
	query := `SELECT ` + sourceColumns + ` FROM financial_sources WHERE user_id = $1 AND is_active = TRUE ORDER BY name ASC`
	if err := q.SelectContext(ctx, &sources, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list active financial sources for user %s: %w", userID, err)
	}
	return sources, nil
}

// Update persists the mutable fields of a financial source.
func (r *SourceRepository) Update(ctx context.Context, q repository.DBExecutor, source *domain.FinancialSource) error {
	query := `UPDATE financial_sources
              SET name = $1, type = $2, institution = $3, description = $4, color_code = $5, is_active = $6, updated_at = $7
              WHERE id = $8 AND user_id = $9`
	result, err := q.ExecContext(ctx, query,
		source.Name,
		source.Type,
		source.Institution,
		source.Description,
		source.ColorCode,
		source.IsActive,
		time.Now().UTC(),
		source.ID,
		source.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update financial source %s: %w", source.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating financial source %s: %w", source.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// Delete removes a financial source, scoped to its owner.
func (r *SourceRepository) Delete(ctx context.Context, q repository.DBExecutor, userID, id uuid.UUID) error {
	query := `DELETE FROM financial_sources WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete financial source %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting financial source %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
