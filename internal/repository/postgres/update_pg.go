// internal/repository/postgres/update_pg.go
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

// UpdateRepository implements repository.UpdateRepository for PostgreSQL.
type UpdateRepository struct {
	// Methods receive a DBExecutor directly, so no *sqlx.DB is held here.
}

// NewUpdateRepository creates a new UpdateRepository.
func NewUpdateRepository(db *sqlx.DB) repository.UpdateRepository {
	return &UpdateRepository{}
}

// The date column is a DATE in the database; it is selected as text so
// the domain type carries the plain calendar date without a synthetic
// midnight timestamp.
const updateColumns = `id, financial_source_id, balance, notes, date::text AS date, created_at, updated_at`

// Create inserts a new balance update using the provided DBExecutor.
func (r *UpdateRepository) Create(ctx context.Context, q repository.DBExecutor, update *domain.SourceUpdate) error {
	query := `INSERT INTO financial_source_updates (id, financial_source_id, balance, notes, date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5::date, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		update.ID,
		update.FinancialSourceID,
		update.Balance,
		update.Notes,
		update.Date,
		update.CreatedAt,
		update.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create balance update: %w", err)
	}
	return nil
}

// GetByID retrieves a balance update by id, scoped to its source.
func (r *UpdateRepository) GetByID(ctx context.Context, q repository.DBExecutor, sourceID, id uuid.UUID) (*domain.SourceUpdate, error) {
	var update domain.SourceUpdate
	query := `SELECT ` + updateColumns + ` FROM financial_source_updates WHERE id = $1 AND financial_source_id = $2`
	err := q.GetContext(ctx, &update, query, id, sourceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get balance update %s: %w", id, err)
	}
	return &update, nil
}

// ListBySource retrieves every update for a source, newest observation first.
func (r *UpdateRepository) ListBySource(ctx context.Context, q repository.DBExecutor, sourceID uuid.UUID) ([]domain.SourceUpdate, error) {
	updates := []domain.SourceUpdate{}
	query := `SELECT ` + updateColumns + `
              FROM financial_source_updates
              WHERE financial_source_id = $1
              ORDER BY date DESC, created_at DESC`
	if err := q.SelectContext(ctx, &updates, query, sourceID); err != nil {
		return nil, fmt.Errorf("failed to list updates for source %s: %w", sourceID, err)
	}
	return updates, nil
}

// ListBySources retrieves updates across several sources in ascending
// observation order, optionally bounded below by since.
func (r *UpdateRepository) ListBySources(ctx context.Context, q repository.DBExecutor, sourceIDs []uuid.UUID, since string) ([]domain.SourceUpdate, error) {
	updates := []domain.SourceUpdate{}
	if len(sourceIDs) == 0 {
		return updates, nil
	}

	query := `SELECT ` + updateColumns + `
              FROM financial_source_updates
              WHERE financial_source_id IN (?)`
	args := []interface{}{sourceIDs}
	if since != "" {
		query += ` AND date >= ?::date`
		args = append(args, since)
	}
	query += ` ORDER BY date ASC, created_at ASC`

	query, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build updates range query: %w", err)
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	if err := q.SelectContext(ctx, &updates, query, inArgs...); err != nil {
		return nil, fmt.Errorf("failed to list updates for %d sources: %w", len(sourceIDs), err)
	}
	return updates, nil
}

// Update persists the mutable fields of a balance update.
func (r *UpdateRepository) Update(ctx context.Context, q repository.DBExecutor, update *domain.SourceUpdate) error {
	query := `UPDATE financial_source_updates
              SET balance = $1, notes = $2, date = $3::date, updated_at = $4
              WHERE id = $5`
	result, err := q.ExecContext(ctx, query,
		update.Balance,
		update.Notes,
		update.Date,
		time.Now().UTC(),
		update.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance update %s: %w", update.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating balance update %s: %w", update.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// Delete removes a single balance update.
func (r *UpdateRepository) Delete(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	query := `DELETE FROM financial_source_updates WHERE id = $1`
	result, err := q.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete balance update %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting balance update %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteBySource removes every update belonging to a source. Zero rows
// is not an error: a source may legitimately have no updates yet.
func (r *UpdateRepository) DeleteBySource(ctx context.Context, q repository.DBExecutor, sourceID uuid.UUID) error {
	query := `DELETE FROM financial_source_updates WHERE financial_source_id = $1`
	if _, err := q.ExecContext(ctx, query, sourceID); err != nil {
		return fmt.Errorf("failed to delete updates for source %s: %w", sourceID, err)
	}
	return nil
}
