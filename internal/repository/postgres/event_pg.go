// internal/repository/postgres/event_pg.go
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

// EventRepository implements repository.EventRepository for PostgreSQL.
type EventRepository struct {
	// Methods receive a DBExecutor directly, so no *sqlx.DB is held here.
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sqlx.DB) repository.EventRepository {
	return &EventRepository{}
}

const eventColumns = `id, user_id, net_worth, event_type, event_date, created_at`

// Create appends a new net worth event using the provided DBExecutor.
func (r *EventRepository) Create(ctx context.Context, q repository.DBExecutor, event *domain.NetWorthEvent) error {
	query := `INSERT INTO net_worth_events (id, user_id, net_worth, event_type, event_date, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.ExecContext(ctx, query,
		event.ID,
		event.UserID,
		event.NetWorth,
		event.EventType,
		event.EventDate,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create net worth event: %w", err)
	}
	return nil
}

// GetByID retrieves a net worth event by id, scoped to its owner.
func (r *EventRepository) GetByID(ctx context.Context, q repository.DBExecutor, userID, id uuid.UUID) (*domain.NetWorthEvent, error) {
	var event domain.NetWorthEvent
	query := `SELECT ` + eventColumns + ` FROM net_worth_events WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &event, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get net worth event %s: %w", id, err)
	}
	return &event, nil
}

// ListByUser retrieves a user's events in ascending event_date order.
func (r *EventRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID uuid.UUID, since *time.Time, limit int) ([]domain.NetWorthEvent, error) {
	events := []domain.NetWorthEvent{}
	var err error
	if since != nil {
		query := `SELECT ` + eventColumns + `
                  FROM net_worth_events
                  WHERE user_id = $1 AND event_date >= $2
                  ORDER BY event_date ASC
                  LIMIT $3`
		err = q.SelectContext(ctx, &events, query, userID, *since, limit)
	} else {
		query := `SELECT ` + eventColumns + `
                  FROM net_worth_events
                  WHERE user_id = $1
                  ORDER BY event_date ASC
                  LIMIT $2`
		err = q.SelectContext(ctx, &events, query, userID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list net worth events for user %s: %w", userID, err)
	}
	return events, nil
}

// Latest retrieves the user's most recent event by event_date.
func (r *EventRepository) Latest(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) (*domain.NetWorthEvent, error) {
	var event domain.NetWorthEvent
	query := `SELECT ` + eventColumns + `
              FROM net_worth_events
              WHERE user_id = $1
              ORDER BY event_date DESC
              LIMIT 1`
	err := q.GetContext(ctx, &event, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest net worth event for user %s: %w", userID, err)
	}
	return &event, nil
}

// Delete removes a net worth event, scoped to its owner.
func (r *EventRepository) Delete(ctx context.Context, q repository.DBExecutor, userID, id uuid.UUID) error {
	query := `DELETE FROM net_worth_events WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete net worth event %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting net worth event %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
