// internal/domain/source_update.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// DateLayout is the calendar-date format used for observation dates.
// Observation dates carry no time component; the creation timestamp is
// audit-only and used strictly as a same-day tie-breaker.
const DateLayout = "2006-01-02"

// SourceUpdate is a dated observation of a financial source's balance.
// Several updates may share the same observation date; the one with the
// latest creation timestamp is authoritative for that date.
type SourceUpdate struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	FinancialSourceID uuid.UUID       `db:"financial_source_id" json:"financial_source_id"`
	Balance           decimal.Decimal `db:"balance" json:"balance"` // NUMERIC(15, 2) in DB
	Notes             *string         `db:"notes" json:"notes"`
	Date              string          `db:"date" json:"date"` // calendar date, DateLayout
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// NewSourceUpdate creates a new SourceUpdate instance. An empty date
// defaults to today (UTC).
func NewSourceUpdate(sourceID uuid.UUID, balance decimal.Decimal, notes *string, date string) *SourceUpdate {
	now := time.Now().UTC()
	if date == "" {
		date = now.Format(DateLayout)
	}
	return &SourceUpdate{
		ID:                uuid.New(),
		FinancialSourceID: sourceID,
		Balance:           balance,
		Notes:             notes,
		Date:              date,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// ObservationTime parses the update's observation date. Stored dates
// are expected to be well-formed, but a malformed one must not abort
// aggregation, so callers handle the error by skipping the update.
func (u *SourceUpdate) ObservationTime() (time.Time, error) {
	return time.Parse(DateLayout, u.Date)
}
