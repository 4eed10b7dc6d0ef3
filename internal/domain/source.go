// internal/domain/source.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SourceType identifies the kind of financial source being tracked.
type SourceType string

const (
	SourceTypeBankAccount SourceType = "BANK_ACCOUNT"
	SourceTypeMoneyMarket SourceType = "MONEY_MARKET"
	SourceTypeStocks      SourceType = "STOCKS"
	SourceTypeMpesa       SourceType = "MPESA"
	SourceTypeSacco       SourceType = "SACCO"
	SourceTypeCash        SourceType = "CASH"
	SourceTypeOther       SourceType = "OTHER"
)

// SourceTypes returns the closed list of allowed source types, in
// declaration order. Exposed verbatim to clients for display.
func SourceTypes() []SourceType {
	return []SourceType{
		SourceTypeBankAccount,
		SourceTypeMoneyMarket,
		SourceTypeStocks,
		SourceTypeMpesa,
		SourceTypeSacco,
		SourceTypeCash,
		SourceTypeOther,
	}
}

// Valid reports whether t is one of the allowed source types.
func (t SourceType) Valid() bool {
	switch t {
	case SourceTypeBankAccount, SourceTypeMoneyMarket, SourceTypeStocks,
		SourceTypeMpesa, SourceTypeSacco, SourceTypeCash, SourceTypeOther:
		return true
	}
	return false
}

// FinancialSource represents an account or holding (bank account,
// mobile money, cash, ...) whose balance a user tracks over time.
type FinancialSource struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	Name        string     `db:"name" json:"name"`
	Type        SourceType `db:"type" json:"type"`
	Institution *string    `db:"institution" json:"institution"`
	Description *string    `db:"description" json:"description"`
	ColorCode   *string    `db:"color_code" json:"color_code"` // "#RRGGBB"
	IsActive    bool       `db:"is_active" json:"is_active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`

	// Updates are eager-loaded balance observations, newest first.
	// Not a column; populated by the service layer.
	Updates []SourceUpdate `db:"-" json:"updates,omitempty"`
}

// NewFinancialSource creates a new FinancialSource instance owned by userID.
// Sources start active; deactivation is an explicit update.
func NewFinancialSource(userID uuid.UUID, name string, sourceType SourceType, institution, description, colorCode *string) *FinancialSource {
	now := time.Now().UTC()
	return &FinancialSource{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Type:        sourceType,
		Institution: institution,
		Description: description,
		ColorCode:   colorCode,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
