// internal/service/source_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"networth-tracker/internal/domain"
	"networth-tracker/internal/repository"
	"networth-tracker/internal/util"
	"networth-tracker/pkg/db"
)

const (
	maxNameLen        = 100
	maxInstitutionLen = 100
	maxDescriptionLen = 500
	maxNotesLen       = 500

	defaultInitialBalanceNotes = "Initial balance"
)

var colorCodePattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CreateSourceInput carries the fields for creating a financial source.
// A non-nil InitialBalance additionally records a first balance update
// dated today, with Notes defaulting to "Initial balance".
type CreateSourceInput struct {
	Name           string
	Type           domain.SourceType
	Institution    *string
	Description    *string
	ColorCode      *string
	InitialBalance *decimal.Decimal
	Notes          *string
}

// UpdateSourceInput carries a partial update. Nil fields keep their
// previous values.
type UpdateSourceInput struct {
	Name        *string
	Type        *domain.SourceType
	Institution *string
	Description *string
	ColorCode   *string
	IsActive    *bool
}

// SourceService defines the business logic over financial sources.
type SourceService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.FinancialSource, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.FinancialSource, error)
	Create(ctx context.Context, userID uuid.UUID, in CreateSourceInput) (*domain.FinancialSource, error)
	Update(ctx context.Context, userID, id uuid.UUID, in UpdateSourceInput) (*domain.FinancialSource, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Types() []domain.SourceType
}

// sourceService implements the SourceService interface.
type sourceService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	sourceRepo repository.SourceRepository
	updateRepo repository.UpdateRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
	logger     *slog.Logger
}

// NewSourceService creates a new instance of SourceService.
func NewSourceService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	sourceRepo repository.SourceRepository,
	updateRepo repository.UpdateRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	logger *slog.Logger,
) SourceService {
	return &sourceService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		sourceRepo: sourceRepo,
		updateRepo: updateRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
		logger:     logger,
	}
}

// List returns all of the user's sources ordered by name, each with its
// updates attached newest-first.
func (s *sourceService) List(ctx context.Context, userID uuid.UUID) ([]domain.FinancialSource, error) {
	sources, err := s.sourceRepo.ListByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	for i := range sources {
		updates, err := s.updateRepo.ListBySource(ctx, s.dbExecutor, sources[i].ID)
		if err != nil {
			return nil, fmt.Errorf("list sources: failed to load updates for source %s: %w", sources[i].ID, err)
		}
		sources[i].Updates = updates
	}
	return sources, nil
}

// Get returns one source with its updates attached newest-first.
// A source owned by someone else is reported as not found.
func (s *sourceService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.FinancialSource, error) {
	source, err := s.sourceRepo.GetByID(ctx, s.dbExecutor, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	updates, err := s.updateRepo.ListBySource(ctx, s.dbExecutor, source.ID)
	if err != nil {
		return nil, fmt.Errorf("get source: failed to load updates: %w", err)
	}
	source.Updates = updates
	return source, nil
}

// Create validates the input and creates the source, together with an
// initial balance update when one is supplied, inside one transaction.
func (s *sourceService) Create(ctx context.Context, userID uuid.UUID, in CreateSourceInput) (*domain.FinancialSource, error) {
	if err := validateSourceName(in.Name); err != nil {
		return nil, err
	}
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown source type %q", util.ErrInvalidInput, in.Type)
	}
	if err := validateOptionalFields(in.Institution, in.Description, in.ColorCode); err != nil {
		return nil, err
	}
	if in.InitialBalance != nil && in.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance must not be negative", util.ErrInvalidInput)
	}
	if err := validateNotes(in.Notes); err != nil {
		return nil, err
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create source: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create source: transaction controller does not implement DBExecutor")
	}

	source := domain.NewFinancialSource(userID, in.Name, in.Type, in.Institution, in.Description, in.ColorCode)
	if err := s.sourceRepo.Create(ctx, txExecutor, source); err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}

	if in.InitialBalance != nil {
		notes := in.Notes
		if notes == nil {
			n := defaultInitialBalanceNotes
			notes = &n
		}
		update := domain.NewSourceUpdate(source.ID, *in.InitialBalance, notes, "")
		if err := s.updateRepo.Create(ctx, txExecutor, update); err != nil {
			return nil, fmt.Errorf("create source: failed to create initial balance update: %w", err)
		}
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create source: failed to commit transaction: %w", err)
	}

	return s.Get(ctx, userID, source.ID)
}

// Update applies a partial update to a source; nil fields retain their
// previous values.
func (s *sourceService) Update(ctx context.Context, userID, id uuid.UUID, in UpdateSourceInput) (*domain.FinancialSource, error) {
	source, err := s.sourceRepo.GetByID(ctx, s.dbExecutor, userID, id)
	if err != nil {
		return nil, fmt.Errorf("update source: %w", err)
	}

	if in.Name != nil {
		if err := validateSourceName(*in.Name); err != nil {
			return nil, err
		}
		source.Name = *in.Name
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown source type %q", util.ErrInvalidInput, *in.Type)
		}
		source.Type = *in.Type
	}
	if err := validateOptionalFields(in.Institution, in.Description, in.ColorCode); err != nil {
		return nil, err
	}
	if in.Institution != nil {
		source.Institution = in.Institution
	}
	if in.Description != nil {
		source.Description = in.Description
	}
	if in.ColorCode != nil {
		source.ColorCode = in.ColorCode
	}
	if in.IsActive != nil {
		source.IsActive = *in.IsActive
	}

	if err := s.sourceRepo.Update(ctx, s.dbExecutor, source); err != nil {
		return nil, fmt.Errorf("update source: %w", err)
	}

	return s.Get(ctx, userID, id)
}

// Delete removes a source and all of its balance updates in one
// transaction, children first since there is no implicit cascade.
func (s *sourceService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("delete source: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("delete source: transaction controller does not implement DBExecutor")
	}

	source, err := s.sourceRepo.GetByID(ctx, txExecutor, userID, id)
	if err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	if err := s.updateRepo.DeleteBySource(ctx, txExecutor, source.ID); err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	if err := s.sourceRepo.Delete(ctx, txExecutor, userID, source.ID); err != nil {
		return fmt.Errorf("delete source: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("delete source: failed to commit transaction: %w", err)
	}
	return nil
}

// Types returns the closed enumeration of allowed source types.
func (s *sourceService) Types() []domain.SourceType {
	return domain.SourceTypes()
}

func validateSourceName(name string) error {
	if strings.TrimSpace(name) == "" || len(name) > maxNameLen {
		return fmt.Errorf("%w: name must be between 1 and %d characters", util.ErrInvalidInput, maxNameLen)
	}
	return nil
}

func validateOptionalFields(institution, description, colorCode *string) error {
	if institution != nil && len(*institution) > maxInstitutionLen {
		return fmt.Errorf("%w: institution must be at most %d characters", util.ErrInvalidInput, maxInstitutionLen)
	}
	if description != nil && len(*description) > maxDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", util.ErrInvalidInput, maxDescriptionLen)
	}
	if colorCode != nil && !colorCodePattern.MatchString(*colorCode) {
		return fmt.Errorf("%w: color code must be a hex color like #1A2B3C", util.ErrInvalidInput)
	}
	return nil
}

func validateNotes(notes *string) error {
	if notes != nil && len(*notes) > maxNotesLen {
		return fmt.Errorf("%w: notes must be at most %d characters", util.ErrInvalidInput, maxNotesLen)
	}
	return nil
}
