// internal/service/update_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"networth-tracker/internal/domain"
	"networth-tracker/internal/repository"
	"networth-tracker/internal/util"
)

// CreateUpdateInput carries the fields for recording a balance
// observation. An empty Date defaults to today.
type CreateUpdateInput struct {
	Balance decimal.Decimal
	Notes   *string
	Date    string
}

// PatchUpdateInput carries a partial edit of an existing observation.
// Nil fields keep their previous values.
type PatchUpdateInput struct {
	Balance *decimal.Decimal
	Notes   *string
	Date    *string
}

// UpdateService defines the business logic over balance updates. Every
// operation is scoped to a (user, source) pair: the source must belong
// to the requester and the update to the source, each otherwise
// reported as not found.
type UpdateService interface {
	List(ctx context.Context, userID, sourceID uuid.UUID) ([]domain.SourceUpdate, error)
	Get(ctx context.Context, userID, sourceID, id uuid.UUID) (*domain.SourceUpdate, error)
	Create(ctx context.Context, userID, sourceID uuid.UUID, in CreateUpdateInput) (*domain.SourceUpdate, error)
	Update(ctx context.Context, userID, sourceID, id uuid.UUID, in PatchUpdateInput) (*domain.SourceUpdate, error)
	Delete(ctx context.Context, userID, sourceID, id uuid.UUID) error
}

// updateService implements the UpdateService interface.
type updateService struct {
	dbExecutor repository.DBExecutor
	sourceRepo repository.SourceRepository
	updateRepo repository.UpdateRepository
	eventRepo  repository.EventRepository
	netWorth   NetWorthService
	logger     *slog.Logger
}

// NewUpdateService creates a new instance of UpdateService.
func NewUpdateService(
	dbExecutor repository.DBExecutor,
	sourceRepo repository.SourceRepository,
	updateRepo repository.UpdateRepository,
	eventRepo repository.EventRepository,
	netWorth NetWorthService,
	logger *slog.Logger,
) UpdateService {
	return &updateService{
		dbExecutor: dbExecutor,
		sourceRepo: sourceRepo,
		updateRepo: updateRepo,
		eventRepo:  eventRepo,
		netWorth:   netWorth,
		logger:     logger,
	}
}

// List returns every update for the source, newest observation first.
func (s *updateService) List(ctx context.Context, userID, sourceID uuid.UUID) ([]domain.SourceUpdate, error) {
	if _, err := s.sourceRepo.GetByID(ctx, s.dbExecutor, userID, sourceID); err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	updates, err := s.updateRepo.ListBySource(ctx, s.dbExecutor, sourceID)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	return updates, nil
}

func (s *updateService) Get(ctx context.Context, userID, sourceID, id uuid.UUID) (*domain.SourceUpdate, error) {
	if _, err := s.sourceRepo.GetByID(ctx, s.dbExecutor, userID, sourceID); err != nil {
		return nil, fmt.Errorf("get update: %w", err)
	}
	update, err := s.updateRepo.GetByID(ctx, s.dbExecutor, sourceID, id)
	if err != nil {
		return nil, fmt.Errorf("get update: %w", err)
	}
	return update, nil
}

// Create records a new balance observation. After the write succeeds, a
// BALANCE_UPDATE net worth event is recorded best-effort: a failure
// there is logged and never surfaced to the caller.
func (s *updateService) Create(ctx context.Context, userID, sourceID uuid.UUID, in CreateUpdateInput) (*domain.SourceUpdate, error) {
	if _, err := s.sourceRepo.GetByID(ctx, s.dbExecutor, userID, sourceID); err != nil {
		return nil, fmt.Errorf("create update: %w", err)
	}
	if in.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", util.ErrInvalidInput)
	}
	if err := validateNotes(in.Notes); err != nil {
		return nil, err
	}
	if in.Date != "" {
		if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be formatted as %s", util.ErrInvalidInput, domain.DateLayout)
		}
	}

	update := domain.NewSourceUpdate(sourceID, in.Balance, in.Notes, in.Date)
	if err := s.updateRepo.Create(ctx, s.dbExecutor, update); err != nil {
		return nil, fmt.Errorf("create update: %w", err)
	}

	s.recordSnapshot(ctx, userID)

	return update, nil
}

// Update applies a partial edit; nil fields retain their previous values.
func (s *updateService) Update(ctx context.Context, userID, sourceID, id uuid.UUID, in PatchUpdateInput) (*domain.SourceUpdate, error) {
	if _, err := s.sourceRepo.GetByID(ctx, s.dbExecutor, userID, sourceID); err != nil {
		return nil, fmt.Errorf("update update: %w", err)
	}
	update, err := s.updateRepo.GetByID(ctx, s.dbExecutor, sourceID, id)
	if err != nil {
		return nil, fmt.Errorf("update update: %w", err)
	}

	if in.Balance != nil {
		if in.Balance.IsNegative() {
			return nil, fmt.Errorf("%w: balance must not be negative", util.ErrInvalidInput)
		}
		update.Balance = *in.Balance
	}
	if in.Notes != nil {
		if err := validateNotes(in.Notes); err != nil {
			return nil, err
		}
		update.Notes = in.Notes
	}
	if in.Date != nil {
		if _, err := time.Parse(domain.DateLayout, *in.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be formatted as %s", util.ErrInvalidInput, domain.DateLayout)
		}
		update.Date = *in.Date
	}

	if err := s.updateRepo.Update(ctx, s.dbExecutor, update); err != nil {
		return nil, fmt.Errorf("update update: %w", err)
	}
	return update, nil
}

func (s *updateService) Delete(ctx context.Context, userID, sourceID, id uuid.UUID) error {
	if _, err := s.sourceRepo.GetByID(ctx, s.dbExecutor, userID, sourceID); err != nil {
		return fmt.Errorf("delete update: %w", err)
	}
	if _, err := s.updateRepo.GetByID(ctx, s.dbExecutor, sourceID, id); err != nil {
		return fmt.Errorf("delete update: %w", err)
	}
	if err := s.updateRepo.Delete(ctx, s.dbExecutor, id); err != nil {
		return fmt.Errorf("delete update: %w", err)
	}
	return nil
}

// recordSnapshot persists a BALANCE_UPDATE net worth event reflecting
// the state after a newly written observation. The event log is a log,
// not a single-value cache, so failures here only cost an audit entry.
func (s *updateService) recordSnapshot(ctx context.Context, userID uuid.UUID) {
	netWorth, err := s.netWorth.Current(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to compute net worth for balance update snapshot",
			"user_id", userID, "error", err)
		return
	}
	event := domain.NewNetWorthEvent(userID, netWorth, domain.EventTypeBalanceUpdate, time.Time{})
	if err := s.eventRepo.Create(ctx, s.dbExecutor, event); err != nil {
		s.logger.Warn("failed to record balance update snapshot event",
			"user_id", userID, "error", err)
	}
}
