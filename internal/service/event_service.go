// internal/service/event_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"networth-tracker/internal/domain"
	"networth-tracker/internal/repository"
	"networth-tracker/internal/util"
)

// defaultEventLimit bounds event listings when the caller does not ask
// for a limit.
const defaultEventLimit = 100

// EventService defines the business logic over the net worth event log.
type EventService interface {
	// Record computes the user's current net worth and appends it as an
	// event. An empty eventType defaults to MANUAL, a zero eventDate to
	// now.
	Record(ctx context.Context, userID uuid.UUID, eventType domain.EventType, eventDate time.Time) (*domain.NetWorthEvent, error)
	// Latest returns the most recent event's net worth. With an empty
	// log it computes the current value, persists it as a MANUAL event
	// and returns it, so the cache bootstraps itself.
	Latest(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// List returns events ordered by event date ascending. period uses
	// the same symbolic resolution as the historical series; empty or
	// "all" means no lower bound. limit <= 0 falls back to the default.
	List(ctx context.Context, userID uuid.UUID, period string, limit int) ([]domain.NetWorthEvent, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.NetWorthEvent, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// eventService implements the EventService interface.
type eventService struct {
	dbExecutor repository.DBExecutor
	eventRepo  repository.EventRepository
	netWorth   NetWorthService
	logger     *slog.Logger
}

// NewEventService creates a new instance of EventService.
func NewEventService(
	dbExecutor repository.DBExecutor,
	eventRepo repository.EventRepository,
	netWorth NetWorthService,
	logger *slog.Logger,
) EventService {
	return &eventService{
		dbExecutor: dbExecutor,
		eventRepo:  eventRepo,
		netWorth:   netWorth,
		logger:     logger,
	}
}

func (s *eventService) Record(ctx context.Context, userID uuid.UUID, eventType domain.EventType, eventDate time.Time) (*domain.NetWorthEvent, error) {
	if eventType == "" {
		eventType = domain.EventTypeManual
	}
	if !eventType.Valid() {
		return nil, fmt.Errorf("%w: unknown event type %q", util.ErrInvalidInput, eventType)
	}

	netWorth, err := s.netWorth.Current(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("record event: %w", err)
	}

	event := domain.NewNetWorthEvent(userID, netWorth, eventType, eventDate)
	if err := s.eventRepo.Create(ctx, s.dbExecutor, event); err != nil {
		return nil, fmt.Errorf("record event: %w", err)
	}
	return event, nil
}

func (s *eventService) Latest(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	event, err := s.eventRepo.Latest(ctx, s.dbExecutor, userID)
	if err == nil {
		return event.NetWorth, nil
	}
	if !errors.Is(err, util.ErrNotFound) {
		return decimal.Decimal{}, fmt.Errorf("latest net worth: %w", err)
	}

	// Empty log: compute and seed it. The seed write is a cache
	// bootstrap, so its failure is logged rather than surfaced.
	netWorth, err := s.netWorth.Current(ctx, userID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("latest net worth: %w", err)
	}
	seed := domain.NewNetWorthEvent(userID, netWorth, domain.EventTypeManual, time.Time{})
	if err := s.eventRepo.Create(ctx, s.dbExecutor, seed); err != nil {
		s.logger.Warn("failed to seed net worth event log", "user_id", userID, "error", err)
	}
	return netWorth, nil
}

func (s *eventService) List(ctx context.Context, userID uuid.UUID, period string, limit int) ([]domain.NetWorthEvent, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}
	var since *time.Time
	if period != "" && period != PeriodAll {
		start := ResolvePeriodStart(period, time.Now().UTC())
		since = &start
	}
	events, err := s.eventRepo.ListByUser(ctx, s.dbExecutor, userID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.NetWorthEvent, error) {
	event, err := s.eventRepo.GetByID(ctx, s.dbExecutor, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.eventRepo.Delete(ctx, s.dbExecutor, userID, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
