// internal/service/networth_service.go
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

// NetWorthService computes a user's net worth from their financial
// sources and balance updates. Both entry points are pure reads built on
// the same reconstruction pass, so the latest-balance selection rule
// cannot drift between them.
type NetWorthService interface {
	// Current returns the sum of the latest known balance of every
	// active source. A source with no updates contributes zero.
	Current(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// Historical reconstructs the net worth series over a query window.
	// A non-empty startDate (domain.DateLayout) overrides the symbolic
	// period.
	Historical(ctx context.Context, userID uuid.UUID, period, startDate string) ([]HistoricalPoint, error)
}

// SourceBalance is one source's most recently known balance within a
// historical point.
type SourceBalance struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Type      domain.SourceType `json:"type"`
	ColorCode *string           `json:"color_code"`
	Balance   decimal.Decimal   `json:"balance"`
}

// HistoricalPoint is the reconstructed state at one observation date:
// every active source's latest balance as of that date, and their sum.
type HistoricalPoint struct {
	Date     string                   `json:"date"`
	NetWorth decimal.Decimal          `json:"netWorth"`
	Sources  map[string]SourceBalance `json:"sources"`
}

// netWorthService implements the NetWorthService interface.
type netWorthService struct {
	dbExecutor repository.DBExecutor
	sourceRepo repository.SourceRepository
	updateRepo repository.UpdateRepository
	logger     *slog.Logger
}

// NewNetWorthService creates a new instance of NetWorthService.
func NewNetWorthService(
	dbExecutor repository.DBExecutor,
	sourceRepo repository.SourceRepository,
	updateRepo repository.UpdateRepository,
	logger *slog.Logger,
) NetWorthService {
	return &netWorthService{
		dbExecutor: dbExecutor,
		sourceRepo: sourceRepo,
		updateRepo: updateRepo,
		logger:     logger,
	}
}

// Current is the unbounded reconstruction's final point: after every
// update has been folded in, the running map holds exactly the latest
// balance per active source.
func (s *netWorthService) Current(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	points, err := s.reconstruct(ctx, userID, "")
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("current net worth: %w", err)
	}
	if len(points) == 0 {
		return decimal.Zero, nil
	}
	return points[len(points)-1].NetWorth, nil
}

func (s *netWorthService) Historical(ctx context.Context, userID uuid.UUID, period, startDate string) ([]HistoricalPoint, error) {
	since := startDate
	if since != "" {
		if _, err := time.Parse(domain.DateLayout, since); err != nil {
			return nil, fmt.Errorf("%w: startDate must be formatted as %s", util.ErrInvalidInput, domain.DateLayout)
		}
	} else {
		since = ResolvePeriodStart(period, time.Now().UTC()).Format(domain.DateLayout)
	}

	points, err := s.reconstruct(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("historical net worth: %w", err)
	}
	return points, nil
}

// reconstruct replays the user's balance updates in (observation date,
// creation timestamp) ascending order, carrying a running latest-balance
// map per source. Each distinct observation date yields one point whose
// sources snapshot the entire map, so sources last updated before that
// date are still reported at their carried-forward balance.
//
// Only currently active sources participate; deactivation is a hard
// exclusion and applies retroactively to past dates as well.
func (s *netWorthService) reconstruct(ctx context.Context, userID uuid.UUID, since string) ([]HistoricalPoint, error) {
	sources, err := s.sourceRepo.ListActiveByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active sources: %w", err)
	}
	if len(sources) == 0 {
		return []HistoricalPoint{}, nil
	}

	sourcesByID := make(map[uuid.UUID]*domain.FinancialSource, len(sources))
	sourceIDs := make([]uuid.UUID, 0, len(sources))
	for i := range sources {
		sourcesByID[sources[i].ID] = &sources[i]
		sourceIDs = append(sourceIDs, sources[i].ID)
	}

	updates, err := s.updateRepo.ListBySources(ctx, s.dbExecutor, sourceIDs, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load updates: %w", err)
	}

	points := []HistoricalPoint{}
	running := make(map[string]SourceBalance)
	currentDate := ""

	snapshot := func() {
		bySource := make(map[string]SourceBalance, len(running))
		netWorth := decimal.Zero
		for id, sb := range running {
			bySource[id] = sb
			netWorth = netWorth.Add(sb.Balance)
		}
		points = append(points, HistoricalPoint{
			Date:     currentDate,
			NetWorth: netWorth,
			Sources:  bySource,
		})
	}

	for i := range updates {
		update := &updates[i]
		observed, err := update.ObservationTime()
		if err != nil {
			// A bad date must not abort the whole series.
			s.logger.Warn("skipping balance update with malformed observation date",
				"update_id", update.ID, "date", update.Date)
			continue
		}
		date := observed.Format(domain.DateLayout)

		if currentDate != "" && date != currentDate {
			snapshot()
		}
		currentDate = date

		source, ok := sourcesByID[update.FinancialSourceID]
		if !ok {
			continue
		}
		// Updates arrive in creation order within a date, so the last
		// write for a source wins, consistent with current semantics.
		running[source.ID.String()] = SourceBalance{
			ID:        source.ID,
			Name:      source.Name,
			Type:      source.Type,
			ColorCode: source.ColorCode,
			Balance:   update.Balance,
		}
	}
	if currentDate != "" {
		snapshot()
	}

	return points, nil
}
