// internal/service/event_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"networth-tracker/internal/domain"
	"networth-tracker/internal/util"
)

func newEventService(eventRepo *MockEventRepository, netWorth *MockNetWorthService) EventService {
	return NewEventService(new(MockDBExecutor), eventRepo, netWorth, testLogger())
}

func TestEventRecord(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("DefaultsToManualTypeAndNow", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		netWorth := new(MockNetWorthService)

		total := decimal.NewFromInt(900)
		netWorth.On("Current", ctx, userID).Return(total, nil).Once()
		eventRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*domain.NetWorthEvent")).
			Run(func(args mock.Arguments) {
				event := args.Get(2).(*domain.NetWorthEvent)
				assert.Equal(t, domain.EventTypeManual, event.EventType)
				assert.False(t, event.EventDate.IsZero())
				assert.True(t, event.NetWorth.Equal(total))
			}).Return(nil).Once()

		event, err := newEventService(eventRepo, netWorth).Record(ctx, userID, "", time.Time{})

		require.NoError(t, err)
		require.NotNil(t, event)
		mock.AssertExpectationsForObjects(t, eventRepo, netWorth)
	})

	t.Run("KeepsExplicitTypeAndDate", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		netWorth := new(MockNetWorthService)

		when := time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC)
		netWorth.On("Current", ctx, userID).Return(decimal.NewFromInt(1), nil).Once()
		eventRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*domain.NetWorthEvent")).
			Run(func(args mock.Arguments) {
				event := args.Get(2).(*domain.NetWorthEvent)
				assert.Equal(t, domain.EventTypeSourceAdded, event.EventType)
				assert.Equal(t, when, event.EventDate)
			}).Return(nil).Once()

		_, err := newEventService(eventRepo, netWorth).Record(ctx, userID, domain.EventTypeSourceAdded, when)

		require.NoError(t, err)
	})

	t.Run("RejectsUnknownType", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		netWorth := new(MockNetWorthService)

		_, err := newEventService(eventRepo, netWorth).Record(ctx, userID, "WILD_GUESS", time.Time{})

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		netWorth.AssertNotCalled(t, "Current", mock.Anything, mock.Anything)
	})
}

func TestEventLatest(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("ReturnsMostRecentEventValue", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		netWorth := new(MockNetWorthService)

		stored := &domain.NetWorthEvent{
			ID:        uuid.New(),
			UserID:    userID,
			NetWorth:  decimal.NewFromFloat(1500.25),
			EventType: domain.EventTypeBalanceUpdate,
			EventDate: time.Now().UTC(),
		}
		eventRepo.On("Latest", ctx, mock.Anything, userID).Return(stored, nil).Once()

		value, err := newEventService(eventRepo, netWorth).Latest(ctx, userID)

		require.NoError(t, err)
		assert.True(t, value.Equal(stored.NetWorth))
		netWorth.AssertNotCalled(t, "Current", mock.Anything, mock.Anything)
	})

	t.Run("EmptyLogComputesAndSeedsManualEvent", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		netWorth := new(MockNetWorthService)

		computed := decimal.NewFromInt(4242)
		eventRepo.On("Latest", ctx, mock.Anything, userID).Return(nil, util.ErrNotFound).Once()
		netWorth.On("Current", ctx, userID).Return(computed, nil).Once()
		eventRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*domain.NetWorthEvent")).
			Run(func(args mock.Arguments) {
				event := args.Get(2).(*domain.NetWorthEvent)
				assert.Equal(t, domain.EventTypeManual, event.EventType)
				assert.True(t, event.NetWorth.Equal(computed))
			}).Return(nil).Once()

		value, err := newEventService(eventRepo, netWorth).Latest(ctx, userID)

		require.NoError(t, err)
		assert.True(t, value.Equal(computed))
		mock.AssertExpectationsForObjects(t, eventRepo, netWorth)
	})

	t.Run("SeedWriteFailureStillReturnsValue", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		netWorth := new(MockNetWorthService)

		computed := decimal.NewFromInt(7)
		eventRepo.On("Latest", ctx, mock.Anything, userID).Return(nil, util.ErrNotFound).Once()
		netWorth.On("Current", ctx, userID).Return(computed, nil).Once()
		eventRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*domain.NetWorthEvent")).
			Return(errors.New("event store down")).Once()

		value, err := newEventService(eventRepo, netWorth).Latest(ctx, userID)

		require.NoError(t, err)
		assert.True(t, value.Equal(computed))
	})
}

func TestEventList(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("NoPeriodMeansNoLowerBound", func(t *testing.T) {
		eventRepo := new(MockEventRepository)

		eventRepo.On("ListByUser", ctx, mock.Anything, userID, (*time.Time)(nil), 100).
			Return([]domain.NetWorthEvent{}, nil).Once()

		_, err := newEventService(eventRepo, new(MockNetWorthService)).List(ctx, userID, "", 0)

		require.NoError(t, err)
		mock.AssertExpectationsForObjects(t, eventRepo)
	})

	t.Run("AllPeriodAlsoUnbounded", func(t *testing.T) {
		eventRepo := new(MockEventRepository)

		eventRepo.On("ListByUser", ctx, mock.Anything, userID, (*time.Time)(nil), 25).
			Return([]domain.NetWorthEvent{}, nil).Once()

		_, err := newEventService(eventRepo, new(MockNetWorthService)).List(ctx, userID, PeriodAll, 25)

		require.NoError(t, err)
	})

	t.Run("SymbolicPeriodBoundsTheWindow", func(t *testing.T) {
		eventRepo := new(MockEventRepository)

		sinceMatcher := mock.MatchedBy(func(since *time.Time) bool {
			if since == nil {
				return false
			}
			expected := time.Now().UTC().AddDate(-1, 0, 0)
			return since.Sub(expected).Abs() < time.Hour
		})
		eventRepo.On("ListByUser", ctx, mock.Anything, userID, sinceMatcher, 100).
			Return([]domain.NetWorthEvent{}, nil).Once()

		_, err := newEventService(eventRepo, new(MockNetWorthService)).List(ctx, userID, PeriodYear, 0)

		require.NoError(t, err)
		mock.AssertExpectationsForObjects(t, eventRepo)
	})
}

func TestEventGetAndDelete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("GetNotOwnedReportsNotFound", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		id := uuid.New()

		eventRepo.On("GetByID", ctx, mock.Anything, userID, id).Return(nil, util.ErrNotFound).Once()

		_, err := newEventService(eventRepo, new(MockNetWorthService)).Get(ctx, userID, id)

		assert.ErrorIs(t, err, util.ErrNotFound)
	})

	t.Run("DeleteScopedToOwner", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		id := uuid.New()

		eventRepo.On("Delete", ctx, mock.Anything, userID, id).Return(nil).Once()

		err := newEventService(eventRepo, new(MockNetWorthService)).Delete(ctx, userID, id)

		require.NoError(t, err)
		mock.AssertExpectationsForObjects(t, eventRepo)
	})
}
