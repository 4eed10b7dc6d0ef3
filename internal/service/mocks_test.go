// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"networth-tracker/internal/domain"
	"networth-tracker/internal/repository"
	"networth-tracker/pkg/db"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	called := m.Called(ctx, dest, query, args)
	return called.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	called := m.Called(ctx, dest, query, args)
	return called.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	called := m.Called(ctx, query, args)
	return called.Get(0).(sql.Result), called.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockTxController is a mock transaction that also satisfies
// repository.DBExecutor, mirroring how *sqlx.Tx is used in production.
type MockTxController struct {
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	called := m.Called()
	return called.Error(0)
}

func (m *MockTxController) Rollback() error {
	called := m.Called()
	return called.Error(0)
}

// txFuncs returns beginTx/commitTx/rollbackTx implementations routed to
// the given mock controller.
func txFuncs(tx *MockTxController) (db.BeginTxFunc, db.CommitTxFunc, db.RollbackTxFunc) {
	begin := func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
		return tx, nil
	}
	commit := func(t db.TxController) error {
		return t.Commit()
	}
	rollback := func(t db.TxController) {
		_ = t.Rollback()
	}
	return begin, commit, rollback
}

// MockSourceRepository is a mock implementation of repository.SourceRepository.
type MockSourceRepository struct {
	mock.Mock
}

func (m *MockSourceRepository) Create(ctx context.Context, q repository.DBExecutor, source *domain.FinancialSource) error {
	called := m.Called(ctx, q, source)
	return called.Error(0)
}

func (m *MockSourceRepository) GetByID(ctx context.Context, q repository.DBExecutor, userID, id uuid.UUID) (*domain.FinancialSource, error) {
	called := m.Called(ctx, q, userID, id)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).(*domain.FinancialSource), called.Error(1)
}

func (m *MockSourceRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]domain.FinancialSource, error) {
	called := m.Called(ctx, q, userID)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).([]domain.FinancialSource), called.Error(1)
}

func (m *MockSourceRepository) ListActiveByUser(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]domain.FinancialSource, error) {
	called := m.Called(ctx, q, userID)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).([]domain.FinancialSource), called.Error(1)
}

func (m *MockSourceRepository) Update(ctx context.Context, q repository.DBExecutor, source *domain.FinancialSource) error {
	called := m.Called(ctx, q, source)
	return called.Error(0)
}

func (m *MockSourceRepository) Delete(ctx context.Context, q repository.DBExecutor, userID, id uuid.UUID) error {
	called := m.Called(ctx, q, userID, id)
	return called.Error(0)
}

// MockUpdateRepository is a mock implementation of repository.UpdateRepository.
type MockUpdateRepository struct {
	mock.Mock
}

func (m *MockUpdateRepository) Create(ctx context.Context, q repository.DBExecutor, update *domain.SourceUpdate) error {
	called := m.Called(ctx, q, update)
	return called.Error(0)
}

func (m *MockUpdateRepository) GetByID(ctx context.Context, q repository.DBExecutor, sourceID, id uuid.UUID) (*domain.SourceUpdate, error) {
	called := m.Called(ctx, q, sourceID, id)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).(*domain.SourceUpdate), called.Error(1)
}

func (m *MockUpdateRepository) ListBySource(ctx context.Context, q repository.DBExecutor, sourceID uuid.UUID) ([]domain.SourceUpdate, error) {
	called := m.Called(ctx, q, sourceID)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).([]domain.SourceUpdate), called.Error(1)
}

func (m *MockUpdateRepository) ListBySources(ctx context.Context, q repository.DBExecutor, sourceIDs []uuid.UUID, since string) ([]domain.SourceUpdate, error) {
	called := m.Called(ctx, q, sourceIDs, since)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).([]domain.SourceUpdate), called.Error(1)
}

func (m *MockUpdateRepository) Update(ctx context.Context, q repository.DBExecutor, update *domain.SourceUpdate) error {
	called := m.Called(ctx, q, update)
	return called.Error(0)
}

func (m *MockUpdateRepository) Delete(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	called := m.Called(ctx, q, id)
	return called.Error(0)
}

func (m *MockUpdateRepository) DeleteBySource(ctx context.Context, q repository.DBExecutor, sourceID uuid.UUID) error {
	called := m.Called(ctx, q, sourceID)
	return called.Error(0)
}

// MockEventRepository is a mock implementation of repository.EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, q repository.DBExecutor, event *domain.NetWorthEvent) error {
	called := m.Called(ctx, q, event)
	return called.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, q repository.DBExecutor, userID, id uuid.UUID) (*domain.NetWorthEvent, error) {
	called := m.Called(ctx, q, userID, id)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).(*domain.NetWorthEvent), called.Error(1)
}

func (m *MockEventRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID uuid.UUID, since *time.Time, limit int) ([]domain.NetWorthEvent, error) {
	called := m.Called(ctx, q, userID, since, limit)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).([]domain.NetWorthEvent), called.Error(1)
}

func (m *MockEventRepository) Latest(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) (*domain.NetWorthEvent, error) {
	called := m.Called(ctx, q, userID)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).(*domain.NetWorthEvent), called.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, q repository.DBExecutor, userID, id uuid.UUID) error {
	called := m.Called(ctx, q, userID, id)
	return called.Error(0)
}

// MockNetWorthService is a mock implementation of NetWorthService.
type MockNetWorthService struct {
	mock.Mock
}

func (m *MockNetWorthService) Current(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	called := m.Called(ctx, userID)
	return called.Get(0).(decimal.Decimal), called.Error(1)
}

func (m *MockNetWorthService) Historical(ctx context.Context, userID uuid.UUID, period, startDate string) ([]HistoricalPoint, error) {
	called := m.Called(ctx, userID, period, startDate)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).([]HistoricalPoint), called.Error(1)
}
