package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
)

// --- Mock TransactionManager ---

// passthroughTx runs fn on the caller's context without a store.
type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Mock PositionManager ---
type MockPositionManager struct {
	mock.Mock
}

func (m *MockPositionManager) GetMaxPosition(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPositionManager) CompactPositions(ctx context.Context, user string, now time.Time) error {
	args := m.Called(ctx, user, now)
	return args.Error(0)
}

func (m *MockPositionManager) MovePosition(ctx context.Context, id int64, from, to int, user string, now time.Time) error {
	args := m.Called(ctx, id, from, to, user, now)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	MockPositionManager
}

func (m *MockCurrencyRepository) FindByID(ctx context.Context, id int64) (*domain.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindByTitle(ctx context.Context, title string) (*domain.Currency, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindByPosition(ctx context.Context, position int) (*domain.Currency, error) {
	args := m.Called(ctx, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindAll(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Save(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Update(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) DeleteByID(ctx context.Context, id int64, user string) (bool, error) {
	args := m.Called(ctx, id, user)
	return args.Bool(0), args.Error(1)
}

func (m *MockCurrencyRepository) DeleteByTitle(ctx context.Context, title string, user string) (bool, error) {
	args := m.Called(ctx, title, user)
	return args.Bool(0), args.Error(1)
}

// --- Mock OperationRepository ---
type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) FindByID(ctx context.Context, id int64) (*domain.Operation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) list(args mock.Arguments) ([]domain.Operation, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) FindAll(ctx context.Context) ([]domain.Operation, error) {
	return m.list(m.Called(ctx))
}

func (m *MockOperationRepository) FindAllByAccountID(ctx context.Context, accountID int64) ([]domain.Operation, error) {
	return m.list(m.Called(ctx, accountID))
}

func (m *MockOperationRepository) FindAllByCategoryID(ctx context.Context, categoryID int64) ([]domain.Operation, error) {
	return m.list(m.Called(ctx, categoryID))
}

func (m *MockOperationRepository) FindAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Operation, error) {
	return m.list(m.Called(ctx, currencyID))
}

func (m *MockOperationRepository) FindAllByComment(ctx context.Context, comment string) ([]domain.Operation, error) {
	return m.list(m.Called(ctx, comment))
}

func (m *MockOperationRepository) FindAllByType(ctx context.Context, operationType domain.OperationType) ([]domain.Operation, error) {
	return m.list(m.Called(ctx, operationType))
}

func (m *MockOperationRepository) FindAllByDate(ctx context.Context, date time.Time) ([]domain.Operation, error) {
	return m.list(m.Called(ctx, date))
}

func (m *MockOperationRepository) Save(ctx context.Context, operation domain.Operation) (*domain.Operation, error) {
	args := m.Called(ctx, operation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) Update(ctx context.Context, operation domain.Operation) (*domain.Operation, error) {
	args := m.Called(ctx, operation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) DeleteByID(ctx context.Context, id int64, user string) (bool, error) {
	args := m.Called(ctx, id, user)
	return args.Bool(0), args.Error(1)
}

// stepClock returns a strictly increasing time on every call.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock(start time.Time) *stepClock {
	return &stepClock{t: start.UTC().Truncate(time.Millisecond)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}
