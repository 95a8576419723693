package repository

import (
	"context"
	"time"

	"nagarsetu/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOutboxRepository is a mock type for the OutboxRepository type
type MockOutboxRepository struct {
	mock.Mock
}

type MockOutboxRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOutboxRepository) EXPECT() *MockOutboxRepository_Expecter {
	return &MockOutboxRepository_Expecter{mock: &_m.Mock}
}

// Enqueue provides a mock function with given fields: ctx, event
func (_m *MockOutboxRepository) Enqueue(ctx context.Context, event *entity.OutboxEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for Enqueue")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.OutboxEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockOutboxRepository_Enqueue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Enqueue'
type MockOutboxRepository_Enqueue_Call struct {
	*mock.Call
}

// Enqueue is a helper method to define mock.On call
//   - ctx context.Context
//   - event *entity.OutboxEvent
func (_e *MockOutboxRepository_Expecter) Enqueue(ctx interface{}, event interface{}) *MockOutboxRepository_Enqueue_Call {
	return &MockOutboxRepository_Enqueue_Call{Call: _e.mock.On("Enqueue", ctx, event)}
}

func (_c *MockOutboxRepository_Enqueue_Call) Run(run func(ctx context.Context, event *entity.OutboxEvent)) *MockOutboxRepository_Enqueue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.OutboxEvent))
	})
	return _c
}

func (_c *MockOutboxRepository_Enqueue_Call) Return(_a0 error) *MockOutboxRepository_Enqueue_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockOutboxRepository_Enqueue_Call) RunAndReturn(run func(context.Context, *entity.OutboxEvent) error) *MockOutboxRepository_Enqueue_Call {
	_c.Call.Return(run)
	return _c
}

// FetchDue provides a mock function with given fields: ctx, now, limit
func (_m *MockOutboxRepository) FetchDue(ctx context.Context, now time.Time, limit int) ([]*entity.OutboxEvent, error) {
	ret := _m.Called(ctx, now, limit)

	if len(ret) == 0 {
		panic("no return value specified for FetchDue")
	}

	var r0 []*entity.OutboxEvent
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, int) ([]*entity.OutboxEvent, error)); ok {
		return rf(ctx, now, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, int) []*entity.OutboxEvent); ok {
		r0 = rf(ctx, now, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.OutboxEvent)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, time.Time, int) error); ok {
		r1 = rf(ctx, now, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOutboxRepository_FetchDue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FetchDue'
type MockOutboxRepository_FetchDue_Call struct {
	*mock.Call
}

// FetchDue is a helper method to define mock.On call
//   - ctx context.Context
//   - now time.Time
//   - limit int
func (_e *MockOutboxRepository_Expecter) FetchDue(ctx interface{}, now interface{}, limit interface{}) *MockOutboxRepository_FetchDue_Call {
	return &MockOutboxRepository_FetchDue_Call{Call: _e.mock.On("FetchDue", ctx, now, limit)}
}

func (_c *MockOutboxRepository_FetchDue_Call) Run(run func(ctx context.Context, now time.Time, limit int)) *MockOutboxRepository_FetchDue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(time.Time), args[2].(int))
	})
	return _c
}

func (_c *MockOutboxRepository_FetchDue_Call) Return(_a0 []*entity.OutboxEvent, _a1 error) *MockOutboxRepository_FetchDue_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOutboxRepository_FetchDue_Call) RunAndReturn(run func(context.Context, time.Time, int) ([]*entity.OutboxEvent, error)) *MockOutboxRepository_FetchDue_Call {
	_c.Call.Return(run)
	return _c
}

// MarkDead provides a mock function with given fields: ctx, id, lastErr
func (_m *MockOutboxRepository) MarkDead(ctx context.Context, id uuid.UUID, lastErr string) error {
	ret := _m.Called(ctx, id, lastErr)

	if len(ret) == 0 {
		panic("no return value specified for MarkDead")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) error); ok {
		r0 = rf(ctx, id, lastErr)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockOutboxRepository_MarkDead_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkDead'
type MockOutboxRepository_MarkDead_Call struct {
	*mock.Call
}

// MarkDead is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - lastErr string
func (_e *MockOutboxRepository_Expecter) MarkDead(ctx interface{}, id interface{}, lastErr interface{}) *MockOutboxRepository_MarkDead_Call {
	return &MockOutboxRepository_MarkDead_Call{Call: _e.mock.On("MarkDead", ctx, id, lastErr)}
}

func (_c *MockOutboxRepository_MarkDead_Call) Run(run func(ctx context.Context, id uuid.UUID, lastErr string)) *MockOutboxRepository_MarkDead_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(string))
	})
	return _c
}

func (_c *MockOutboxRepository_MarkDead_Call) Return(_a0 error) *MockOutboxRepository_MarkDead_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockOutboxRepository_MarkDead_Call) RunAndReturn(run func(context.Context, uuid.UUID, string) error) *MockOutboxRepository_MarkDead_Call {
	_c.Call.Return(run)
	return _c
}

// MarkFailed provides a mock function with given fields: ctx, id, lastErr, nextAttemptAt
func (_m *MockOutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, nextAttemptAt time.Time) error {
	ret := _m.Called(ctx, id, lastErr, nextAttemptAt)

	if len(ret) == 0 {
		panic("no return value specified for MarkFailed")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string, time.Time) error); ok {
		r0 = rf(ctx, id, lastErr, nextAttemptAt)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockOutboxRepository_MarkFailed_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkFailed'
type MockOutboxRepository_MarkFailed_Call struct {
	*mock.Call
}

// MarkFailed is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - lastErr string
//   - nextAttemptAt time.Time
func (_e *MockOutboxRepository_Expecter) MarkFailed(ctx interface{}, id interface{}, lastErr interface{}, nextAttemptAt interface{}) *MockOutboxRepository_MarkFailed_Call {
	return &MockOutboxRepository_MarkFailed_Call{Call: _e.mock.On("MarkFailed", ctx, id, lastErr, nextAttemptAt)}
}

func (_c *MockOutboxRepository_MarkFailed_Call) Run(run func(ctx context.Context, id uuid.UUID, lastErr string, nextAttemptAt time.Time)) *MockOutboxRepository_MarkFailed_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(string), args[3].(time.Time))
	})
	return _c
}

func (_c *MockOutboxRepository_MarkFailed_Call) Return(_a0 error) *MockOutboxRepository_MarkFailed_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockOutboxRepository_MarkFailed_Call) RunAndReturn(run func(context.Context, uuid.UUID, string, time.Time) error) *MockOutboxRepository_MarkFailed_Call {
	_c.Call.Return(run)
	return _c
}

// MarkSent provides a mock function with given fields: ctx, id
func (_m *MockOutboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for MarkSent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockOutboxRepository_MarkSent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkSent'
type MockOutboxRepository_MarkSent_Call struct {
	*mock.Call
}

// MarkSent is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockOutboxRepository_Expecter) MarkSent(ctx interface{}, id interface{}) *MockOutboxRepository_MarkSent_Call {
	return &MockOutboxRepository_MarkSent_Call{Call: _e.mock.On("MarkSent", ctx, id)}
}

func (_c *MockOutboxRepository_MarkSent_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockOutboxRepository_MarkSent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockOutboxRepository_MarkSent_Call) Return(_a0 error) *MockOutboxRepository_MarkSent_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockOutboxRepository_MarkSent_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockOutboxRepository_MarkSent_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockOutboxRepository creates a new instance of MockOutboxRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOutboxRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOutboxRepository {
	mock := &MockOutboxRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
