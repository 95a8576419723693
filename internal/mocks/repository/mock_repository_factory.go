package repository

import (
	"nagarsetu/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// NewOutboxRepository provides a mock function with given fields:
func (_m *MockRepositoryFactory) NewOutboxRepository() repository.OutboxRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewOutboxRepository")
	}

	var r0 repository.OutboxRepository
	if rf, ok := ret.Get(0).(func() repository.OutboxRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.OutboxRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_NewOutboxRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewOutboxRepository'
type MockRepositoryFactory_NewOutboxRepository_Call struct {
	*mock.Call
}

// NewOutboxRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewOutboxRepository() *MockRepositoryFactory_NewOutboxRepository_Call {
	return &MockRepositoryFactory_NewOutboxRepository_Call{Call: _e.mock.On("NewOutboxRepository")}
}

func (_c *MockRepositoryFactory_NewOutboxRepository_Call) Run(run func()) *MockRepositoryFactory_NewOutboxRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_NewOutboxRepository_Call) Return(_a0 repository.OutboxRepository) *MockRepositoryFactory_NewOutboxRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_NewOutboxRepository_Call) RunAndReturn(run func() repository.OutboxRepository) *MockRepositoryFactory_NewOutboxRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewReportRepository provides a mock function with given fields:
func (_m *MockRepositoryFactory) NewReportRepository() repository.ReportRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewReportRepository")
	}

	var r0 repository.ReportRepository
	if rf, ok := ret.Get(0).(func() repository.ReportRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.ReportRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_NewReportRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewReportRepository'
type MockRepositoryFactory_NewReportRepository_Call struct {
	*mock.Call
}

// NewReportRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewReportRepository() *MockRepositoryFactory_NewReportRepository_Call {
	return &MockRepositoryFactory_NewReportRepository_Call{Call: _e.mock.On("NewReportRepository")}
}

func (_c *MockRepositoryFactory_NewReportRepository_Call) Run(run func()) *MockRepositoryFactory_NewReportRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_NewReportRepository_Call) Return(_a0 repository.ReportRepository) *MockRepositoryFactory_NewReportRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_NewReportRepository_Call) RunAndReturn(run func() repository.ReportRepository) *MockRepositoryFactory_NewReportRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	mock := &MockRepositoryFactory{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
