package repository

import (
	"context"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReportRepository is a mock type for the ReportRepository type
type MockReportRepository struct {
	mock.Mock
}

type MockReportRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportRepository) EXPECT() *MockReportRepository_Expecter {
	return &MockReportRepository_Expecter{mock: &_m.Mock}
}

// FindReportByID provides a mock function with given fields: ctx, id
func (_m *MockReportRepository) FindReportByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindReportByID")
	}

	var r0 *entity.Report
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Report, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Report); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Report)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportRepository_FindReportByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindReportByID'
type MockReportRepository_FindReportByID_Call struct {
	*mock.Call
}

// FindReportByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockReportRepository_Expecter) FindReportByID(ctx interface{}, id interface{}) *MockReportRepository_FindReportByID_Call {
	return &MockReportRepository_FindReportByID_Call{Call: _e.mock.On("FindReportByID", ctx, id)}
}

func (_c *MockReportRepository_FindReportByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockReportRepository_FindReportByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockReportRepository_FindReportByID_Call) Return(_a0 *entity.Report, _a1 error) *MockReportRepository_FindReportByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportRepository_FindReportByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Report, error)) *MockReportRepository_FindReportByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindReports provides a mock function with given fields: ctx, filter
func (_m *MockReportRepository) FindReports(ctx context.Context, filter repository.ReportFilter) ([]*entity.Report, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for FindReports")
	}

	var r0 []*entity.Report
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, repository.ReportFilter) ([]*entity.Report, error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, repository.ReportFilter) []*entity.Report); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Report)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, repository.ReportFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportRepository_FindReports_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindReports'
type MockReportRepository_FindReports_Call struct {
	*mock.Call
}

// FindReports is a helper method to define mock.On call
//   - ctx context.Context
//   - filter repository.ReportFilter
func (_e *MockReportRepository_Expecter) FindReports(ctx interface{}, filter interface{}) *MockReportRepository_FindReports_Call {
	return &MockReportRepository_FindReports_Call{Call: _e.mock.On("FindReports", ctx, filter)}
}

func (_c *MockReportRepository_FindReports_Call) Run(run func(ctx context.Context, filter repository.ReportFilter)) *MockReportRepository_FindReports_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(repository.ReportFilter))
	})
	return _c
}

func (_c *MockReportRepository_FindReports_Call) Return(_a0 []*entity.Report, _a1 error) *MockReportRepository_FindReports_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportRepository_FindReports_Call) RunAndReturn(run func(context.Context, repository.ReportFilter) ([]*entity.Report, error)) *MockReportRepository_FindReports_Call {
	_c.Call.Return(run)
	return _c
}

// FindReportsByIDs provides a mock function with given fields: ctx, ids
func (_m *MockReportRepository) FindReportsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Report, error) {
	ret := _m.Called(ctx, ids)

	if len(ret) == 0 {
		panic("no return value specified for FindReportsByIDs")
	}

	var r0 []*entity.Report
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []uuid.UUID) ([]*entity.Report, error)); ok {
		return rf(ctx, ids)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []uuid.UUID) []*entity.Report); ok {
		r0 = rf(ctx, ids)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Report)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []uuid.UUID) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportRepository_FindReportsByIDs_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindReportsByIDs'
type MockReportRepository_FindReportsByIDs_Call struct {
	*mock.Call
}

// FindReportsByIDs is a helper method to define mock.On call
//   - ctx context.Context
//   - ids []uuid.UUID
func (_e *MockReportRepository_Expecter) FindReportsByIDs(ctx interface{}, ids interface{}) *MockReportRepository_FindReportsByIDs_Call {
	return &MockReportRepository_FindReportsByIDs_Call{Call: _e.mock.On("FindReportsByIDs", ctx, ids)}
}

func (_c *MockReportRepository_FindReportsByIDs_Call) Run(run func(ctx context.Context, ids []uuid.UUID)) *MockReportRepository_FindReportsByIDs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]uuid.UUID))
	})
	return _c
}

func (_c *MockReportRepository_FindReportsByIDs_Call) Return(_a0 []*entity.Report, _a1 error) *MockReportRepository_FindReportsByIDs_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportRepository_FindReportsByIDs_Call) RunAndReturn(run func(context.Context, []uuid.UUID) ([]*entity.Report, error)) *MockReportRepository_FindReportsByIDs_Call {
	_c.Call.Return(run)
	return _c
}

// FindReportsByStatus provides a mock function with given fields: ctx, statuses
func (_m *MockReportRepository) FindReportsByStatus(ctx context.Context, statuses []entity.ReportStatus) ([]*entity.Report, error) {
	ret := _m.Called(ctx, statuses)

	if len(ret) == 0 {
		panic("no return value specified for FindReportsByStatus")
	}

	var r0 []*entity.Report
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []entity.ReportStatus) ([]*entity.Report, error)); ok {
		return rf(ctx, statuses)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []entity.ReportStatus) []*entity.Report); ok {
		r0 = rf(ctx, statuses)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Report)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []entity.ReportStatus) error); ok {
		r1 = rf(ctx, statuses)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportRepository_FindReportsByStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindReportsByStatus'
type MockReportRepository_FindReportsByStatus_Call struct {
	*mock.Call
}

// FindReportsByStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - statuses []entity.ReportStatus
func (_e *MockReportRepository_Expecter) FindReportsByStatus(ctx interface{}, statuses interface{}) *MockReportRepository_FindReportsByStatus_Call {
	return &MockReportRepository_FindReportsByStatus_Call{Call: _e.mock.On("FindReportsByStatus", ctx, statuses)}
}

func (_c *MockReportRepository_FindReportsByStatus_Call) Run(run func(ctx context.Context, statuses []entity.ReportStatus)) *MockReportRepository_FindReportsByStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]entity.ReportStatus))
	})
	return _c
}

func (_c *MockReportRepository_FindReportsByStatus_Call) Return(_a0 []*entity.Report, _a1 error) *MockReportRepository_FindReportsByStatus_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportRepository_FindReportsByStatus_Call) RunAndReturn(run func(context.Context, []entity.ReportStatus) ([]*entity.Report, error)) *MockReportRepository_FindReportsByStatus_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateReportStatus provides a mock function with given fields: ctx, id, from, to, comments
func (_m *MockReportRepository) UpdateReportStatus(ctx context.Context, id uuid.UUID, from entity.ReportStatus, to entity.ReportStatus, comments string) error {
	ret := _m.Called(ctx, id, from, to, comments)

	if len(ret) == 0 {
		panic("no return value specified for UpdateReportStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.ReportStatus, entity.ReportStatus, string) error); ok {
		r0 = rf(ctx, id, from, to, comments)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockReportRepository_UpdateReportStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateReportStatus'
type MockReportRepository_UpdateReportStatus_Call struct {
	*mock.Call
}

// UpdateReportStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - from entity.ReportStatus
//   - to entity.ReportStatus
//   - comments string
func (_e *MockReportRepository_Expecter) UpdateReportStatus(ctx interface{}, id interface{}, from interface{}, to interface{}, comments interface{}) *MockReportRepository_UpdateReportStatus_Call {
	return &MockReportRepository_UpdateReportStatus_Call{Call: _e.mock.On("UpdateReportStatus", ctx, id, from, to, comments)}
}

func (_c *MockReportRepository_UpdateReportStatus_Call) Run(run func(ctx context.Context, id uuid.UUID, from entity.ReportStatus, to entity.ReportStatus, comments string)) *MockReportRepository_UpdateReportStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.ReportStatus), args[3].(entity.ReportStatus), args[4].(string))
	})
	return _c
}

func (_c *MockReportRepository_UpdateReportStatus_Call) Return(_a0 error) *MockReportRepository_UpdateReportStatus_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockReportRepository_UpdateReportStatus_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.ReportStatus, entity.ReportStatus, string) error) *MockReportRepository_UpdateReportStatus_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockReportRepository creates a new instance of MockReportRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockReportRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportRepository {
	mock := &MockReportRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
