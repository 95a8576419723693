package usecase

import (
	"context"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReportUsecase is a mock type for the ReportUsecase type
type MockReportUsecase struct {
	mock.Mock
}

type MockReportUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportUsecase) EXPECT() *MockReportUsecase_Expecter {
	return &MockReportUsecase_Expecter{mock: &_m.Mock}
}

// GetReport provides a mock function with given fields: ctx, id
func (_m *MockReportUsecase) GetReport(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetReport")
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

// MockReportUsecase_GetReport_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetReport'
type MockReportUsecase_GetReport_Call struct {
	*mock.Call
}

// GetReport is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockReportUsecase_Expecter) GetReport(ctx interface{}, id interface{}) *MockReportUsecase_GetReport_Call {
	return &MockReportUsecase_GetReport_Call{Call: _e.mock.On("GetReport", ctx, id)}
}

func (_c *MockReportUsecase_GetReport_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockReportUsecase_GetReport_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockReportUsecase_GetReport_Call) Return(_a0 *entity.Report, _a1 error) *MockReportUsecase_GetReport_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportUsecase_GetReport_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Report, error)) *MockReportUsecase_GetReport_Call {
	_c.Call.Return(run)
	return _c
}

// ListActionableReports provides a mock function with given fields: ctx
func (_m *MockReportUsecase) ListActionableReports(ctx context.Context) ([]*entity.Report, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListActionableReports")
	}

	var r0 []*entity.Report
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Report, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Report); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Report)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportUsecase_ListActionableReports_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListActionableReports'
type MockReportUsecase_ListActionableReports_Call struct {
	*mock.Call
}

// ListActionableReports is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockReportUsecase_Expecter) ListActionableReports(ctx interface{}) *MockReportUsecase_ListActionableReports_Call {
	return &MockReportUsecase_ListActionableReports_Call{Call: _e.mock.On("ListActionableReports", ctx)}
}

func (_c *MockReportUsecase_ListActionableReports_Call) Run(run func(ctx context.Context)) *MockReportUsecase_ListActionableReports_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockReportUsecase_ListActionableReports_Call) Return(_a0 []*entity.Report, _a1 error) *MockReportUsecase_ListActionableReports_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportUsecase_ListActionableReports_Call) RunAndReturn(run func(context.Context) ([]*entity.Report, error)) *MockReportUsecase_ListActionableReports_Call {
	_c.Call.Return(run)
	return _c
}

// ListReports provides a mock function with given fields: ctx, input
func (_m *MockReportUsecase) ListReports(ctx context.Context, input *usecase.ListReportsInput) ([]*entity.Report, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for ListReports")
	}

	var r0 []*entity.Report
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.ListReportsInput) ([]*entity.Report, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.ListReportsInput) []*entity.Report); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Report)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.ListReportsInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportUsecase_ListReports_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListReports'
type MockReportUsecase_ListReports_Call struct {
	*mock.Call
}

// ListReports is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.ListReportsInput
func (_e *MockReportUsecase_Expecter) ListReports(ctx interface{}, input interface{}) *MockReportUsecase_ListReports_Call {
	return &MockReportUsecase_ListReports_Call{Call: _e.mock.On("ListReports", ctx, input)}
}

func (_c *MockReportUsecase_ListReports_Call) Run(run func(ctx context.Context, input *usecase.ListReportsInput)) *MockReportUsecase_ListReports_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.ListReportsInput))
	})
	return _c
}

func (_c *MockReportUsecase_ListReports_Call) Return(_a0 []*entity.Report, _a1 error) *MockReportUsecase_ListReports_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportUsecase_ListReports_Call) RunAndReturn(run func(context.Context, *usecase.ListReportsInput) ([]*entity.Report, error)) *MockReportUsecase_ListReports_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateReportStatus provides a mock function with given fields: ctx, id, input
func (_m *MockReportUsecase) UpdateReportStatus(ctx context.Context, id uuid.UUID, input *usecase.UpdateReportStatusInput) (*entity.Report, error) {
	ret := _m.Called(ctx, id, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateReportStatus")
	}

	var r0 *entity.Report
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateReportStatusInput) (*entity.Report, error)); ok {
		return rf(ctx, id, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateReportStatusInput) *entity.Report); ok {
		r0 = rf(ctx, id, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Report)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.UpdateReportStatusInput) error); ok {
		r1 = rf(ctx, id, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportUsecase_UpdateReportStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateReportStatus'
type MockReportUsecase_UpdateReportStatus_Call struct {
	*mock.Call
}

// UpdateReportStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - input *usecase.UpdateReportStatusInput
func (_e *MockReportUsecase_Expecter) UpdateReportStatus(ctx interface{}, id interface{}, input interface{}) *MockReportUsecase_UpdateReportStatus_Call {
	return &MockReportUsecase_UpdateReportStatus_Call{Call: _e.mock.On("UpdateReportStatus", ctx, id, input)}
}

func (_c *MockReportUsecase_UpdateReportStatus_Call) Run(run func(ctx context.Context, id uuid.UUID, input *usecase.UpdateReportStatusInput)) *MockReportUsecase_UpdateReportStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(*usecase.UpdateReportStatusInput))
	})
	return _c
}

func (_c *MockReportUsecase_UpdateReportStatus_Call) Return(_a0 *entity.Report, _a1 error) *MockReportUsecase_UpdateReportStatus_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportUsecase_UpdateReportStatus_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.UpdateReportStatusInput) (*entity.Report, error)) *MockReportUsecase_UpdateReportStatus_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockReportUsecase creates a new instance of MockReportUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockReportUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportUsecase {
	mock := &MockReportUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
