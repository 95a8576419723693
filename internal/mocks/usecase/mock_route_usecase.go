package usecase

import (
	"context"

	"nagarsetu/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockRouteUsecase is a mock type for the RouteUsecase type
type MockRouteUsecase struct {
	mock.Mock
}

type MockRouteUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRouteUsecase) EXPECT() *MockRouteUsecase_Expecter {
	return &MockRouteUsecase_Expecter{mock: &_m.Mock}
}

// OptimizeRoute provides a mock function with given fields: ctx, input
func (_m *MockRouteUsecase) OptimizeRoute(ctx context.Context, input *usecase.OptimizeRouteInput) (*usecase.OptimizeRouteOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for OptimizeRoute")
	}

	var r0 *usecase.OptimizeRouteOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.OptimizeRouteInput) (*usecase.OptimizeRouteOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.OptimizeRouteInput) *usecase.OptimizeRouteOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.OptimizeRouteOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.OptimizeRouteInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRouteUsecase_OptimizeRoute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'OptimizeRoute'
type MockRouteUsecase_OptimizeRoute_Call struct {
	*mock.Call
}

// OptimizeRoute is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.OptimizeRouteInput
func (_e *MockRouteUsecase_Expecter) OptimizeRoute(ctx interface{}, input interface{}) *MockRouteUsecase_OptimizeRoute_Call {
	return &MockRouteUsecase_OptimizeRoute_Call{Call: _e.mock.On("OptimizeRoute", ctx, input)}
}

func (_c *MockRouteUsecase_OptimizeRoute_Call) Run(run func(ctx context.Context, input *usecase.OptimizeRouteInput)) *MockRouteUsecase_OptimizeRoute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.OptimizeRouteInput))
	})
	return _c
}

func (_c *MockRouteUsecase_OptimizeRoute_Call) Return(_a0 *usecase.OptimizeRouteOutput, _a1 error) *MockRouteUsecase_OptimizeRoute_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRouteUsecase_OptimizeRoute_Call) RunAndReturn(run func(context.Context, *usecase.OptimizeRouteInput) (*usecase.OptimizeRouteOutput, error)) *MockRouteUsecase_OptimizeRoute_Call {
	_c.Call.Return(run)
	return _c
}

// RouteQRCode provides a mock function with given fields: ctx, input
func (_m *MockRouteUsecase) RouteQRCode(ctx context.Context, input *usecase.OptimizeRouteInput) ([]byte, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for RouteQRCode")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.OptimizeRouteInput) ([]byte, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.OptimizeRouteInput) []byte); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.OptimizeRouteInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRouteUsecase_RouteQRCode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RouteQRCode'
type MockRouteUsecase_RouteQRCode_Call struct {
	*mock.Call
}

// RouteQRCode is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.OptimizeRouteInput
func (_e *MockRouteUsecase_Expecter) RouteQRCode(ctx interface{}, input interface{}) *MockRouteUsecase_RouteQRCode_Call {
	return &MockRouteUsecase_RouteQRCode_Call{Call: _e.mock.On("RouteQRCode", ctx, input)}
}

func (_c *MockRouteUsecase_RouteQRCode_Call) Run(run func(ctx context.Context, input *usecase.OptimizeRouteInput)) *MockRouteUsecase_RouteQRCode_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.OptimizeRouteInput))
	})
	return _c
}

func (_c *MockRouteUsecase_RouteQRCode_Call) Return(_a0 []byte, _a1 error) *MockRouteUsecase_RouteQRCode_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRouteUsecase_RouteQRCode_Call) RunAndReturn(run func(context.Context, *usecase.OptimizeRouteInput) ([]byte, error)) *MockRouteUsecase_RouteQRCode_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRouteUsecase creates a new instance of MockRouteUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRouteUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRouteUsecase {
	mock := &MockRouteUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
