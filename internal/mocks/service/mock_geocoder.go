package service

import (
	"context"

	"nagarsetu/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockGeocoder is a mock type for the Geocoder type
type MockGeocoder struct {
	mock.Mock
}

type MockGeocoder_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGeocoder) EXPECT() *MockGeocoder_Expecter {
	return &MockGeocoder_Expecter{mock: &_m.Mock}
}

// Reverse provides a mock function with given fields: ctx, lat, lng
func (_m *MockGeocoder) Reverse(ctx context.Context, lat float64, lng float64) (*entity.Location, error) {
	ret := _m.Called(ctx, lat, lng)

	if len(ret) == 0 {
		panic("no return value specified for Reverse")
	}

	var r0 *entity.Location
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, float64, float64) (*entity.Location, error)); ok {
		return rf(ctx, lat, lng)
	}
	if rf, ok := ret.Get(0).(func(context.Context, float64, float64) *entity.Location); ok {
		r0 = rf(ctx, lat, lng)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Location)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, float64, float64) error); ok {
		r1 = rf(ctx, lat, lng)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGeocoder_Reverse_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Reverse'
type MockGeocoder_Reverse_Call struct {
	*mock.Call
}

// Reverse is a helper method to define mock.On call
//   - ctx context.Context
//   - lat float64
//   - lng float64
func (_e *MockGeocoder_Expecter) Reverse(ctx interface{}, lat interface{}, lng interface{}) *MockGeocoder_Reverse_Call {
	return &MockGeocoder_Reverse_Call{Call: _e.mock.On("Reverse", ctx, lat, lng)}
}

func (_c *MockGeocoder_Reverse_Call) Run(run func(ctx context.Context, lat float64, lng float64)) *MockGeocoder_Reverse_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(float64), args[2].(float64))
	})
	return _c
}

func (_c *MockGeocoder_Reverse_Call) Return(_a0 *entity.Location, _a1 error) *MockGeocoder_Reverse_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGeocoder_Reverse_Call) RunAndReturn(run func(context.Context, float64, float64) (*entity.Location, error)) *MockGeocoder_Reverse_Call {
	_c.Call.Return(run)
	return _c
}

// Search provides a mock function with given fields: ctx, query
func (_m *MockGeocoder) Search(ctx context.Context, query string) (*entity.Location, error) {
	ret := _m.Called(ctx, query)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 *entity.Location
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Location, error)); ok {
		return rf(ctx, query)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Location); ok {
		r0 = rf(ctx, query)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Location)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, query)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGeocoder_Search_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Search'
type MockGeocoder_Search_Call struct {
	*mock.Call
}

// Search is a helper method to define mock.On call
//   - ctx context.Context
//   - query string
func (_e *MockGeocoder_Expecter) Search(ctx interface{}, query interface{}) *MockGeocoder_Search_Call {
	return &MockGeocoder_Search_Call{Call: _e.mock.On("Search", ctx, query)}
}

func (_c *MockGeocoder_Search_Call) Run(run func(ctx context.Context, query string)) *MockGeocoder_Search_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockGeocoder_Search_Call) Return(_a0 *entity.Location, _a1 error) *MockGeocoder_Search_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGeocoder_Search_Call) RunAndReturn(run func(context.Context, string) (*entity.Location, error)) *MockGeocoder_Search_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockGeocoder creates a new instance of MockGeocoder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGeocoder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGeocoder {
	mock := &MockGeocoder{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
