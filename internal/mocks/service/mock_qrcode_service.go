package service

import (
	"nagarsetu/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock type for the QRCodeService type
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

// DirectionsURL provides a mock function with given fields: route
func (_m *MockQRCodeService) DirectionsURL(route *entity.Route) (string, error) {
	ret := _m.Called(route)

	if len(ret) == 0 {
		panic("no return value specified for DirectionsURL")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(*entity.Route) (string, error)); ok {
		return rf(route)
	}
	if rf, ok := ret.Get(0).(func(*entity.Route) string); ok {
		r0 = rf(route)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(*entity.Route) error); ok {
		r1 = rf(route)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQRCodeService_DirectionsURL_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DirectionsURL'
type MockQRCodeService_DirectionsURL_Call struct {
	*mock.Call
}

// DirectionsURL is a helper method to define mock.On call
//   - route *entity.Route
func (_e *MockQRCodeService_Expecter) DirectionsURL(route interface{}) *MockQRCodeService_DirectionsURL_Call {
	return &MockQRCodeService_DirectionsURL_Call{Call: _e.mock.On("DirectionsURL", route)}
}

func (_c *MockQRCodeService_DirectionsURL_Call) Run(run func(route *entity.Route)) *MockQRCodeService_DirectionsURL_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*entity.Route))
	})
	return _c
}

func (_c *MockQRCodeService_DirectionsURL_Call) Return(_a0 string, _a1 error) *MockQRCodeService_DirectionsURL_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQRCodeService_DirectionsURL_Call) RunAndReturn(run func(*entity.Route) (string, error)) *MockQRCodeService_DirectionsURL_Call {
	_c.Call.Return(run)
	return _c
}

// GenerateRouteQR provides a mock function with given fields: route
func (_m *MockQRCodeService) GenerateRouteQR(route *entity.Route) ([]byte, error) {
	ret := _m.Called(route)

	if len(ret) == 0 {
		panic("no return value specified for GenerateRouteQR")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(*entity.Route) ([]byte, error)); ok {
		return rf(route)
	}
	if rf, ok := ret.Get(0).(func(*entity.Route) []byte); ok {
		r0 = rf(route)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(*entity.Route) error); ok {
		r1 = rf(route)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQRCodeService_GenerateRouteQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateRouteQR'
type MockQRCodeService_GenerateRouteQR_Call struct {
	*mock.Call
}

// GenerateRouteQR is a helper method to define mock.On call
//   - route *entity.Route
func (_e *MockQRCodeService_Expecter) GenerateRouteQR(route interface{}) *MockQRCodeService_GenerateRouteQR_Call {
	return &MockQRCodeService_GenerateRouteQR_Call{Call: _e.mock.On("GenerateRouteQR", route)}
}

func (_c *MockQRCodeService_GenerateRouteQR_Call) Run(run func(route *entity.Route)) *MockQRCodeService_GenerateRouteQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*entity.Route))
	})
	return _c
}

func (_c *MockQRCodeService_GenerateRouteQR_Call) Return(_a0 []byte, _a1 error) *MockQRCodeService_GenerateRouteQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQRCodeService_GenerateRouteQR_Call) RunAndReturn(run func(*entity.Route) ([]byte, error)) *MockQRCodeService_GenerateRouteQR_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	mock := &MockQRCodeService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
