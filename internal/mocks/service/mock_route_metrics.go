package service

import (
	"time"

	"nagarsetu/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockRouteMetrics is a mock type for the RouteMetrics type
type MockRouteMetrics struct {
	mock.Mock
}

type MockRouteMetrics_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRouteMetrics) EXPECT() *MockRouteMetrics_Expecter {
	return &MockRouteMetrics_Expecter{mock: &_m.Mock}
}

// ObserveRoute provides a mock function with given fields: route, elapsed
func (_m *MockRouteMetrics) ObserveRoute(route *entity.Route, elapsed time.Duration) {
	_m.Called(route, elapsed)
}

// MockRouteMetrics_ObserveRoute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ObserveRoute'
type MockRouteMetrics_ObserveRoute_Call struct {
	*mock.Call
}

// ObserveRoute is a helper method to define mock.On call
//   - route *entity.Route
//   - elapsed time.Duration
func (_e *MockRouteMetrics_Expecter) ObserveRoute(route interface{}, elapsed interface{}) *MockRouteMetrics_ObserveRoute_Call {
	return &MockRouteMetrics_ObserveRoute_Call{Call: _e.mock.On("ObserveRoute", route, elapsed)}
}

func (_c *MockRouteMetrics_ObserveRoute_Call) Run(run func(route *entity.Route, elapsed time.Duration)) *MockRouteMetrics_ObserveRoute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*entity.Route), args[1].(time.Duration))
	})
	return _c
}

func (_c *MockRouteMetrics_ObserveRoute_Call) Return() *MockRouteMetrics_ObserveRoute_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockRouteMetrics_ObserveRoute_Call) RunAndReturn(run func(*entity.Route, time.Duration)) *MockRouteMetrics_ObserveRoute_Call {
	_c.Run(run)
	return _c
}

// NewMockRouteMetrics creates a new instance of MockRouteMetrics. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRouteMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRouteMetrics {
	mock := &MockRouteMetrics{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
