package service

import (
	"github.com/stretchr/testify/mock"
)

// MockOutboxMetrics is a mock type for the OutboxMetrics type
type MockOutboxMetrics struct {
	mock.Mock
}

type MockOutboxMetrics_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOutboxMetrics) EXPECT() *MockOutboxMetrics_Expecter {
	return &MockOutboxMetrics_Expecter{mock: &_m.Mock}
}

// ObserveOutbox provides a mock function with given fields: topic, outcome
func (_m *MockOutboxMetrics) ObserveOutbox(topic string, outcome string) {
	_m.Called(topic, outcome)
}

// MockOutboxMetrics_ObserveOutbox_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ObserveOutbox'
type MockOutboxMetrics_ObserveOutbox_Call struct {
	*mock.Call
}

// ObserveOutbox is a helper method to define mock.On call
//   - topic string
//   - outcome string
func (_e *MockOutboxMetrics_Expecter) ObserveOutbox(topic interface{}, outcome interface{}) *MockOutboxMetrics_ObserveOutbox_Call {
	return &MockOutboxMetrics_ObserveOutbox_Call{Call: _e.mock.On("ObserveOutbox", topic, outcome)}
}

func (_c *MockOutboxMetrics_ObserveOutbox_Call) Run(run func(topic string, outcome string)) *MockOutboxMetrics_ObserveOutbox_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string))
	})
	return _c
}

func (_c *MockOutboxMetrics_ObserveOutbox_Call) Return() *MockOutboxMetrics_ObserveOutbox_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockOutboxMetrics_ObserveOutbox_Call) RunAndReturn(run func(string, string)) *MockOutboxMetrics_ObserveOutbox_Call {
	_c.Run(run)
	return _c
}

// NewMockOutboxMetrics creates a new instance of MockOutboxMetrics. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOutboxMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOutboxMetrics {
	mock := &MockOutboxMetrics{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
