package notify

import (
	"github.com/stretchr/testify/mock"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// MockNotifier is a mock implementation of contract.Notifier for testing.
type MockNotifier struct {
	mock.Mock
}

var _ contract.Notifier = &MockNotifier{} // Compile-time check

// Drift implements the Notifier interface.
func (m *MockNotifier) Drift(results []schema.CheckResult) {
	m.Called(results)
}
