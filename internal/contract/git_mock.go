package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a mock implementation of GitClient for testing.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]string, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	lines, _ := ret.Get(0).([]string)
	return lines, ret.Error(1)
}

// GetMonthLog implements the GitClient interface.
func (m *MockGitClient) GetMonthLog(ctx context.Context, repoPath string) ([]string, error) {
	ret := m.Called(ctx, repoPath)
	lines, _ := ret.Get(0).([]string)
	return lines, ret.Error(1)
}

// GetWeekdayLog implements the GitClient interface.
func (m *MockGitClient) GetWeekdayLog(ctx context.Context, repoPath string) ([]string, error) {
	ret := m.Called(ctx, repoPath)
	lines, _ := ret.Get(0).([]string)
	return lines, ret.Error(1)
}

// GetShortstatLog implements the GitClient interface.
func (m *MockGitClient) GetShortstatLog(ctx context.Context, repoPath string) ([]string, error) {
	ret := m.Called(ctx, repoPath)
	lines, _ := ret.Get(0).([]string)
	return lines, ret.Error(1)
}
