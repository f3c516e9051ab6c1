package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jmvillal/tasktrack/internal/domain"
	"github.com/jmvillal/tasktrack/internal/store"
)

// MockTaskStore is a mock implementation of store.TaskStore
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) FindByTitleAndUser(ctx context.Context, title, userID string) (*domain.Task, error) {
	args := m.Called(ctx, title, userID)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskStore) CountByUserAndStatus(
	ctx context.Context,
	userID string,
	status domain.Status,
) (int64, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskStore) FindPageByUser(
	ctx context.Context,
	userID string,
	page store.PageRequest,
) ([]*domain.Task, error) {
	args := m.Called(ctx, userID, page)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	args := m.Called(ctx, task)
	saved, _ := args.Get(0).(*domain.Task)
	return saved, args.Error(1)
}

// MockTaskCache is a mock implementation of the TaskCache interface
type MockTaskCache struct {
	mock.Mock
}

func (m *MockTaskCache) GetTask(ctx context.Context, id string) (*domain.Task, bool, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Bool(1), args.Error(2)
}

func (m *MockTaskCache) SetTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskCache) Invalidate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
