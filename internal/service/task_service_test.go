package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mjachowicz/taskpad-api/internal/domain"
	"github.com/mjachowicz/taskpad-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSessionStore is a function-field mock of store.SessionStore.
type MockSessionStore struct {
	IssueKeyFn   func(ctx context.Context) (string, error)
	ResolveKeyFn func(ctx context.Context, apiKey string) error
	ListTasksFn  func(ctx context.Context, apiKey string) ([]domain.Task, error)
	CreateTaskFn func(ctx context.Context, apiKey, name string, done bool) (domain.Task, error)
	UpdateTaskFn func(ctx context.Context, apiKey, taskID string, fields domain.TaskFields) (domain.Task, error)
	DeleteTaskFn func(ctx context.Context, apiKey, taskID string) error
}

func (m *MockSessionStore) IssueKey(ctx context.Context) (string, error) {
	if m.IssueKeyFn != nil {
		return m.IssueKeyFn(ctx)
	}
	return "", nil
}

func (m *MockSessionStore) ResolveKey(ctx context.Context, apiKey string) error {
	if m.ResolveKeyFn != nil {
		return m.ResolveKeyFn(ctx, apiKey)
	}
	return nil
}

func (m *MockSessionStore) ListTasks(ctx context.Context, apiKey string) ([]domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, apiKey)
	}
	return nil, nil
}

func (m *MockSessionStore) CreateTask(
	ctx context.Context,
	apiKey, name string,
	done bool,
) (domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, apiKey, name, done)
	}
	return domain.Task{}, nil
}

func (m *MockSessionStore) UpdateTask(
	ctx context.Context,
	apiKey, taskID string,
	fields domain.TaskFields,
) (domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, apiKey, taskID, fields)
	}
	return domain.Task{}, nil
}

func (m *MockSessionStore) DeleteTask(ctx context.Context, apiKey, taskID string) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, apiKey, taskID)
	}
	return nil
}

func newTestService(t *testing.T, mock *MockSessionStore) TaskService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewTaskService(mock, logger)
	require.NoError(t, err)
	return svc
}

func TestNewTaskService_NilDependencies(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewTaskService(nil, logger)
	assert.Error(t, err)

	_, err = NewTaskService(&MockSessionStore{}, nil)
	assert.Error(t, err)
}

func TestCreateTask_NormalizesBeforeStore(t *testing.T) {
	var gotName string
	var gotDone bool
	mock := &MockSessionStore{
		CreateTaskFn: func(ctx context.Context, apiKey, name string, done bool) (domain.Task, error) {
			gotName = name
			gotDone = done
			return domain.Task{ID: "t1", Name: name, Done: done}, nil
		},
	}
	svc := newTestService(t, mock)

	task, err := svc.CreateTask(context.Background(), "key", map[string]any{"name": "  Buy Milk "})
	require.NoError(t, err)

	assert.Equal(t, "buy milk", gotName, "store must receive the normalized name")
	assert.False(t, gotDone, "omitted done defaults to false")
	assert.Equal(t, "t1", task.ID)
}

func TestCreateTask_InvalidFieldsNeverReachStore(t *testing.T) {
	called := false
	mock := &MockSessionStore{
		CreateTaskFn: func(ctx context.Context, apiKey, name string, done bool) (domain.Task, error) {
			called = true
			return domain.Task{}, nil
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.CreateTask(context.Background(), "key", map[string]any{"done": "yes"})
	require.Error(t, err)

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, domain.MsgNameRequired, fieldErrs["name"])
	assert.Equal(t, domain.MsgDoneType, fieldErrs["done"])
	assert.False(t, called, "store must not be touched on validation failure")
}

func TestCreateTask_PropagatesStoreErrors(t *testing.T) {
	mock := &MockSessionStore{
		CreateTaskFn: func(ctx context.Context, apiKey, name string, done bool) (domain.Task, error) {
			return domain.Task{}, store.ErrDuplicateTaskName
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.CreateTask(context.Background(), "key", map[string]any{"name": "buy milk"})
	assert.ErrorIs(t, err, store.ErrDuplicateTaskName)
}

func TestUpdateTask_PassesOnlyProvidedFields(t *testing.T) {
	var gotFields domain.TaskFields
	mock := &MockSessionStore{
		UpdateTaskFn: func(ctx context.Context, apiKey, taskID string, fields domain.TaskFields) (domain.Task, error) {
			gotFields = fields
			return domain.Task{ID: taskID}, nil
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.UpdateTask(context.Background(), "key", "t1", map[string]any{"done": true})
	require.NoError(t, err)

	assert.Nil(t, gotFields.Name, "absent name must stay nil")
	require.NotNil(t, gotFields.Done)
	assert.True(t, *gotFields.Done)
}

func TestUpdateTask_InvalidFieldsNeverReachStore(t *testing.T) {
	called := false
	mock := &MockSessionStore{
		UpdateTaskFn: func(ctx context.Context, apiKey, taskID string, fields domain.TaskFields) (domain.Task, error) {
			called = true
			return domain.Task{}, nil
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.UpdateTask(context.Background(), "key", "t1", map[string]any{"name": ""})
	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.False(t, called)
}

func TestDeleteTask_PropagatesStoreErrors(t *testing.T) {
	mock := &MockSessionStore{
		DeleteTaskFn: func(ctx context.Context, apiKey, taskID string) error {
			return store.ErrTaskNotFound
		},
	}
	svc := newTestService(t, mock)

	err := svc.DeleteTask(context.Background(), "key", "missing")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestIssueKey_DelegatesToStore(t *testing.T) {
	mock := &MockSessionStore{
		IssueKeyFn: func(ctx context.Context) (string, error) {
			return "fresh-key", nil
		},
	}
	svc := newTestService(t, mock)

	key, err := svc.IssueKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-key", key)
}
