// Package memstore implements the store.SessionStore interface with
// process-local memory. Sessions live only as long as the process; both the
// session registry and each task list are bounded, evicting their oldest
// entry first (FIFO) when a cap would be exceeded.
package memstore

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/mjachowicz/taskpad-api/internal/config"
	"github.com/mjachowicz/taskpad-api/internal/domain"
	"github.com/mjachowicz/taskpad-api/internal/store"
)

// session holds one API key's task list. Its mutex serializes all mutations
// of the list, so two concurrent operations on the same key cannot interleave.
type session struct {
	mu    sync.Mutex
	tasks []domain.Task
}

// Store is an in-memory SessionStore. The registry mutex guards the key map
// and the issuance-order queue only; task-list access takes the per-session
// mutex, keeping different sessions fully independent.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
	order    []string // issued keys, oldest first

	maxSessions int
	maxTasks    int
	logger      *slog.Logger
}

// Statically ensure Store satisfies the interface.
var _ store.SessionStore = (*Store)(nil)

// New creates a Store bounded by the given configuration.
func New(cfg config.StoreConfig, logger *slog.Logger) *Store {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for memstore.Store")
	}

	return &Store{
		sessions:    make(map[string]*session),
		maxSessions: cfg.MaxSessions,
		maxTasks:    cfg.MaxTasksPerSession,
		logger:      logger.With(slog.String("component", "memstore")),
	}
}

// IssueKey implements store.SessionStore.
func (s *Store) IssueKey(ctx context.Context) (string, error) {
	key := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[key] = &session{tasks: domain.DefaultTasks()}
	s.order = append(s.order, key)

	if len(s.order) > s.maxSessions {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.sessions, oldest)
		s.logger.Info("evicted oldest session to enforce registry cap",
			slog.String("evicted_key", oldest),
			slog.Int("max_sessions", s.maxSessions))
	}

	s.logger.Debug("issued new API key", slog.Int("session_count", len(s.order)))
	return key, nil
}

// ResolveKey implements store.SessionStore.
func (s *Store) ResolveKey(ctx context.Context, apiKey string) error {
	_, err := s.session(apiKey)
	return err
}

// ListTasks implements store.SessionStore.
func (s *Store) ListTasks(ctx context.Context, apiKey string) ([]domain.Task, error) {
	sess, err := s.session(apiKey)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// Copy so callers never alias the session's backing slice.
	tasks := make([]domain.Task, len(sess.tasks))
	copy(tasks, sess.tasks)
	return tasks, nil
}

// CreateTask implements store.SessionStore.
func (s *Store) CreateTask(ctx context.Context, apiKey, name string, done bool) (domain.Task, error) {
	sess, err := s.session(apiKey)
	if err != nil {
		return domain.Task{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	for _, existing := range sess.tasks {
		if existing.Name == name {
			return domain.Task{}, store.ErrDuplicateTaskName
		}
	}

	task := domain.NewTask(name, done)
	sess.tasks = append(sess.tasks, task)

	if len(sess.tasks) > s.maxTasks {
		evicted := sess.tasks[0]
		sess.tasks = append(sess.tasks[:0], sess.tasks[1:]...)
		s.logger.Debug("evicted oldest task to enforce session cap",
			slog.String("evicted_task_id", evicted.ID),
			slog.Int("max_tasks", s.maxTasks))
	}

	return task, nil
}

// UpdateTask implements store.SessionStore.
func (s *Store) UpdateTask(ctx context.Context, apiKey, taskID string, fields domain.TaskFields) (domain.Task, error) {
	sess, err := s.session(apiKey)
	if err != nil {
		return domain.Task{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	for i := range sess.tasks {
		if sess.tasks[i].ID != taskID {
			continue
		}
		if fields.Name != nil {
			sess.tasks[i].Name = *fields.Name
		}
		if fields.Done != nil {
			sess.tasks[i].Done = *fields.Done
		}
		return sess.tasks[i], nil
	}

	return domain.Task{}, store.ErrTaskNotFound
}

// DeleteTask implements store.SessionStore.
func (s *Store) DeleteTask(ctx context.Context, apiKey, taskID string) error {
	sess, err := s.session(apiKey)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	for i := range sess.tasks {
		if sess.tasks[i].ID == taskID {
			sess.tasks = append(sess.tasks[:i], sess.tasks[i+1:]...)
			return nil
		}
	}

	return store.ErrTaskNotFound
}

// session looks up the live session for a key under the registry read lock.
func (s *Store) session(apiKey string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[apiKey]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	return sess, nil
}
