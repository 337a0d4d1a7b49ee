package domain

import (
	"crypto/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// Bounds applied to a task name after normalization.
const (
	NameMinLength = 1
	NameMaxLength = 30
)

// Validation messages for task fields. Exposed to clients verbatim in the
// validationErrors response map.
const (
	MsgNameRequired = "name is required"
	MsgNameType     = "name must be a string"
	MsgNameLength   = "name must be between 1 and 30 characters"
	MsgDoneType     = "done must be a boolean"
)

// Task represents a single to-do item owned by one session.
// ID and CreatedAt are assigned at creation and never change.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTask creates a Task with a fresh ID and the current timestamp.
// The name is expected to be normalized already.
func NewTask(name string, done bool) Task {
	return Task{
		ID:        NewTaskID(),
		Name:      name,
		Done:      done,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTaskID generates a ULID task identifier. ULIDs sort by creation time,
// matching the insertion order the task list maintains.
func NewTaskID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NormalizeName trims surrounding whitespace and lower-cases a task name.
// Name uniqueness within a session is checked against the normalized form.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Presence selects how ValidateTaskFields treats absent fields.
type Presence int

const (
	// PresenceRequired is the creation mode: name must be present and an
	// omitted done defaults to false.
	PresenceRequired Presence = iota

	// PresenceOptional is the update mode: only the fields actually provided
	// are validated; absent fields stay nil and must not be merged.
	PresenceOptional
)

// TaskFields carries the normalized candidate fields of a create or update
// request. A nil pointer means the field was absent from the request.
type TaskFields struct {
	Name *string
	Done *bool
}

// ValidateTaskFields checks the candidate fields of a decoded request body
// against the task field rules and returns the normalized fields. All
// violations are collected; the returned FieldErrors is nil only when every
// provided field is valid.
//
// The fields map holds the decoded JSON body, so a present name is expected
// to be a string and a present done a bool; any other JSON type is a
// violation reported per field.
func ValidateTaskFields(fields map[string]any, presence Presence) (TaskFields, FieldErrors) {
	var out TaskFields
	errs := FieldErrors{}

	if raw, ok := fields["name"]; !ok || raw == nil {
		if presence == PresenceRequired {
			errs["name"] = MsgNameRequired
		}
	} else if name, isString := raw.(string); !isString {
		errs["name"] = MsgNameType
	} else {
		normalized := NormalizeName(name)
		if n := utf8.RuneCountInString(normalized); n < NameMinLength || n > NameMaxLength {
			errs["name"] = MsgNameLength
		} else {
			out.Name = &normalized
		}
	}

	if raw, ok := fields["done"]; ok && raw != nil {
		if done, isBool := raw.(bool); !isBool {
			errs["done"] = MsgDoneType
		} else {
			out.Done = &done
		}
	} else if presence == PresenceRequired {
		done := false
		out.Done = &done
	}

	if len(errs) > 0 {
		return TaskFields{}, errs
	}
	return out, nil
}

// DefaultTasks returns the seed tasks every new session starts with: two
// already done, one open, with synthetic timestamps in the past so the list
// reads like prior activity.
func DefaultTasks() []Task {
	now := time.Now().UTC()
	seeds := []struct {
		name string
		done bool
		age  time.Duration
	}{
		{name: "request an api key", done: true, age: 72 * time.Hour},
		{name: "read the endpoint docs", done: true, age: 48 * time.Hour},
		{name: "create your first task", done: false, age: 24 * time.Hour},
	}

	tasks := make([]Task, 0, len(seeds))
	for _, seed := range seeds {
		tasks = append(tasks, Task{
			ID:        NewTaskID(),
			Name:      seed.name,
			Done:      seed.done,
			CreatedAt: now.Add(-seed.age),
		})
	}
	return tasks
}
