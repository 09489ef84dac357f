package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const shortIDLen = 8

// MinRefLength is the shortest id suffix Resolve will match.
const MinRefLength = 4

// ShortID returns the last eight characters of id.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[len(id)-shortIDLen:]
}

// TaskPatch holds the fields Update may change. Nil fields are left as-is;
// ClearDueDate removes the due date.
type TaskPatch struct {
	Title        *string
	Description  *string
	Difficulty   *string
	DueDate      *time.Time
	ClearDueDate bool
}

// DueDay truncates t to its calendar day, as stored in Task.DueDate.
func DueDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type ToggleResult struct {
	Task          Task
	JustCompleted bool
}

// TaskRepo owns the task list. Every mutation writes the full list back to the store
// before returning.
type TaskRepo struct {
	store *Store
	now   func() time.Time
	tasks []Task
}

func NewTaskRepo(ctx context.Context, store *Store, now func() time.Time) *TaskRepo {
	if now == nil {
		now = time.Now
	}
	r := &TaskRepo{store: store, now: now}
	r.Reload(ctx)
	return r
}

// Reload replaces the in-memory list with the stored one.
func (r *TaskRepo) Reload(ctx context.Context) {
	r.tasks = Load(ctx, r.store, KeyTasks, []Task{})
}

func (r *TaskRepo) persist(ctx context.Context) {
	_ = r.store.Save(ctx, KeyTasks, r.tasks)
}

func (r *TaskRepo) stamp() time.Time {
	return r.now().UTC().Round(0)
}

// All returns a copy of the task list in insertion order.
func (r *TaskRepo) All() []Task {
	out := make([]Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

func (r *TaskRepo) Create(ctx context.Context, title, description, difficulty string, due *time.Time) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	id, err := uuid.NewV7()
	if err != nil {
		return Task{}, fmt.Errorf("task id: %w", err)
	}
	now := r.stamp()
	t := Task{
		ID:          id.String(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Difficulty:  difficulty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if due != nil {
		d := DueDay(*due)
		t.DueDate = &d
	}
	r.tasks = append(r.tasks, t)
	r.persist(ctx)
	return t, nil
}

func (r *TaskRepo) index(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *TaskRepo) Get(id string) (Task, bool) {
	i := r.index(id)
	if i < 0 {
		return Task{}, false
	}
	return r.tasks[i], true
}

// Resolve finds a task by full id or by a unique id suffix of at least MinRefLength characters.
func (r *TaskRepo) Resolve(ref string) (Task, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return Task{}, ErrTaskNotFound
	}
	if t, ok := r.Get(ref); ok {
		return t, nil
	}
	if len(ref) < MinRefLength {
		return Task{}, fmt.Errorf("%w: %q (use at least %d characters)", ErrShortRef, ref, MinRefLength)
	}
	var found []Task
	for _, t := range r.tasks {
		if strings.HasSuffix(t.ID, ref) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return Task{}, ErrTaskNotFound
	case 1:
		return found[0], nil
	default:
		return Task{}, fmt.Errorf("%w: %q matches %d tasks", ErrAmbiguousRef, ref, len(found))
	}
}

func (r *TaskRepo) Update(ctx context.Context, id string, p TaskPatch) (Task, error) {
	i := r.index(id)
	if i < 0 {
		return Task{}, ErrTaskNotFound
	}
	t := r.tasks[i]
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return Task{}, ErrEmptyTitle
		}
		t.Title = title
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.Difficulty != nil {
		t.Difficulty = *p.Difficulty
	}
	switch {
	case p.ClearDueDate:
		t.DueDate = nil
	case p.DueDate != nil:
		d := DueDay(*p.DueDate)
		t.DueDate = &d
	}
	t.UpdatedAt = r.stamp()
	r.tasks[i] = t
	r.persist(ctx)
	return t, nil
}

// Delete removes the task with id. It reports whether anything was removed.
func (r *TaskRepo) Delete(ctx context.Context, id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	r.persist(ctx)
	return true
}

// ToggleComplete flips the completed flag. JustCompleted is set only on active -> completed.
func (r *TaskRepo) ToggleComplete(ctx context.Context, id string) (ToggleResult, error) {
	i := r.index(id)
	if i < 0 {
		return ToggleResult{}, ErrTaskNotFound
	}
	was := r.tasks[i].Completed
	r.tasks[i].Completed = !was
	r.tasks[i].UpdatedAt = r.stamp()
	r.persist(ctx)
	return ToggleResult{Task: r.tasks[i], JustCompleted: !was}, nil
}

// ClearCompleted removes every completed task and returns how many were removed.
func (r *TaskRepo) ClearCompleted(ctx context.Context) int {
	kept := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(r.tasks) - len(kept)
	if removed == 0 {
		return 0
	}
	r.tasks = kept
	r.persist(ctx)
	return removed
}

// ClearAll drops every task.
func (r *TaskRepo) ClearAll(ctx context.Context) {
	r.tasks = []Task{}
	r.persist(ctx)
}
