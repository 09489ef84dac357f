package engine

import (
	"context"
	"time"

	"gamedo/internal/storage"
)

type CreateTaskInput struct {
	Title       string
	Description string
	// Difficulty may be empty, meaning DefaultDifficulty.
	Difficulty Difficulty
	DueDate    *time.Time
}

type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Difficulty   *Difficulty
	DueDate      *time.Time
	ClearDueDate bool
}

func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (storage.Task, error) {
	d := in.Difficulty
	if d == "" {
		d = DefaultDifficulty
	}
	if !d.IsValid() {
		return storage.Task{}, ErrInvalidDifficulty
	}
	t, err := s.tasks.Create(ctx, in.Title, in.Description, string(d), in.DueDate)
	if err != nil {
		return storage.Task{}, err
	}
	s.log.Debug("task created", "id", t.ID, "difficulty", t.Difficulty)
	return t, nil
}

func (s *Service) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (storage.Task, error) {
	patch := storage.TaskPatch{
		Title:        in.Title,
		Description:  in.Description,
		DueDate:      in.DueDate,
		ClearDueDate: in.ClearDueDate,
	}
	if in.Difficulty != nil {
		if !in.Difficulty.IsValid() {
			return storage.Task{}, ErrInvalidDifficulty
		}
		d := string(*in.Difficulty)
		patch.Difficulty = &d
	}
	return s.tasks.Update(ctx, id, patch)
}

// DeleteTask removes a task; deleting an unknown id is a no-op.
func (s *Service) DeleteTask(ctx context.Context, id string) bool {
	ok := s.tasks.Delete(ctx, id)
	if ok {
		s.log.Debug("task deleted", "id", id)
	}
	return ok
}

func (s *Service) ClearCompleted(ctx context.Context) int {
	n := s.tasks.ClearCompleted(ctx)
	if n > 0 {
		s.log.Debug("completed tasks cleared", "count", n)
	}
	return n
}

// SampleTasks are created by SeedSamples.
var SampleTasks = []CreateTaskInput{
	{Title: "Task 1", Difficulty: DifficultyEasy},
	{Title: "Task 2", Difficulty: DifficultyEasy},
	{Title: "Task 3", Difficulty: DifficultyEasy},
}

// SeedSamples creates SampleTasks, for trying the app out.
func (s *Service) SeedSamples(ctx context.Context) ([]storage.Task, error) {
	out := make([]storage.Task, 0, len(SampleTasks))
	for _, in := range SampleTasks {
		t, err := s.CreateTask(ctx, in)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, nil
}
