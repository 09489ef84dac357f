// Package app binds user actions to the engine and renderer and reports outcomes
// through a Notifier. Destructive actions ask a Confirmer first.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamedo/internal/engine"
	"gamedo/internal/render"
	"gamedo/internal/storage"
)

// NoticeKind is the tone of a notification.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeWarning NoticeKind = "warning"
	NoticeLevelUp NoticeKind = "levelup"
	NoticeBadge   NoticeKind = "achievement"
)

// Notifier presents fire-and-forget messages.
type Notifier interface {
	Notify(kind NoticeKind, msg string)
}

// Confirmer asks a yes/no question and blocks for the answer.
type Confirmer interface {
	Confirm(msg string) bool
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(kind NoticeKind, msg string)

func (f NotifierFunc) Notify(kind NoticeKind, msg string) { f(kind, msg) }

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(msg string) bool

func (f ConfirmFunc) Confirm(msg string) bool { return f(msg) }

// AlwaysConfirm answers yes without asking.
var AlwaysConfirm = ConfirmFunc(func(string) bool { return true })

// ErrCancelled is returned when the user declines a confirmation.
var ErrCancelled = errors.New("cancelled")

type TaskInput struct {
	Title       string
	Description string
	Difficulty  engine.Difficulty
	// DueDate is optional; on update a nil DueDate clears it.
	DueDate *time.Time
}

type Controller struct {
	svc     *engine.Service
	pager   *render.Paginator
	notify  Notifier
	confirm Confirmer
}

func NewController(svc *engine.Service, pager *render.Paginator, notify Notifier, confirm Confirmer) *Controller {
	if notify == nil {
		notify = NotifierFunc(func(NoticeKind, string) {})
	}
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	return &Controller{svc: svc, pager: pager, notify: notify, confirm: confirm}
}

func (c *Controller) Service() *engine.Service { return c.svc }

// Resolve looks a task up by full id or short id.
func (c *Controller) Resolve(ref string) (storage.Task, error) {
	return c.svc.TaskRepo().Resolve(ref)
}

// SaveTask creates a task, or updates editingID when it is non-empty.
func (c *Controller) SaveTask(ctx context.Context, editingID string, in TaskInput) (storage.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		c.notify.Notify(NoticeWarning, "Title is required!")
		return storage.Task{}, storage.ErrEmptyTitle
	}

	if editingID == "" {
		t, err := c.svc.CreateTask(ctx, engine.CreateTaskInput{
			Title:       title,
			Description: in.Description,
			Difficulty:  in.Difficulty,
			DueDate:     in.DueDate,
		})
		if err != nil {
			return storage.Task{}, err
		}
		c.notify.Notify(NoticeSuccess, "Task created!")
		return t, nil
	}

	desc := in.Description
	upd := engine.UpdateTaskInput{Title: &title, Description: &desc, DueDate: in.DueDate}
	if in.DueDate == nil {
		upd.ClearDueDate = true
	}
	if in.Difficulty != "" {
		d := in.Difficulty
		upd.Difficulty = &d
	}
	t, err := c.svc.UpdateTask(ctx, editingID, upd)
	if err != nil {
		return storage.Task{}, err
	}
	c.notify.Notify(NoticeSuccess, "Task updated!")
	return t, nil
}

// Edit applies a partial update; nil fields are kept.
func (c *Controller) Edit(ctx context.Context, id string, in engine.UpdateTaskInput) (storage.Task, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		c.notify.Notify(NoticeWarning, "Title is required!")
		return storage.Task{}, storage.ErrEmptyTitle
	}
	t, err := c.svc.UpdateTask(ctx, id, in)
	if err != nil {
		return storage.Task{}, err
	}
	c.notify.Notify(NoticeSuccess, "Task updated!")
	return t, nil
}

// Toggle flips a task and announces any XP, level-up and achievements it earned.
func (c *Controller) Toggle(ctx context.Context, id string) (engine.ToggleResult, error) {
	res, err := c.svc.ToggleTask(ctx, id)
	if err != nil {
		return res, err
	}
	if res.Award == nil {
		c.notify.Notify(NoticeInfo, fmt.Sprintf("%q moved back to active", res.Task.Title))
		return res, nil
	}
	a := res.Award
	if a.LeveledUp {
		c.notify.Notify(NoticeLevelUp, fmt.Sprintf("LEVEL UP! You've reached Level %d! 🎉", a.NewLevel))
	} else if a.OnTime {
		c.notify.Notify(NoticeSuccess, fmt.Sprintf("+%d XP earned! 🌟 (on time bonus)", a.XPEarned))
	} else {
		c.notify.Notify(NoticeSuccess, fmt.Sprintf("+%d XP earned! 🌟", a.XPEarned))
	}
	for _, ach := range a.Unlocked {
		c.notify.Notify(NoticeBadge, fmt.Sprintf("%s Achievement unlocked: %s (+%d XP)", ach.Icon, ach.Name, ach.XPReward))
	}
	return res, nil
}

// Delete removes a task after confirmation. Unknown ids report ErrTaskNotFound.
func (c *Controller) Delete(ctx context.Context, id string) error {
	t, ok := c.svc.TaskRepo().Get(id)
	if !ok {
		return storage.ErrTaskNotFound
	}
	if !c.confirm.Confirm(fmt.Sprintf("Delete %q?", t.Title)) {
		return ErrCancelled
	}
	c.svc.DeleteTask(ctx, id)
	c.notify.Notify(NoticeInfo, "Task deleted")
	return nil
}

// ClearCompleted removes completed tasks after confirmation and returns how many went.
func (c *Controller) ClearCompleted(ctx context.Context) (int, error) {
	pending := 0
	for _, t := range c.svc.Tasks() {
		if t.Completed {
			pending++
		}
	}
	if pending == 0 {
		c.notify.Notify(NoticeInfo, "No completed tasks")
		return 0, nil
	}
	if !c.confirm.Confirm(fmt.Sprintf("Clear %d completed task(s)?", pending)) {
		return 0, ErrCancelled
	}
	n := c.svc.ClearCompleted(ctx)
	c.notify.Notify(NoticeSuccess, fmt.Sprintf("%d tasks cleared", n))
	return n, nil
}

// SetPage moves one partition's page cursor.
func (c *Controller) SetPage(part render.Partition, page int) bool {
	return c.pager.SetPage(part, page)
}

// View renders the current pages.
func (c *Controller) View() render.View {
	return c.pager.Render(c.svc.Tasks())
}

// Status is the snapshot behind the stats panel.
type Status struct {
	Player       storage.Player
	Progress     engine.Progress
	XPToday      int
	TasksToday   int
	Streak       int
	DailyGoal    int
	Achievements int
	Total        int
}

func (c *Controller) Status() Status {
	prog := c.svc.LevelProgress()
	unlocked, total := c.svc.AchievementCounts()
	return Status{
		Player:       c.svc.Player(),
		Progress:     prog,
		XPToday:      c.svc.XPToday(),
		TasksToday:   c.svc.TasksToday(),
		Streak:       c.svc.CurrentStreak(),
		DailyGoal:    engine.DailyGoal(prog),
		Achievements: unlocked,
		Total:        total,
	}
}

// SeedSamples adds the sample tasks.
func (c *Controller) SeedSamples(ctx context.Context) ([]storage.Task, error) {
	tasks, err := c.svc.SeedSamples(ctx)
	if err != nil {
		return tasks, err
	}
	c.notify.Notify(NoticeSuccess, fmt.Sprintf("%d sample tasks added", len(tasks)))
	return tasks, nil
}

// Reset wipes all progress after confirmation.
func (c *Controller) Reset(ctx context.Context) error {
	if !c.confirm.Confirm("Reset all tasks, XP, streaks and achievements?") {
		return ErrCancelled
	}
	if err := c.svc.Reset(ctx); err != nil {
		return err
	}
	c.pager.SetPage(render.PartitionActive, 1)
	c.pager.SetPage(render.PartitionCompleted, 1)
	c.notify.Notify(NoticeWarning, "Progress reset")
	return nil
}
