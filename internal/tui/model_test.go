package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gamedo/internal/app"
	"gamedo/internal/engine"
	"gamedo/internal/logging"
	"gamedo/internal/render"
	"gamedo/internal/storage"
)

func newTestBoard(t *testing.T, titles ...string) (boardModel, *engine.Service) {
	t.Helper()
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemoryKV(), logging.Discard())
	svc := engine.NewService(ctx, store, engine.Options{Logger: logging.Discard()})
	for _, title := range titles {
		if _, err := svc.CreateTask(ctx, engine.CreateTaskInput{Title: title}); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}
	log := &noticeLog{}
	gate := &approvalGate{}
	ctrl := app.NewController(svc, render.NewPaginator(render.DefaultPageSize), log, gate)
	return newBoardModel(ctx, ctrl, log, gate), svc
}

func press(t *testing.T, m boardModel, keys ...string) boardModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(boardModel)
	}
	return m
}

func completedCount(svc *engine.Service) int {
	n := 0
	for _, task := range svc.Tasks() {
		if task.Completed {
			n++
		}
	}
	return n
}

func TestBoardToggleAwardsXP(t *testing.T) {
	m, svc := newTestBoard(t, "Alpha")
	m = press(t, m, " ")

	if completedCount(svc) != 1 {
		t.Fatalf("task not completed")
	}
	if svc.Player().TotalXP == 0 {
		t.Fatalf("no XP awarded")
	}
	if len(m.log.lines) == 0 {
		t.Fatalf("no notice recorded")
	}
}

func TestBoardDeleteAsksFirst(t *testing.T) {
	m, svc := newTestBoard(t, "Alpha")

	m = press(t, m, "d")
	if m.pending == nil {
		t.Fatalf("delete did not ask for confirmation")
	}
	m = press(t, m, "n")
	if m.pending != nil || len(svc.Tasks()) != 1 {
		t.Fatalf("declined delete changed state: pending=%v tasks=%d", m.pending, len(svc.Tasks()))
	}

	m = press(t, m, "d", "y")
	if len(svc.Tasks()) != 0 {
		t.Fatalf("confirmed delete left %d tasks", len(svc.Tasks()))
	}
	if m.gate.approved {
		t.Fatalf("approval leaked past the confirmed action")
	}
}

func TestBoardClearCompletedFromCompletedPanel(t *testing.T) {
	m, svc := newTestBoard(t, "Alpha", "Beta")
	m = press(t, m, " ", " ")
	if completedCount(svc) != 2 {
		t.Fatalf("completed=%d, want 2", completedCount(svc))
	}

	m = press(t, m, "tab")
	if m.focus != render.PartitionCompleted {
		t.Fatalf("focus=%s", m.focus)
	}
	m = press(t, m, "c", "y")
	if len(svc.Tasks()) != 0 {
		t.Fatalf("tasks left=%d", len(svc.Tasks()))
	}
}

func TestBoardView(t *testing.T) {
	m, _ := newTestBoard(t)
	out := m.View()
	for _, want := range []string{"Level", "Tasks today", render.EmptyMessage(render.PartitionActive), render.EmptyMessage(render.PartitionCompleted)} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}
