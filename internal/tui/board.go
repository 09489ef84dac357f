package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"gamedo/internal/app"
	"gamedo/internal/engine"
	"gamedo/internal/render"
)

// RunBoard opens the interactive board. The board asks its own y/n questions, so the
// controller it builds confirms only what the user already approved on screen.
func RunBoard(ctx context.Context, svc *engine.Service, pageSize int, out io.Writer) error {
	log := &noticeLog{}
	gate := &approvalGate{}
	ctrl := app.NewController(svc, render.NewPaginator(pageSize), log, gate)
	m := newBoardModel(ctx, ctrl, log, gate)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// noticeLog keeps the latest notifications for the footer.
type noticeLog struct {
	lines []string
}

func (l *noticeLog) Notify(kind app.NoticeKind, msg string) {
	l.lines = append(l.lines, styleNotice(kind, msg))
	if len(l.lines) > 3 {
		l.lines = l.lines[len(l.lines)-3:]
	}
}

// approvalGate answers Confirm with whatever the board approved last, once.
type approvalGate struct {
	approved bool
}

func (g *approvalGate) Confirm(string) bool {
	ok := g.approved
	g.approved = false
	return ok
}
