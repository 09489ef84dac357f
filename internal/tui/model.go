package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gamedo/internal/app"
	"gamedo/internal/render"
	"gamedo/internal/ui"
)

type pendingAction struct {
	prompt string
	run    func() error
}

type boardModel struct {
	ctx  context.Context
	ctrl *app.Controller
	log  *noticeLog
	gate *approvalGate

	width  int
	height int

	focus    render.Partition
	selected map[render.Partition]int
	expanded map[string]bool

	pending *pendingAction
	err     error
}

func newBoardModel(ctx context.Context, ctrl *app.Controller, log *noticeLog, gate *approvalGate) boardModel {
	return boardModel{
		ctx:      ctx,
		ctrl:     ctrl,
		log:      log,
		gate:     gate,
		focus:    render.PartitionActive,
		selected: map[render.Partition]int{},
		expanded: map[string]bool{},
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) current() (render.Item, bool) {
	pg := m.ctrl.View().Page(m.focus)
	i := m.selected[m.focus]
	if i < 0 || i >= len(pg.Items) {
		return render.Item{}, false
	}
	return pg.Items[i], true
}

func (m boardModel) clampSelection() {
	v := m.ctrl.View()
	for _, part := range []render.Partition{render.PartitionActive, render.PartitionCompleted} {
		n := len(v.Page(part).Items)
		if m.selected[part] >= n {
			m.selected[part] = n - 1
		}
		if m.selected[part] < 0 {
			m.selected[part] = 0
		}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.pending != nil {
			return m.answer(msg.String())
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m boardModel) answer(key string) (tea.Model, tea.Cmd) {
	p := m.pending
	m.pending = nil
	switch key {
	case "y", "Y", "enter":
		m.gate.approved = true
		m.err = p.run()
		m.clampSelection()
	default:
		m.log.Notify(app.NoticeInfo, "Cancelled")
	}
	return m, nil
}

func (m boardModel) handleKey(key string) (tea.Model, tea.Cmd) {
	m.err = nil
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		if m.focus == render.PartitionActive {
			m.focus = render.PartitionCompleted
		} else {
			m.focus = render.PartitionActive
		}
	case "up", "k":
		if m.selected[m.focus] > 0 {
			m.selected[m.focus]--
		}
	case "down", "j":
		n := len(m.ctrl.View().Page(m.focus).Items)
		if m.selected[m.focus] < n-1 {
			m.selected[m.focus]++
		}
	case "left", "h":
		pg := m.ctrl.View().Page(m.focus)
		if pg.HasPrev {
			m.ctrl.SetPage(m.focus, pg.Page-1)
			m.selected[m.focus] = 0
		}
	case "right", "l":
		pg := m.ctrl.View().Page(m.focus)
		if pg.HasNext {
			m.ctrl.SetPage(m.focus, pg.Page+1)
			m.selected[m.focus] = 0
		}
	case "e":
		if it, ok := m.current(); ok && it.Truncated {
			m.expanded[it.ID] = !m.expanded[it.ID]
		}
	case " ", "x":
		if it, ok := m.current(); ok {
			_, m.err = m.ctrl.Toggle(m.ctx, it.ID)
			m.clampSelection()
		}
	case "d":
		if it, ok := m.current(); ok {
			id := it.ID
			m.pending = &pendingAction{
				prompt: fmt.Sprintf("Delete %q? (y/n)", it.Title),
				run:    func() error { return m.ctrl.Delete(m.ctx, id) },
			}
		}
	case "c":
		if m.ctrl.View().Completed.TotalItems == 0 {
			_, m.err = m.ctrl.ClearCompleted(m.ctx)
			break
		}
		m.pending = &pendingAction{
			prompt: "Clear all completed tasks? (y/n)",
			run: func() error {
				_, err := m.ctrl.ClearCompleted(m.ctx)
				return err
			},
		}
	case "r":
		m.ctrl.Service().Reload(m.ctx)
		m.clampSelection()
		m.log.Notify(app.NoticeInfo, "Reloaded.")
	}
	return m, nil
}

func (m boardModel) View() string {
	st := m.ctrl.Status()
	v := m.ctrl.View()

	header := fmt.Sprintf("%s  %s  %s %s  %s  %s  %s",
		ui.Heading(ui.IconSparkle, "gamedo"),
		ui.LabelValue("Level", st.Player.Level),
		ui.ProgressBar(st.Progress.Percentage, 24),
		ui.Muted.Render(fmt.Sprintf("%d / %d XP", st.Progress.Current, st.Progress.Required)),
		ui.LabelValue(ui.IconFire+" Streak", st.Streak),
		ui.LabelValue("Today", fmt.Sprintf("%d XP", st.XPToday)),
		ui.LabelValue("Tasks today", st.TasksToday),
	)

	width := 0
	if m.width > 0 {
		width = m.width/2 - 4
	}
	left := m.renderPanel(v.Active, width)
	right := m.renderPanel(v.Completed, width)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	var footer []string
	if m.pending != nil {
		footer = append(footer, ui.Warn.Render(m.pending.prompt))
	}
	if m.err != nil && m.err != app.ErrCancelled {
		footer = append(footer, ui.Bad.Render(ui.IconError+" "+m.err.Error()))
	}
	footer = append(footer, m.log.lines...)
	footer = append(footer, ui.Muted.Render("tab: switch • j/k: move • space: toggle • d: delete • c: clear completed • ←/→: page • e: expand • r: reload • q: quit"))

	return header + "\n\n" + body + "\n" + strings.Join(footer, "\n") + "\n"
}

func (m boardModel) renderPanel(pg render.Page, width int) string {
	focused := pg.Partition == m.focus
	var lines []string
	lines = append(lines, ui.PanelTitle.Render(fmt.Sprintf("%s (%d)", render.PartitionTitle(pg.Partition), pg.TotalItems)))
	if pg.Empty() {
		lines = append(lines, ui.Muted.Render(render.EmptyMessage(pg.Partition)))
	}
	for i, it := range pg.Items {
		row := render.FormatItem(it, m.expanded[it.ID])
		if focused && i == m.selected[pg.Partition] {
			first, rest, _ := strings.Cut(row, "\n")
			row = ui.SelectedRow.Render("> "+first) + "\n" + rest
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	if ind := render.PageIndicator(pg); ind != "" {
		lines = append(lines, ind)
	}

	style := ui.Panel
	if focused {
		style = ui.FocusPanel
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func styleNotice(kind app.NoticeKind, msg string) string {
	switch kind {
	case app.NoticeLevelUp:
		return ui.BadgeLevelUp + " " + ui.Gold.Render(msg)
	case app.NoticeBadge:
		return ui.Gold.Render(msg)
	case app.NoticeSuccess:
		return ui.Good.Render(msg)
	case app.NoticeWarning:
		return ui.Warn.Render(msg)
	default:
		return ui.Muted.Render(msg)
	}
}
