package render

import (
	"strings"
	"time"

	"gamedo/internal/engine"
	"gamedo/internal/storage"
)

// DescriptionPreviewLength is how many runes of a description show before it is folded.
const DescriptionPreviewLength = 100

// Item is one displayable task row.
type Item struct {
	ID          string
	ShortID     string
	Title       string
	Description string
	// Preview is Description folded to DescriptionPreviewLength runes.
	Preview    string
	Truncated  bool
	Difficulty engine.DifficultyInfo
	Completed  bool
	StampLabel string
	Stamp      time.Time
	// DueDate is a calendar day at midnight UTC, or nil.
	DueDate *time.Time
}

// Page is the visible slice of one partition.
type Page struct {
	Partition  Partition
	Items      []Item
	Page       int
	TotalPages int
	TotalItems int
	HasPrev    bool
	HasNext    bool
}

func (p Page) Empty() bool { return p.TotalItems == 0 }

type View struct {
	Active    Page
	Completed Page
}

// Page returns the page for part.
func (v View) Page(part Partition) Page {
	if part == PartitionCompleted {
		return v.Completed
	}
	return v.Active
}

// Render splits tasks and cuts the current page of each partition, clamping cursors
// that ran past the last page.
func (p *Paginator) Render(tasks []storage.Task) View {
	active, completed := Split(tasks)
	return View{
		Active:    p.page(PartitionActive, active),
		Completed: p.page(PartitionCompleted, completed),
	}
}

func (p *Paginator) page(part Partition, tasks []storage.Task) Page {
	total := TotalPages(len(tasks), p.pageSize)
	cur := p.clamp(part, total)

	start := (cur - 1) * p.pageSize
	end := start + p.pageSize
	if start > len(tasks) {
		start = len(tasks)
	}
	if end > len(tasks) {
		end = len(tasks)
	}

	items := make([]Item, 0, end-start)
	for _, t := range tasks[start:end] {
		items = append(items, NewItem(t))
	}
	return Page{
		Partition:  part,
		Items:      items,
		Page:       cur,
		TotalPages: total,
		TotalItems: len(tasks),
		HasPrev:    cur > 1,
		HasNext:    cur < total,
	}
}

func NewItem(t storage.Task) Item {
	preview, truncated := Preview(t.Description, DescriptionPreviewLength)
	it := Item{
		ID:          t.ID,
		ShortID:     t.ShortID(),
		Title:       t.Title,
		Description: t.Description,
		Preview:     preview,
		Truncated:   truncated,
		Difficulty:  engine.Difficulty(t.Difficulty).Info(),
		Completed:   t.Completed,
		StampLabel:  "Created",
		Stamp:       t.CreatedAt,
		DueDate:     t.DueDate,
	}
	if t.Completed {
		it.StampLabel = "Completed"
		it.Stamp = completedAt(t)
	}
	return it
}

// Preview folds s to n runes, appending "..." when it was cut.
func Preview(s string, n int) (string, bool) {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s, false
	}
	return string(r[:n]) + "...", true
}
