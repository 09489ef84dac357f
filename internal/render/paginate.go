// Package render derives the visible task pages from the task list.
// Nothing here touches storage or the terminal except text.go's writers.
package render

import (
	"sort"
	"time"

	"gamedo/internal/storage"
)

type Partition string

const (
	PartitionActive    Partition = "active"
	PartitionCompleted Partition = "completed"
)

func (p Partition) IsValid() bool {
	return p == PartitionActive || p == PartitionCompleted
}

// DefaultPageSize is the number of tasks shown per page.
const DefaultPageSize = 5

// Paginator owns one page cursor per partition.
type Paginator struct {
	pageSize int
	pages    map[Partition]int
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{
		pageSize: pageSize,
		pages:    map[Partition]int{PartitionActive: 1, PartitionCompleted: 1},
	}
}

// SetPage moves one partition's cursor. Out-of-range pages are clamped on the next Render.
// It reports false for an unknown partition.
func (p *Paginator) SetPage(part Partition, page int) bool {
	if !part.IsValid() {
		return false
	}
	p.pages[part] = page
	return true
}

// TotalPages is ceil(n / size).
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// clamp stores and returns a cursor within [1, total].
func (p *Paginator) clamp(part Partition, total int) int {
	page := p.pages[part]
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	p.pages[part] = page
	return page
}

// Split partitions tasks: active newest-created first, completed most recently
// updated first (falling back to creation time). Equal stamps fall back to the
// time-ordered id, newest first.
func Split(tasks []storage.Task) (active, completed []storage.Task) {
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			active = append(active, t)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return newerFirst(active[i].CreatedAt, active[j].CreatedAt, active[i].ID, active[j].ID)
	})
	sort.SliceStable(completed, func(i, j int) bool {
		return newerFirst(completedAt(completed[i]), completedAt(completed[j]), completed[i].ID, completed[j].ID)
	})
	return active, completed
}

func newerFirst(a, b time.Time, idA, idB string) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return idA > idB
}

func completedAt(t storage.Task) time.Time {
	if t.UpdatedAt.IsZero() {
		return t.CreatedAt
	}
	return t.UpdatedAt
}
