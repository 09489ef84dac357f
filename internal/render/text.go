package render

import (
	"fmt"
	"io"
	"strings"

	"gamedo/internal/ui"
)

const (
	stampLayout = "02 Jan 2006 15:04"
	dueLayout   = "02 Jan 2006"
)

// EmptyMessage is shown for a partition with no tasks.
func EmptyMessage(part Partition) string {
	if part == PartitionCompleted {
		return "No completed tasks yet!"
	}
	return "No active tasks. Use `gd add` to get started!"
}

// PartitionTitle is the heading of a partition.
func PartitionTitle(part Partition) string {
	if part == PartitionCompleted {
		return ui.IconDone + " Completed"
	}
	return ui.IconTask + " Active"
}

// Badge renders the difficulty badge of an item.
func Badge(it Item) string {
	d := it.Difficulty
	return ui.Tone(d.Style).Render(fmt.Sprintf("%s %s", d.Icon, d.Label))
}

// FormatItem renders one task row; with expand the full description is shown.
func FormatItem(it Item, expand bool) string {
	box := "[ ]"
	title := it.Title
	if it.Completed {
		box = "[x]"
		title = ui.Struck.Render(title)
	} else {
		title = ui.Bold.Render(title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s %s", ui.Muted.Render(it.ShortID), box, title, Badge(it))
	if it.Description != "" {
		desc := it.Preview
		if expand {
			desc = it.Description
		}
		for _, line := range strings.Split(desc, "\n") {
			b.WriteString("\n      " + ui.Muted.Render(line))
		}
		if it.Truncated && !expand {
			b.WriteString("\n      " + ui.Key.Render("(show more)"))
		}
	}
	stamp := fmt.Sprintf("%s %s: %s", ui.IconClock, it.StampLabel, it.Stamp.Local().Format(stampLayout))
	if it.DueDate != nil {
		stamp += "  Due: " + it.DueDate.UTC().Format(dueLayout)
	}
	fmt.Fprintf(&b, "\n      %s", ui.Muted.Render(stamp))
	return b.String()
}

// PageIndicator renders "‹ 2 / 3 ›" style controls, or "" for single-page lists.
func PageIndicator(pg Page) string {
	if pg.TotalPages <= 1 {
		return ""
	}
	prev, next := "‹", "›"
	if !pg.HasPrev {
		prev = ui.Muted.Render(prev)
	}
	if !pg.HasNext {
		next = ui.Muted.Render(next)
	}
	return fmt.Sprintf("%s %s %s", prev, ui.H2.Render(fmt.Sprintf("%d / %d", pg.Page, pg.TotalPages)), next)
}

// WritePage writes a partition heading, its rows and page controls.
func WritePage(w io.Writer, pg Page, expand bool) error {
	heading := fmt.Sprintf("%s %s", ui.H2.Render(PartitionTitle(pg.Partition)), ui.Muted.Render(fmt.Sprintf("(%d)", pg.TotalItems)))
	if _, err := fmt.Fprintln(w, heading); err != nil {
		return err
	}
	if pg.Empty() {
		_, err := fmt.Fprintln(w, "  "+ui.Muted.Render(EmptyMessage(pg.Partition)))
		return err
	}
	for _, it := range pg.Items {
		if _, err := fmt.Fprintln(w, "  "+FormatItem(it, expand)); err != nil {
			return err
		}
	}
	if ind := PageIndicator(pg); ind != "" {
		if _, err := fmt.Fprintln(w, "  "+ind); err != nil {
			return err
		}
	}
	return nil
}

// WriteView writes both partitions, active first.
func WriteView(w io.Writer, v View, expand bool) error {
	if err := WritePage(w, v.Active, expand); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return WritePage(w, v.Completed, expand)
}
