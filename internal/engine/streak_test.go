package engine

import (
	"testing"
	"time"

	"gamedo/internal/storage"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestComputeStreak(t *testing.T) {
	log := map[string]int{"2025-06-01": 10, "2025-06-02": 5}

	cases := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"active today", date(2025, 6, 2), 2},
		{"grace day", date(2025, 6, 3), 2},
		{"two-day gap", date(2025, 6, 4), 0},
		{"mid-run", date(2025, 6, 1), 1},
	}
	for _, tc := range cases {
		if got := ComputeStreak(log, tc.today); got != tc.want {
			t.Fatalf("%s: streak=%d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestComputeStreakIgnoresNoise(t *testing.T) {
	log := map[string]int{
		"2025-06-02": 5,
		"2025-06-01": 0,
		"yesterday":  99,
		"2025-05-31": 10,
	}
	if got := ComputeStreak(log, date(2025, 6, 2)); got != 1 {
		t.Fatalf("streak=%d, want 1 (zero-XP day breaks the run)", got)
	}
	if got := ComputeStreak(nil, date(2025, 6, 2)); got != 0 {
		t.Fatalf("empty log streak=%d", got)
	}
}

func TestComputeStreakAcrossMonthBoundary(t *testing.T) {
	log := map[string]int{}
	for d := date(2025, 2, 25); !d.After(date(2025, 3, 3)); d = d.AddDate(0, 0, 1) {
		log[DayKey(d)] = 10
	}
	if got := ComputeStreak(log, date(2025, 3, 3)); got != 7 {
		t.Fatalf("streak=%d, want 7", got)
	}
}

func TestRecordActivity(t *testing.T) {
	d := storage.DefaultDailyStats()
	RecordActivity(&d, 10, date(2025, 6, 1))
	RecordActivity(&d, 25, date(2025, 6, 2))
	RecordActivity(&d, 5, date(2025, 6, 2))

	if got := XPOnDay(&d, date(2025, 6, 2)); got != 30 {
		t.Fatalf("XPOnDay=%d, want 30", got)
	}
	if d.LastActiveDate != "2025-06-02" || d.CurrentStreak != 2 {
		t.Fatalf("daily=%+v", d)
	}
	if got := TasksOnDay(&d, date(2025, 6, 2)); got != 2 {
		t.Fatalf("TasksOnDay(06-02)=%d, want 2", got)
	}
	if got := TasksOnDay(&d, date(2025, 6, 3)); got != 0 {
		t.Fatalf("TasksOnDay(06-03)=%d, want 0", got)
	}

	var empty storage.DailyStats
	RecordActivity(&empty, 0, date(2025, 6, 2))
	if empty.LastActiveDate != "" || empty.CurrentStreak != 0 {
		t.Fatalf("zero XP counted as activity: %+v", empty)
	}
}
