package engine

import (
	"time"

	"gamedo/internal/storage"
)

// DayKeyLayout is the format of daily log keys.
const DayKeyLayout = "2006-01-02"

// DayKey returns the log key for the calendar day of t in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// day truncates t to midnight UTC of its calendar day, so day arithmetic ignores DST.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDay(key string) (time.Time, bool) {
	t, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ComputeStreak counts consecutive active days ending today, or yesterday when today
// has no activity yet. A gap of two or more days since the last active day yields 0.
func ComputeStreak(dailyXP map[string]int, today time.Time) int {
	active := make(map[time.Time]bool, len(dailyXP))
	var last time.Time
	for key, xp := range dailyXP {
		if xp <= 0 {
			continue
		}
		d, ok := parseDay(key)
		if !ok {
			continue
		}
		active[d] = true
		if d.After(last) {
			last = d
		}
	}
	if len(active) == 0 {
		return 0
	}

	t := day(today)
	if t.Sub(last) > 24*time.Hour {
		return 0
	}

	cur := t
	if !active[cur] {
		cur = cur.AddDate(0, 0, -1)
	}
	streak := 0
	for active[cur] {
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
	return streak
}

// RecordActivity logs one task completion worth xp under today's key and recomputes the streak.
func RecordActivity(d *storage.DailyStats, xp int, today time.Time) {
	if d.DailyXP == nil {
		d.DailyXP = map[string]int{}
	}
	if d.DailyTasks == nil {
		d.DailyTasks = map[string]int{}
	}
	key := DayKey(today)
	d.DailyXP[key] += xp
	d.DailyTasks[key]++
	if xp > 0 {
		d.LastActiveDate = key
	}
	d.CurrentStreak = ComputeStreak(d.DailyXP, today)
}

// XPOnDay returns the XP logged for the calendar day of t.
func XPOnDay(d *storage.DailyStats, t time.Time) int {
	return d.DailyXP[DayKey(t)]
}

// TasksOnDay returns how many tasks were completed on the calendar day of t.
func TasksOnDay(d *storage.DailyStats, t time.Time) int {
	return d.DailyTasks[DayKey(t)]
}
