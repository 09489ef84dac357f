package engine

import (
	"testing"

	"gamedo/internal/storage"
)

func ids(as []Achievement) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}

func TestEvaluateSinglePass(t *testing.T) {
	curve := Quadratic{K: 25}
	c := NewAchievementChecker(DefaultAchievements, curve)

	// 340 XP is level 4. first_task and task_10 add 70, reaching level 5 mid-pass.
	p := &storage.Player{TotalXP: 340, Level: 4, TasksCompleted: 10, UnlockedAchievements: []string{}}
	got := ids(c.Evaluate(p))
	want := []string{"first_task", "task_10", "level_5"}
	if len(got) != len(want) {
		t.Fatalf("unlocked=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unlocked=%v, want %v", got, want)
		}
	}
	if p.TotalXP != 340+20+50+50 {
		t.Fatalf("TotalXP=%d", p.TotalXP)
	}
	if p.Level != curve.LevelForTotalXP(p.TotalXP) {
		t.Fatalf("level %d not re-derived", p.Level)
	}

	if again := c.Evaluate(p); len(again) != 0 {
		t.Fatalf("second evaluation unlocked %v", ids(again))
	}
}

func TestStatuses(t *testing.T) {
	c := NewAchievementChecker(DefaultAchievements, Quadratic{})
	p := &storage.Player{Streak: 7, UnlockedAchievements: []string{"streak_7"}}

	sts := c.Statuses(p)
	if len(sts) != len(DefaultAchievements) {
		t.Fatalf("statuses=%d", len(sts))
	}
	for _, st := range sts {
		if st.Unlocked != (st.ID == "streak_7") {
			t.Fatalf("%s unlocked=%v", st.ID, st.Unlocked)
		}
	}
	if n := c.CountUnlocked(p); n != 1 {
		t.Fatalf("CountUnlocked=%d", n)
	}
	if c.Len() != len(DefaultAchievements) {
		t.Fatalf("Len=%d", c.Len())
	}
}

func TestDefaultAchievementsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range DefaultAchievements {
		if seen[a.ID] {
			t.Fatalf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.XPReward <= 0 || a.Threshold <= 0 {
			t.Fatalf("%s has reward %d threshold %d", a.ID, a.XPReward, a.Threshold)
		}
	}
}
