package engine

import (
	"gamedo/internal/storage"
)

// Metric is the single player field an achievement threshold is compared against.
type Metric int

const (
	MetricTasksCompleted Metric = iota
	MetricStreak
	MetricLevel
)

func (m Metric) value(p *storage.Player) int {
	switch m {
	case MetricTasksCompleted:
		return p.TasksCompleted
	case MetricStreak:
		return p.Streak
	case MetricLevel:
		return p.Level
	default:
		return 0
	}
}

// Achievement is a static badge definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	XPReward    int
	Icon        string
	Metric      Metric
	Threshold   int
}

// Met reports whether p satisfies the achievement's condition.
func (a Achievement) Met(p *storage.Player) bool {
	return a.Metric.value(p) >= a.Threshold
}

// DefaultAchievements is the built-in badge set, in evaluation order.
var DefaultAchievements = []Achievement{
	{ID: "first_task", Name: "Getting Started", Description: "Complete your first task", XPReward: 20, Icon: "🚩", Metric: MetricTasksCompleted, Threshold: 1},
	{ID: "task_10", Name: "Task Warrior", Description: "Complete 10 tasks", XPReward: 50, Icon: "🛡️", Metric: MetricTasksCompleted, Threshold: 10},
	{ID: "task_50", Name: "Task Master", Description: "Complete 50 tasks", XPReward: 100, Icon: "👑", Metric: MetricTasksCompleted, Threshold: 50},
	{ID: "streak_7", Name: "Week Streak", Description: "Maintain a 7-day streak", XPReward: 75, Icon: "🔥", Metric: MetricStreak, Threshold: 7},
	{ID: "streak_30", Name: "Month Master", Description: "Maintain a 30-day streak", XPReward: 200, Icon: "🏆", Metric: MetricStreak, Threshold: 30},
	{ID: "level_5", Name: "Rising Star", Description: "Reach level 5", XPReward: 50, Icon: "⭐", Metric: MetricLevel, Threshold: 5},
	{ID: "level_10", Name: "Veteran", Description: "Reach level 10", XPReward: 100, Icon: "🏅", Metric: MetricLevel, Threshold: 10},
}

// AchievementStatus pairs a definition with whether the player has it.
type AchievementStatus struct {
	Achievement
	Unlocked bool
}

// AchievementChecker evaluates definitions against a player.
type AchievementChecker struct {
	defs  []Achievement
	curve Curve
}

func NewAchievementChecker(defs []Achievement, curve Curve) *AchievementChecker {
	return &AchievementChecker{defs: defs, curve: curve}
}

// Evaluate unlocks every achievement whose condition currently holds, in one pass over
// the definitions. Each unlock appends its id and grants its XP reward, re-deriving the
// level so later level thresholds in the same pass see it. Rewards never trigger a
// second pass.
func (c *AchievementChecker) Evaluate(p *storage.Player) []Achievement {
	var unlocked []Achievement
	for _, a := range c.defs {
		if p.HasAchievement(a.ID) || !a.Met(p) {
			continue
		}
		p.UnlockedAchievements = append(p.UnlockedAchievements, a.ID)
		p.TotalXP += a.XPReward
		p.Level = c.curve.LevelForTotalXP(p.TotalXP)
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// Statuses lists every definition with its unlocked flag.
func (c *AchievementChecker) Statuses(p *storage.Player) []AchievementStatus {
	out := make([]AchievementStatus, 0, len(c.defs))
	for _, a := range c.defs {
		out = append(out, AchievementStatus{Achievement: a, Unlocked: p.HasAchievement(a.ID)})
	}
	return out
}

// CountUnlocked returns how many definitions p has unlocked.
func (c *AchievementChecker) CountUnlocked(p *storage.Player) int {
	n := 0
	for _, a := range c.defs {
		if p.HasAchievement(a.ID) {
			n++
		}
	}
	return n
}

// Len is the number of definitions.
func (c *AchievementChecker) Len() int { return len(c.defs) }
