package storage

import "time"

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Completed   bool   `json:"completed"`

	// DueDate is a calendar day, stored as midnight UTC.
	DueDate   *time.Time `json:"dueDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ShortID is the random tail of a task id, used when listing and addressing tasks.
func (t Task) ShortID() string {
	return ShortID(t.ID)
}

// Player is the single persisted player record.
type Player struct {
	TotalXP              int       `json:"totalXP"`
	Level                int       `json:"level"`
	TasksCompleted       int       `json:"tasksCompleted"`
	Streak               int       `json:"streak"`
	UnlockedAchievements []string  `json:"unlockedAchievements"`
	CreatedAt            time.Time `json:"createdAt"`
}

func DefaultPlayer(now time.Time) Player {
	return Player{Level: 1, UnlockedAchievements: []string{}, CreatedAt: now}
}

// HasAchievement reports whether id is already unlocked.
func (p *Player) HasAchievement(id string) bool {
	for _, a := range p.UnlockedAchievements {
		if a == id {
			return true
		}
	}
	return false
}

// DailyStats is the per-day log of task XP and completions.
type DailyStats struct {
	DailyXP        map[string]int `json:"dailyXP"`
	DailyTasks     map[string]int `json:"dailyTasks"`
	LastActiveDate string         `json:"lastActiveDate,omitempty"`
	CurrentStreak  int            `json:"currentStreak"`
}

func DefaultDailyStats() DailyStats {
	return DailyStats{DailyXP: map[string]int{}, DailyTasks: map[string]int{}}
}
