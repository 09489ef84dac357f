package engine

import (
	"context"
	"math"
	"time"

	"gamedo/internal/storage"
)

// DefaultOnTimeBonus multiplies the XP of a task finished by its due date.
const DefaultOnTimeBonus = 1.5

// TaskXP is the reward for completing t at completedAt. A task with a due date that is
// finished on or before that calendar day earns its difficulty reward times bonus, floored.
func TaskXP(t storage.Task, completedAt time.Time, bonus float64) (xp int, onTime bool) {
	base := XPReward(Difficulty(t.Difficulty))
	if t.DueDate == nil || bonus <= 1 {
		return base, false
	}
	if day(completedAt).After(storage.DueDay(*t.DueDate)) {
		return base, false
	}
	return int(math.Floor(float64(base) * bonus)), true
}

type AwardResult struct {
	XPEarned int
	// OnTime is set when XPEarned includes the on-time bonus.
	OnTime    bool
	LeveledUp bool
	OldLevel  int
	NewLevel  int
	TotalXP   int
	Streak    int
	// Unlocked holds achievements unlocked by this award, in definition order.
	Unlocked []Achievement
}

// AwardXP credits one task completion of difficulty d: XP, completion count, daily log,
// streak and achievements, then persists the player record.
func (s *Service) AwardXP(ctx context.Context, d Difficulty) AwardResult {
	return s.award(ctx, d, XPReward(d), false)
}

func (s *Service) award(ctx context.Context, d Difficulty, xp int, onTime bool) AwardResult {
	p := s.players.Player()
	daily := s.players.Daily()
	now := s.now()

	oldLevel := p.Level

	p.TotalXP += xp
	p.TasksCompleted++
	p.Level = s.curve.LevelForTotalXP(p.TotalXP)

	RecordActivity(daily, xp, now)
	p.Streak = daily.CurrentStreak

	unlocked := s.checker.Evaluate(p)

	_ = s.players.Save(ctx)

	res := AwardResult{
		XPEarned:  xp,
		OnTime:    onTime,
		OldLevel:  oldLevel,
		NewLevel:  p.Level,
		LeveledUp: p.Level > oldLevel,
		TotalXP:   p.TotalXP,
		Streak:    p.Streak,
		Unlocked:  unlocked,
	}
	s.log.Info("xp awarded",
		"difficulty", string(d),
		"xp", xp,
		"on_time", onTime,
		"total_xp", res.TotalXP,
		"level", res.NewLevel,
		"streak", res.Streak,
		"unlocked", len(unlocked),
	)
	return res
}

type ToggleResult struct {
	Task          storage.Task
	JustCompleted bool
	// Award is set only when the toggle completed the task.
	Award *AwardResult
}

// ToggleTask flips a task between active and completed. Only the active -> completed
// transition earns XP, including any on-time bonus; un-completing never revokes it.
func (s *Service) ToggleTask(ctx context.Context, id string) (ToggleResult, error) {
	tr, err := s.tasks.ToggleComplete(ctx, id)
	if err != nil {
		return ToggleResult{}, err
	}
	res := ToggleResult{Task: tr.Task, JustCompleted: tr.JustCompleted}
	if tr.JustCompleted {
		xp, onTime := TaskXP(tr.Task, s.now(), s.onTimeBonus)
		award := s.award(ctx, Difficulty(tr.Task.Difficulty), xp, onTime)
		res.Award = &award
	}
	return res, nil
}
