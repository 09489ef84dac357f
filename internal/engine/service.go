package engine

import (
	"context"
	"log/slog"
	"time"

	"gamedo/internal/storage"
)

type Options struct {
	// Curve defaults to Quadratic{K: DefaultQuadraticK}.
	Curve Curve
	// Achievements defaults to DefaultAchievements.
	Achievements []Achievement
	// OnTimeBonus multiplies XP for tasks finished by their due date. Zero means
	// DefaultOnTimeBonus; 1 turns the bonus off.
	OnTimeBonus float64
	Now         func() time.Time
	Logger      *slog.Logger
}

// Service ties the task list to the progression engines. It is not safe for concurrent use.
type Service struct {
	tasks   *storage.TaskRepo
	players *storage.PlayerRepo
	curve   Curve
	checker *AchievementChecker
	now     func() time.Time
	log     *slog.Logger

	onTimeBonus float64
}

func NewService(ctx context.Context, store *storage.Store, opts Options) *Service {
	if opts.Curve == nil {
		opts.Curve = Quadratic{K: DefaultQuadraticK}
	}
	if opts.Achievements == nil {
		opts.Achievements = DefaultAchievements
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.OnTimeBonus == 0 {
		opts.OnTimeBonus = DefaultOnTimeBonus
	}

	s := &Service{
		curve:   opts.Curve,
		checker: NewAchievementChecker(opts.Achievements, opts.Curve),
		now:     opts.Now,
		log:     opts.Logger,

		onTimeBonus: opts.OnTimeBonus,
	}
	s.tasks = storage.NewTaskRepo(ctx, store, opts.Now)
	s.players = storage.NewPlayerRepo(ctx, store, s.now())
	s.sync(ctx)
	return s
}

func (s *Service) TaskRepo() *storage.TaskRepo { return s.tasks }

// sync re-derives level and streak from the stored records and persists any drift.
func (s *Service) sync(ctx context.Context) {
	p := s.players.Player()
	d := s.players.Daily()

	level := s.curve.LevelForTotalXP(p.TotalXP)
	streak := ComputeStreak(d.DailyXP, s.now())
	if p.Level == level && p.Streak == streak && d.CurrentStreak == streak {
		return
	}
	s.log.Debug("player record re-derived", "level", level, "stored_level", p.Level, "streak", streak)
	p.Level = level
	p.Streak = streak
	d.CurrentStreak = streak
	_ = s.players.Save(ctx)
}

// Reload re-reads every record from the store.
func (s *Service) Reload(ctx context.Context) {
	s.tasks.Reload(ctx)
	s.players.Reload(ctx, s.now())
	s.sync(ctx)
}

// Tasks returns a copy of every task.
func (s *Service) Tasks() []storage.Task {
	return s.tasks.All()
}

// Player returns a snapshot of the player record.
func (s *Service) Player() storage.Player {
	p := *s.players.Player()
	p.UnlockedAchievements = append([]string(nil), p.UnlockedAchievements...)
	return p
}

func (s *Service) LevelProgress() Progress {
	p := s.players.Player()
	return LevelProgress(s.curve, p.TotalXP, p.Level)
}

// XPToday returns the XP earned from tasks completed today.
func (s *Service) XPToday() int {
	return XPOnDay(s.players.Daily(), s.now())
}

// TasksToday returns how many tasks were completed today.
func (s *Service) TasksToday() int {
	return TasksOnDay(s.players.Daily(), s.now())
}

// CurrentStreak returns the streak as of now; a streak broken since the last write reads 0.
func (s *Service) CurrentStreak() int {
	return ComputeStreak(s.players.Daily().DailyXP, s.now())
}

func (s *Service) Achievements() []AchievementStatus {
	return s.checker.Statuses(s.players.Player())
}

// AchievementCounts returns how many achievements are unlocked and how many exist.
func (s *Service) AchievementCounts() (unlocked, total int) {
	return s.checker.CountUnlocked(s.players.Player()), s.checker.Len()
}

// Reset wipes tasks, player and daily records.
func (s *Service) Reset(ctx context.Context) error {
	s.tasks.ClearAll(ctx)
	if err := s.players.Reset(ctx, s.now()); err != nil {
		return err
	}
	s.log.Info("progress reset")
	return nil
}
