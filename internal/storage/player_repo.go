package storage

import (
	"context"
	"time"
)

// PlayerRepo holds the player record and the daily activity log.
type PlayerRepo struct {
	store  *Store
	player Player
	daily  DailyStats
}

func NewPlayerRepo(ctx context.Context, store *Store, now time.Time) *PlayerRepo {
	r := &PlayerRepo{store: store}
	r.Reload(ctx, now)
	return r
}

// Reload reads both records back from the store, filling defaults for anything missing.
func (r *PlayerRepo) Reload(ctx context.Context, now time.Time) {
	r.player = Load(ctx, r.store, KeyPlayer, DefaultPlayer(now))
	if r.player.UnlockedAchievements == nil {
		r.player.UnlockedAchievements = []string{}
	}
	if r.player.CreatedAt.IsZero() {
		r.player.CreatedAt = now
	}
	r.daily = Load(ctx, r.store, KeyDaily, DefaultDailyStats())
	if r.daily.DailyXP == nil {
		r.daily.DailyXP = map[string]int{}
	}
	if r.daily.DailyTasks == nil {
		r.daily.DailyTasks = map[string]int{}
	}
}

// Player returns the live player record; callers mutate it and then call Save.
func (r *PlayerRepo) Player() *Player { return &r.player }

// Daily returns the live daily log.
func (r *PlayerRepo) Daily() *DailyStats { return &r.daily }

// Save writes the player record and the daily log together.
func (r *PlayerRepo) Save(ctx context.Context) error {
	return r.store.SaveAll(ctx, map[string]any{
		KeyPlayer: r.player,
		KeyDaily:  r.daily,
	})
}

// Reset restores both records to their defaults and persists them.
func (r *PlayerRepo) Reset(ctx context.Context, now time.Time) error {
	r.player = DefaultPlayer(now)
	r.daily = DefaultDailyStats()
	return r.Save(ctx)
}
