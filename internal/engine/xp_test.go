package engine

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestQuadraticBoundaries(t *testing.T) {
	c := Quadratic{K: DefaultQuadraticK}
	if got := c.RequiredXPForLevel(0); got != 0 {
		t.Fatalf("RequiredXPForLevel(0)=%d, want 0", got)
	}
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1}, {24, 1}, {25, 2}, {99, 2}, {100, 3}, {224, 3}, {225, 4}, {2500, 11},
	}
	for _, tc := range cases {
		if got := c.LevelForTotalXP(tc.xp); got != tc.level {
			t.Fatalf("LevelForTotalXP(%d)=%d, want %d", tc.xp, got, tc.level)
		}
	}
	if got := (Quadratic{}).RequiredXPForLevel(2); got != 100 {
		t.Fatalf("zero K should fall back to the default, got %d", got)
	}
}

func TestLevelMonotonic(t *testing.T) {
	curves := map[string]Curve{
		"quadratic": Quadratic{K: 25},
		"geometric": Geometric{Base: 100, Growth: 1.5, Max: 50},
	}
	for name, c := range curves {
		prev := c.LevelForTotalXP(0)
		for xp := 1; xp <= 20000; xp++ {
			l := c.LevelForTotalXP(xp)
			if l < prev {
				t.Fatalf("%s: level dropped from %d to %d at %d XP", name, prev, l, xp)
			}
			prev = l
		}
	}
}

func TestLevelMatchesRequiredXP(t *testing.T) {
	curves := map[string]Curve{
		"quadratic": Quadratic{K: 25},
		"geometric": Geometric{Base: 100, Growth: 1.5, Max: 50},
	}
	for name, c := range curves {
		for level := 1; level < 20; level++ {
			req := c.RequiredXPForLevel(level)
			if got := c.LevelForTotalXP(req - 1); got != level {
				t.Fatalf("%s: LevelForTotalXP(%d)=%d, want %d", name, req-1, got, level)
			}
			if got := c.LevelForTotalXP(req); got != level+1 {
				t.Fatalf("%s: LevelForTotalXP(%d)=%d, want %d", name, req, got, level+1)
			}
		}
	}
}

func TestGeometricCap(t *testing.T) {
	c := Geometric{Base: 100, Growth: 1.5, Max: 5}
	want := []int{0, 100, 250, 475, 812, 812}
	for level, w := range want {
		if got := c.RequiredXPForLevel(level); got != w {
			t.Fatalf("RequiredXPForLevel(%d)=%d, want %d", level, got, w)
		}
	}
	if got := c.LevelForTotalXP(1_000_000); got != 5 {
		t.Fatalf("level above cap=%d, want 5", got)
	}
	p := LevelProgress(c, 1_000_000, 5)
	if p.Required != 0 || p.Percentage != 100 || p.Remaining() != 0 {
		t.Fatalf("max-level progress=%+v", p)
	}
}

func TestLevelProgressAndDailyGoal(t *testing.T) {
	c := Quadratic{K: 25}
	p := LevelProgress(c, 30, 2)
	if p.Current != 5 || p.Required != 75 {
		t.Fatalf("progress=%+v, want 5/75", p)
	}
	if p.Remaining() != 70 {
		t.Fatalf("Remaining=%d, want 70", p.Remaining())
	}
	if got := DailyGoal(p); got != 25 {
		t.Fatalf("DailyGoal=%d, want 25", got)
	}
	if got := LevelProgress(c, 0, 1); got.Current != 0 || got.Required != 25 || got.Percentage != 0 {
		t.Fatalf("fresh progress=%+v", got)
	}
}

func TestNewCurve(t *testing.T) {
	c, err := NewCurve(CurveSettings{K: DefaultQuadraticK})
	if err != nil {
		t.Fatalf("default curve: %v", err)
	}
	if _, ok := c.(Quadratic); !ok {
		t.Fatalf("default curve is %T, want Quadratic", c)
	}

	c, err = NewCurve(CurveSettings{Kind: "Geometric", Base: 100, Growth: 1.5, MaxLevel: 50})
	if err != nil {
		t.Fatalf("geometric: %v", err)
	}
	if c.MaxLevel() != 50 {
		t.Fatalf("MaxLevel=%d", c.MaxLevel())
	}

	_, err = NewCurve(CurveSettings{Kind: "geometric", Base: 0, Growth: 1.5, MaxLevel: 50})
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "base" {
		t.Fatalf("err=%v, want base ConfigError", err)
	}
	if _, err := NewCurve(CurveSettings{Kind: "cubic"}); err == nil {
		t.Fatalf("expected error for unknown curve")
	}
}

func TestNewCurveRejectsBadSettings(t *testing.T) {
	cases := []struct {
		name  string
		in    CurveSettings
		field string
	}{
		{"zero k", CurveSettings{}, "k"},
		{"negative k", CurveSettings{Kind: "quadratic", K: -3}, "k"},
		{"growth below one", CurveSettings{Kind: "geometric", Base: 100, Growth: 0.5, MaxLevel: 50}, "growth"},
		{"max level one", CurveSettings{Kind: "geometric", Base: 100, Growth: 1.5, MaxLevel: 1}, "max_level"},
		{"max level too high", CurveSettings{Kind: "geometric", Base: 100, Growth: 1.5, MaxLevel: MaxGeometricLevel + 1}, "max_level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCurve(tc.in)
			var cfgErr ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tc.field {
				t.Fatalf("err=%v, want %s ConfigError", err, tc.field)
			}
		})
	}
}

func TestGeometricHighCapSaturates(t *testing.T) {
	c, err := NewCurve(CurveSettings{Kind: "geometric", Base: 100, Growth: 1.5, MaxLevel: 200})
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	prev := 0
	for level := 1; level <= 200; level++ {
		req := c.RequiredXPForLevel(level)
		if req < prev {
			t.Fatalf("RequiredXPForLevel(%d)=%d below level %d's %d", level, req, level-1, prev)
		}
		prev = req
	}
	if prev != math.MaxInt {
		t.Fatalf("deep levels should saturate, got %d", prev)
	}
	if got := c.LevelForTotalXP(math.MaxInt); got != 200 {
		t.Fatalf("LevelForTotalXP(MaxInt)=%d, want 200", got)
	}
	if got := c.LevelForTotalXP(1_000_000); got < 1 || got >= 200 {
		t.Fatalf("LevelForTotalXP(1e6)=%d", got)
	}
}

func TestXPRewardOrdering(t *testing.T) {
	easy, medium, hard := XPReward(DifficultyEasy), XPReward(DifficultyMedium), XPReward(DifficultyHard)
	if !(hard >= medium && medium >= easy && easy > 0) {
		t.Fatalf("rewards easy=%d medium=%d hard=%d", easy, medium, hard)
	}
	if got := XPReward("legendary"); got != 0 {
		t.Fatalf("unknown difficulty reward=%d, want 0", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"":       DefaultDifficulty,
		"e":      DifficultyEasy,
		"1":      DifficultyEasy,
		" Hard ": DifficultyHard,
		"med":    DifficultyMedium,
	}
	for in, want := range cases {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Fatalf("ParseDifficulty(%q)=%q, %v; want %q", in, got, err, want)
		}
	}
	_, err := ParseDifficulty("impossible")
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("err=%v, want ErrInvalidDifficulty", err)
	}
	if !strings.Contains(err.Error(), "easy|medium|hard") {
		t.Fatalf("err=%q does not list the choices", err)
	}
}
