package engine

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultQuadraticK is the canonical constant for XP_req(L) = K * L^2.
	DefaultQuadraticK = 25

	DefaultGeometricBase   = 100
	DefaultGeometricGrowth = 1.5
	DefaultMaxLevel        = 50

	// MaxGeometricLevel bounds the geometric level cap.
	MaxGeometricLevel = 1000
)

// Curve maps cumulative XP to levels. Every award, progress and achievement path
// of a Service uses the same Curve.
type Curve interface {
	// RequiredXPForLevel returns the cumulative XP at which level finishes and level+1 begins.
	// Level 0 requires 0 XP.
	RequiredXPForLevel(level int) int
	// LevelForTotalXP returns the level (>= 1) a player with totalXP is at.
	LevelForTotalXP(totalXP int) int
	// MaxLevel is the level cap, or 0 when uncapped.
	MaxLevel() int
}

// Quadratic is the canonical curve: XP_req(L) = K * L^2, level = floor(sqrt(xp/K)) + 1.
type Quadratic struct {
	K int
}

func (q Quadratic) k() int {
	if q.K <= 0 {
		return DefaultQuadraticK
	}
	return q.K
}

func (q Quadratic) RequiredXPForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return q.k() * level * level
}

func (q Quadratic) LevelForTotalXP(totalXP int) int {
	if totalXP <= 0 {
		return 1
	}
	k := q.k()
	l := int(math.Sqrt(float64(totalXP) / float64(k)))
	// Correct float rounding at exact thresholds.
	for k*(l+1)*(l+1) <= totalXP {
		l++
	}
	for l > 0 && k*l*l > totalXP {
		l--
	}
	return l + 1
}

func (q Quadratic) MaxLevel() int { return 0 }

// Geometric is the table-driven curve: finishing level L-1 costs Base * Growth^(L-2) XP,
// capped at MaxLevel.
type Geometric struct {
	Base   int
	Growth float64
	Max    int
}

// step is the XP needed to go from level-1 to level, saturating at math.MaxInt.
func (g Geometric) step(level int) int {
	if level <= 1 {
		return 0
	}
	f := math.Floor(float64(g.Base) * math.Pow(g.Growth, float64(level-2)))
	if f >= float64(math.MaxInt) || math.IsNaN(f) {
		return math.MaxInt
	}
	return int(f)
}

// addSat adds two non-negative ints, saturating at math.MaxInt.
func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func (g Geometric) RequiredXPForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	if g.Max > 0 && level >= g.Max {
		level = g.Max - 1
	}
	total := 0
	for l := 2; l <= level+1; l++ {
		total = addSat(total, g.step(l))
	}
	return total
}

func (g Geometric) LevelForTotalXP(totalXP int) int {
	level := 1
	reached := 0
	for g.Max <= 0 || level < g.Max {
		next := g.step(level + 1)
		if next <= 0 || totalXP < addSat(reached, next) {
			break
		}
		reached = addSat(reached, next)
		level++
	}
	return level
}

func (g Geometric) MaxLevel() int { return g.Max }

// CurveSettings selects and parameterizes a Curve.
type CurveSettings struct {
	Kind     string
	K        int
	Base     int
	Growth   float64
	MaxLevel int
}

func NewCurve(s CurveSettings) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case "", "quadratic":
		if s.K < 1 {
			return nil, ConfigError{Field: "k", Reason: "must be at least 1"}
		}
		return Quadratic{K: s.K}, nil
	case "geometric":
		if s.Base < 1 {
			return nil, ConfigError{Field: "base", Reason: "must be at least 1"}
		}
		if s.Growth < 1 {
			return nil, ConfigError{Field: "growth", Reason: "must be at least 1"}
		}
		if s.MaxLevel < 2 || s.MaxLevel > MaxGeometricLevel {
			return nil, ConfigError{Field: "max_level", Reason: fmt.Sprintf("must be between 2 and %d", MaxGeometricLevel)}
		}
		return Geometric{Base: s.Base, Growth: s.Growth, Max: s.MaxLevel}, nil
	default:
		return nil, ConfigError{Field: "curve", Reason: "unknown curve " + s.Kind}
	}
}

// Progress is the position inside the current level.
type Progress struct {
	Current    int
	Required   int
	Percentage float64
}

// Remaining is the XP still needed to reach the next level.
func (p Progress) Remaining() int {
	if r := p.Required - p.Current; r > 0 {
		return r
	}
	return 0
}

// LevelProgress computes progress for a player at level with totalXP.
func LevelProgress(c Curve, totalXP, level int) Progress {
	if level < 1 {
		level = 1
	}
	prev := c.RequiredXPForLevel(level - 1)
	current := totalXP - prev
	if max := c.MaxLevel(); max > 0 && level >= max {
		return Progress{Current: current, Required: 0, Percentage: 100}
	}
	required := c.RequiredXPForLevel(level) - prev
	if required <= 0 {
		return Progress{Current: current, Required: 0, Percentage: 100}
	}
	pct := float64(current) / float64(required) * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return Progress{Current: current, Required: required, Percentage: pct}
}

// DailyGoal suggests a day's XP target: a third of the current level's span.
func DailyGoal(p Progress) int {
	return (p.Required + 2) / 3
}
