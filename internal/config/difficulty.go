package config

import "math"

// DifficultyManager derives dynamic parameters from score or elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled reports whether difficulty progresses during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty in [0, 1].
// With progression off it stays at the initial level.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0, 1)

	return d.initialLevel + progress*(1-d.initialLevel)
}

// Speed scales baseSpeed from 1x up to (1 + speed_multiplier)x.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens a tick interval as speed rises, never below minTicks.
func (d *DifficultyManager) Interval(baseTicks, minTicks int, score int, ticks int) int {
	factor := 1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
	if factor <= 0 {
		factor = 1
	}
	n := int(math.Round(float64(baseTicks) / factor))
	return max(n, minTicks, 1)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
