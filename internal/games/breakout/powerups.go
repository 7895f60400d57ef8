package breakout

import (
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
)

// PowerUp is a pickup kind dropped by broken bricks.
type PowerUp int

const (
	PowerUpExpand    PowerUp = iota // wider paddle for a while
	PowerUpMultiball                // extra balls launched from the paddle
	PowerUpSlow                     // slower balls for a while
	powerUpCount
)

// Glyph returns the character a falling pickup is drawn with.
func (p PowerUp) Glyph() rune {
	switch p {
	case PowerUpExpand:
		return 'E'
	case PowerUpMultiball:
		return 'M'
	case PowerUpSlow:
		return 'S'
	default:
		return '?'
	}
}

// String returns the HUD name.
func (p PowerUp) String() string {
	switch p {
	case PowerUpExpand:
		return "Expand"
	case PowerUpMultiball:
		return "Multi"
	case PowerUpSlow:
		return "Slow"
	default:
		return "?"
	}
}

// Color returns the pickup color.
func (p PowerUp) Color() core.Color {
	switch p {
	case PowerUpExpand:
		return core.ColorBrightGreen
	case PowerUpMultiball:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightBlue
	}
}

// Pickup is a power-up falling toward the paddle.
type Pickup struct {
	Kind PowerUp
	X, Y Fixed
}

// Effect is a timed power-up in force until UntilTick.
type Effect struct {
	Kind      PowerUp
	UntilTick int
}

// Remaining returns the ticks left at tick now.
func (e Effect) Remaining(now int) int {
	return max(e.UntilTick-now, 0)
}

// PowerUps tracks falling pickups and active timed effects.
type PowerUps struct {
	cfg     config.BreakoutPowerUps
	Pickups []Pickup
	Effects []Effect
}

// NewPowerUps creates an empty tracker.
func NewPowerUps(cfg config.BreakoutPowerUps) *PowerUps {
	return &PowerUps{cfg: cfg}
}

// TrySpawn drops a random pickup at (x, y) with the configured chance.
func (pu *PowerUps) TrySpawn(rng *rand.Rand, x, y Fixed) bool {
	if pu.cfg.SpawnChance <= 0 || rng.Intn(100) >= pu.cfg.SpawnChance {
		return false
	}
	kind := PowerUp(rng.Intn(int(powerUpCount)))
	pu.Pickups = append(pu.Pickups, Pickup{Kind: kind, X: x, Y: y})
	return true
}

// Fall moves every pickup down and returns the kinds caught by the paddle.
// Pickups that leave a field of the given height are dropped.
func (pu *PowerUps) Fall(paddle *Paddle, height int) []PowerUp {
	var caught []PowerUp
	kept := pu.Pickups[:0]
	for _, p := range pu.Pickups {
		p.Y += Fixed(max(pu.cfg.FallSpeed, 1))
		y := p.Y.ToCell()
		switch {
		case (y == paddle.Y || y == paddle.Y-1) && p.X >= paddle.X && p.X <= paddle.Right():
			caught = append(caught, p.Kind)
		case y < height:
			kept = append(kept, p)
		}
	}
	pu.Pickups = kept
	return caught
}

// Activate starts a timed effect or extends one already running.
// It reports whether the effect was newly started.
func (pu *PowerUps) Activate(kind PowerUp, now int) bool {
	until := now + pu.cfg.DurationTicks
	for i := range pu.Effects {
		if pu.Effects[i].Kind == kind {
			pu.Effects[i].UntilTick = until
			return false
		}
	}
	pu.Effects = append(pu.Effects, Effect{Kind: kind, UntilTick: until})
	return true
}

// Active reports whether an effect of the given kind is running.
func (pu *PowerUps) Active(kind PowerUp) bool {
	for _, e := range pu.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Expire removes effects whose time is up and returns their kinds.
func (pu *PowerUps) Expire(now int) []PowerUp {
	var expired []PowerUp
	kept := pu.Effects[:0]
	for _, e := range pu.Effects {
		if e.UntilTick <= now {
			expired = append(expired, e.Kind)
			continue
		}
		kept = append(kept, e)
	}
	pu.Effects = kept
	return expired
}

// Clear drops all pickups and returns the kinds of effects that were running.
func (pu *PowerUps) Clear() []PowerUp {
	ended := make([]PowerUp, 0, len(pu.Effects))
	for _, e := range pu.Effects {
		ended = append(ended, e.Kind)
	}
	pu.Pickups = pu.Pickups[:0]
	pu.Effects = pu.Effects[:0]
	return ended
}
