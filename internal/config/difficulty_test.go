package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}

	tests := []struct {
		name     string
		initial  float64
		score    int
		expected float64
	}{
		{"start", 0, 0, 0},
		{"halfway", 0, 50, 0.5},
		{"capped", 0, 500, 1},
		{"initial offset", 0.5, 50, 0.75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cfg
			c.InitialLevel = tc.initial
			d := NewDifficultyManager(c)
			if got := d.Level(tc.score, 0); got != tc.expected {
				t.Errorf("Level() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("Level() = %v, expected initial level 0.3", got)
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Interval(10, 3, 0, 0); got != 10 {
		t.Errorf("Interval() at start = %d, expected 10", got)
	}
	if got := d.Interval(10, 3, 0, 100); got != 5 {
		t.Errorf("Interval() at max = %d, expected 5", got)
	}
	if got := d.Interval(4, 3, 0, 100); got != 3 {
		t.Errorf("Interval() should respect the floor, got %d", got)
	}
	if got := d.Speed(2, 0, 50); got != 3 {
		t.Errorf("Speed() = %v, expected 3", got)
	}
}
