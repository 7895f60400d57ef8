package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/classic-arcade/internal/config"
)

func TestSettingsCyclePresets(t *testing.T) {
	ctx := appContext(t, "-")
	m := NewSettingsModel(ctx, plainStyles(), 60)
	if len(m.rows) != 1 || m.rows[0].id != stubID {
		t.Fatalf("rows = %+v, expected the stub game", m.rows)
	}

	tests := []struct {
		key  string
		want config.DifficultyPreset
	}{
		{"right", config.DifficultyHard},
		{"right", config.DifficultyFixed},
		{"right", config.DifficultyEasy},
		{"left", config.DifficultyFixed},
		{"a", config.DifficultyHard},
	}
	for _, tt := range tests {
		m, _ = m.Update(keyMsg(tt.key))
		if got := m.Preset(0); got != tt.want {
			t.Fatalf("after %q preset = %q, expected %q", tt.key, got, tt.want)
		}
	}
	if ctx.Preset(stubID) != config.DifficultyNormal {
		t.Error("presets should not apply before saving")
	}

	_, cmd := m.Update(keyMsg("esc"))
	if run(cmd) != (backMsg{}) {
		t.Error("esc should return to the launcher")
	}
	if got := ctx.Preset(stubID); got != config.DifficultyHard {
		t.Errorf("saved preset = %q, expected hard", got)
	}
}

func TestSettingsView(t *testing.T) {
	m := NewSettingsModel(appContext(t, "-"), plainStyles(), 60)
	v := m.View()
	for _, want := range []string{"SETTINGS", "Stub", "normal"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
