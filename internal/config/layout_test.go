package config

import "testing"

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected Layout
		wantErr  bool
	}{
		{"defaults", nil, DefaultLayout(), false},
		{
			"overrides",
			map[string]string{EnvBoxSize: "20", EnvHSpacing: "4", EnvVSpacing: "0"},
			Layout{BoxSize: 20, HSpacing: 4, VSpacing: 0},
			false,
		},
		{
			"non-integer falls back",
			map[string]string{EnvBoxSize: "big", EnvHSpacing: "3"},
			Layout{BoxSize: 16, HSpacing: 3, VSpacing: 1},
			true,
		},
		{
			"too small box falls back",
			map[string]string{EnvBoxSize: "2"},
			DefaultLayout(),
			true,
		},
		{
			"negative spacing falls back",
			map[string]string{EnvVSpacing: "-1"},
			DefaultLayout(),
			true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLayout(lookupFrom(tc.env))
			if got != tc.expected {
				t.Errorf("ParseLayout() = %+v, expected %+v", got, tc.expected)
			}
			if (err != nil) != tc.wantErr {
				t.Errorf("ParseLayout() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLayoutFromEnv(t *testing.T) {
	t.Setenv(EnvBoxSize, "10")
	l, err := LayoutFromEnv()
	if err != nil {
		t.Fatalf("LayoutFromEnv() error = %v", err)
	}
	if l.BoxSize != 10 || l.BoxRows() != 5 {
		t.Errorf("LayoutFromEnv() = %+v, expected box 10 (5 rows)", l)
	}
}
