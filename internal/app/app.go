// Package app builds the process context shared by every screen: the logger,
// user settings, score store, menu layout and the launcher catalog with its
// icons already decoded. It is built once at startup and handed to the TUI.
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/menu"
	"github.com/vovakirdan/classic-arcade/internal/registry"
	"github.com/vovakirdan/classic-arcade/internal/storage"
)

// Options come from the command line.
type Options struct {
	Verbose      bool
	FPS          int
	Seed         int64  // 0 picks a fresh seed per game
	DBPath       string // empty uses the XDG data dir; "-" disables scores
	AssetsDir    string
	SettingsPath string // empty uses the XDG config dir
	ConfigPath   string // optional per-game tuning file
	Difficulty   string // overrides the saved preset when set
}

// Context is the explicit process state. Only the settings change after
// New returns, and those are guarded.
type Context struct {
	Logger  *log.Logger
	Store   *storage.Store // nil when scores are unavailable
	Layout  config.Layout
	Entries []Entry
	Options Options

	settingsPath string
	mu           sync.RWMutex
	settings     *config.Settings
}

// New builds the context. Only a broken logger argument is fatal; every
// other problem is logged and replaced by a usable default.
func New(opts Options, logger *log.Logger) (*Context, error) {
	if logger == nil {
		return nil, fmt.Errorf("app: nil logger")
	}
	if opts.FPS <= 0 {
		opts.FPS = core.DefaultConfig().TickRate
	}
	if opts.AssetsDir == "" {
		opts.AssetsDir = "assets"
	}
	c := &Context{Logger: logger, Options: opts}

	c.settingsPath = opts.SettingsPath
	if c.settingsPath == "" {
		p, err := config.DefaultSettingsPath()
		if err != nil {
			logger.Warn("settings will not be saved", "error", err)
		}
		c.settingsPath = p
	}
	c.settings = &config.Settings{Difficulty: make(map[string]config.DifficultyPreset)}
	if c.settingsPath != "" {
		s, err := config.LoadSettings(c.settingsPath)
		if err != nil {
			logger.Warn("cannot load settings, using defaults", "path", c.settingsPath, "error", err)
		}
		c.settings = s
	}

	if opts.DBPath != "-" {
		store, err := storage.Open(opts.DBPath)
		if err != nil {
			logger.Warn("scores disabled", "error", err)
		} else {
			c.Store = store
		}
	}

	layout, err := config.LayoutFromEnv()
	if err != nil {
		logger.Warn("invalid menu layout override", "error", err)
	}
	c.Layout = layout
	logger.Debug("menu layout",
		"box", layout.BoxSize, "rows", layout.BoxRows(),
		"hspacing", layout.HSpacing, "vspacing", layout.VSpacing,
		"icon", menu.IconSize(layout))

	games := registry.Discover(GamesDir(opts.AssetsDir), logger)
	c.Entries = BuildCatalog(games, opts.AssetsDir, menu.IconSize(layout), logger)
	logger.Info("arcade ready", "games", len(games), "scores", c.Store != nil)
	return c, nil
}

// Preset returns the difficulty for a game. A command-line override wins.
func (c *Context) Preset(gameID string) config.DifficultyPreset {
	if c.Options.Difficulty != "" {
		return config.ParsePreset(c.Options.Difficulty)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Preset(gameID)
}

// Settings returns a copy of the current settings.
func (c *Context) Settings() *config.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Clone()
}

// SaveSettings replaces the settings and writes them to disk.
func (c *Context) SaveSettings(s *config.Settings) error {
	c.mu.Lock()
	c.settings = s.Clone()
	c.mu.Unlock()

	if c.settingsPath == "" {
		return fmt.Errorf("app: no settings path")
	}
	if err := s.Save(c.settingsPath); err != nil {
		return err
	}
	c.Logger.Info("settings saved", "path", c.settingsPath)
	return nil
}

// GameIDs lists the games in launcher order.
func (c *Context) GameIDs() []string {
	var ids []string
	for _, e := range c.Entries {
		if e.Kind == KindGame {
			ids = append(ids, e.Game.ID)
		}
	}
	return ids
}

// RuntimeFor builds the Reset config for a game on a w x h screen.
func (c *Context) RuntimeFor(gameID string, w, h int) core.RuntimeConfig {
	seed := c.Options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:    w,
		ScreenH:    h,
		TickRate:   c.Options.FPS,
		Seed:       seed,
		Difficulty: string(c.Preset(gameID)),
		ConfigPath: c.Options.ConfigPath,
	}
}

// Close releases the score store.
func (c *Context) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
