package app

import (
	"image"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/assets"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// Kind tells the launcher what selecting an entry does.
type Kind int

const (
	KindGame Kind = iota
	KindSettings
)

// SettingsTitle is the label of the settings entry.
const SettingsTitle = "Settings"

// Entry is one launcher box.
type Entry struct {
	Kind     Kind
	Title    string
	Game     registry.Descriptor // zero for the settings entry
	IconPath string              // file the icon came from; empty for a placeholder
	Icon     *image.NRGBA        // size x size, always set
}

// IconsDir is where shared icons live under the assets root.
func IconsDir(assetsDir string) string {
	return filepath.Join(assetsDir, "icons")
}

// GamesDir is where per-game asset directories live.
func GamesDir(assetsDir string) string {
	return filepath.Join(assetsDir, "games")
}

// BuildCatalog turns discovered games into launcher entries with decoded
// icons and appends the settings entry.
//
// A game's own icon is tinted by its title. Games without one share the
// default icon, tinted the same way so each still gets its own hue. When
// nothing loads, a gray placeholder is used. The settings icon is not tinted.
func BuildCatalog(games []registry.Entry, assetsDir string, size int, logger *log.Logger) []Entry {
	iconsDir := IconsDir(assetsDir)
	defaultIcon, defaultPath := loadOptional(iconsDir, "default_icon", size, logger)

	entries := make([]Entry, 0, len(games)+1)
	for _, g := range games {
		e := Entry{Kind: KindGame, Title: g.Title, Game: g.Descriptor}

		var base *image.NRGBA
		if g.IconPath != "" {
			img, err := assets.LoadIcon(g.IconPath, size)
			if err != nil {
				logger.Warn("cannot load game icon", "game", g.ID, "path", g.IconPath, "error", err)
			} else {
				base, e.IconPath = img, g.IconPath
			}
		}
		if base == nil && defaultIcon != nil {
			base, e.IconPath = defaultIcon, defaultPath
		}

		if base != nil {
			e.Icon = assets.Tint(base, g.Title)
		} else {
			e.Icon = assets.Placeholder(size, assets.PlaceholderGray)
		}
		entries = append(entries, e)
	}

	settings := Entry{Kind: KindSettings, Title: SettingsTitle}
	if img, path := loadOptional(iconsDir, "settings_icon", size, logger); img != nil {
		settings.Icon, settings.IconPath = img, path
	} else {
		settings.Icon = assets.Placeholder(size, assets.PlaceholderGray)
	}
	return append(entries, settings)
}

// loadOptional loads dir/stem.{png,webp} if present. A missing file is not
// worth a warning; a broken one is.
func loadOptional(dir, stem string, size int, logger *log.Logger) (*image.NRGBA, string) {
	path, ok := assets.FindImage(dir, stem)
	if !ok {
		logger.Debug("icon not found", "dir", dir, "name", stem)
		return nil, ""
	}
	img, err := assets.LoadIcon(path, size)
	if err != nil {
		logger.Warn("cannot load icon", "path", path, "error", err)
		return nil, ""
	}
	return img, path
}
