package registry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/assets"
)

// Entry is a discovered game: its descriptor plus the icon found on disk.
type Entry struct {
	Descriptor
	IconPath string // empty when the game directory has no icon
}

// Discover pairs subdirectories of gamesDir with registered games.
//
// A subdirectory whose name is not a registered ID is skipped with a warning.
// When gamesDir cannot be read or nothing matches, every registered game is
// returned without icons. Entries are sorted by title.
func Discover(gamesDir string, logger *log.Logger) []Entry {
	var entries []Entry

	dirs, err := os.ReadDir(gamesDir)
	if err != nil {
		logger.Warn("cannot read games directory", "dir", gamesDir, "error", err)
	}
	for _, d := range dirs {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		desc, ok := Lookup(d.Name())
		if !ok {
			logger.Warn("skipping game directory without entry point", "dir", d.Name())
			continue
		}
		dir := filepath.Join(gamesDir, d.Name())
		icon, found := assets.FindImage(dir, "icon")
		if !found {
			logger.Debug("no icon for game", "game", desc.ID)
		}
		entries = append(entries, Entry{Descriptor: desc, IconPath: icon})
	}

	if len(entries) == 0 {
		logger.Warn("no games discovered, using built-in list", "dir", gamesDir)
		for _, desc := range List() {
			entries = append(entries, Entry{Descriptor: desc})
		}
	}

	SortEntries(entries)
	logger.Debug("discovered games", "count", len(entries))
	return entries
}

// SortEntries orders entries alphabetically by title, then by ID.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].Title), strings.ToLower(entries[j].Title)
		if a != b {
			return a < b
		}
		return entries[i].ID < entries[j].ID
	})
}
