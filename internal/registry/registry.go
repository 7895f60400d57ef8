// Package registry is the explicit list of playable games.
// Each game package registers a factory from its init function and the
// launcher looks games up by ID, so no game is imported by name elsewhere.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// Game is the contract every arcade game implements.
// Implementations hold pure state; the platform owns timing, input and output.
type Game interface {
	// ID is the stable key used by the CLI, asset directories and scores.
	ID() string

	// Title is the display name shown in the launcher.
	Title() string

	// Reset puts the game back to its initial configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score and status without advancing.
	State() core.GameState
}

// Factory creates a fresh game instance.
type Factory func() Game

// Descriptor is what a game contributes to the registry.
type Descriptor struct {
	ID    string
	Title string
	New   Factory
}

var (
	descriptors = make(map[string]Descriptor)
	mu          sync.RWMutex
)

// Register adds a game. The title is read from a throwaway instance.
// Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := descriptors[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	descriptors[id] = Descriptor{ID: id, Title: f().Title(), New: f}
}

// List returns all registered games sorted by ID.
func List() []Descriptor {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the descriptor for id.
func Lookup(id string) (Descriptor, bool) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := descriptors[id]
	return d, ok
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	d, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return d.New(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
