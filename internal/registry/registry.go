// Package registry provides a global registry of scenes.
// Scene packages register themselves in init() functions, so the platform
// discovers every screen and game without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/arcade-collab/internal/statemachine"
)

// Kind separates navigation screens from playable games.
type Kind int

const (
	KindScreen Kind = iota
	KindGame
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindGame {
		return "game"
	}
	return "screen"
}

// Info contains metadata about a registered scene.
type Info struct {
	ID    string
	Title string
	Kind  Kind
	// Thumb is the lobby thumbnail. Games without one get DefaultThumb.
	Thumb []string
}

// Factory creates a new instance of a scene.
type Factory func(env *Env) statemachine.State

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a scene to the registry.
// Typically called from a scene package's init() function.
// Panics if a scene with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: scene registered without an ID")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = TitleFromID(info.ID)
	}
	if info.Kind == KindGame && len(info.Thumb) == 0 {
		info.Thumb = DefaultThumb(info.Title)
	}

	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered scenes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// ListKind returns the registered scenes of one kind, sorted by ID.
func ListKind(k Kind) []Info {
	var out []Info
	for _, info := range List() {
		if info.Kind == k {
			out = append(out, info)
		}
	}
	return out
}

// Lookup returns the metadata for id.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Create instantiates a scene by its ID.
// Returns an error if the ID is not registered.
func Create(id string, env *Env) (statemachine.State, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}
	return e.factory(env), nil
}

// Factories builds a state machine table holding every registered scene.
func Factories(env *Env) map[string]statemachine.Factory {
	mu.RLock()
	defer mu.RUnlock()

	table := make(map[string]statemachine.Factory, len(entries))
	for id, e := range entries {
		f := e.factory
		table[id] = func() statemachine.State { return f(env) }
	}
	return table
}

// TitleFromID turns a scene ID into a display title: "space_war" -> "Space War".
func TitleFromID(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ParseThumb splits an embedded thumbnail file into rows.
func ParseThumb(s string) []string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Thumbnail size in cells.
const (
	ThumbW = 14
	ThumbH = 3
)

// DefaultThumb is the placeholder thumbnail for games that ship none.
func DefaultThumb(title string) []string {
	initial := "?"
	if title != "" {
		initial = strings.ToUpper(title[:1])
	}
	pad := strings.Repeat(" ", (ThumbW-3)/2)
	return []string{
		pad + "/~\\",
		pad + "|" + initial + "|",
		pad + "\\_/",
	}
}

// reset clears the registry. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	entries = make(map[string]entry)
}
