// Package flags holds the feature flags read from the `flags:` config map.
// Unknown names read as off. The whole set can be swapped with Update when
// the config file changes while the program runs.
package flags

import (
	"maps"
	"slices"
	"sync"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/log"
)

const (
	// FlagStrictRoomRefs makes request creation reject camarim ids that are
	// not registered.
	FlagStrictRoomRefs = "strict-room-refs"
)

// Known lists every flag the program reads, with its default.
var Known = map[string]bool{
	FlagStrictRoomRefs: false,
}

// Registry holds flag state. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// New creates a Registry from a config map. The map is copied.
func New(flags map[string]bool) *Registry {
	r := &Registry{flags: normalize(flags)}
	warnUnknown(r.flags)
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(r.flags), "enabled", r.EnabledNames())
	return r
}

func normalize(flags map[string]bool) map[string]bool {
	out := maps.Clone(flags)
	if out == nil {
		out = make(map[string]bool)
	}
	return out
}

func warnUnknown(flags map[string]bool) {
	for name := range flags {
		if _, ok := Known[name]; !ok {
			log.Warn(log.CatConfig, "Unknown feature flag in config", "flag", name)
		}
	}
}

// Update replaces every flag with flags and returns the names whose state
// changed, sorted. Nil-safe.
func (r *Registry) Update(flags map[string]bool) []string {
	if r == nil {
		return nil
	}
	next := normalize(flags)
	warnUnknown(next)

	r.mu.Lock()
	prev := r.flags
	r.flags = next
	r.mu.Unlock()

	var changed []string
	for name := range Known {
		if prev[name] != next[name] {
			changed = append(changed, name)
		}
	}
	slices.Sort(changed)
	if len(changed) > 0 {
		log.Info(log.CatConfig, "Feature flags updated", "changed", changed, "enabled", r.EnabledNames())
	}
	return changed
}

// Enabled returns true if the named flag is on. Nil-safe.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.flags[name]
}

// All returns a copy of all flags. Returns an empty map if r is nil.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return make(map[string]bool)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.flags)
}

// EnabledNames returns the names of the flags that are on, sorted.
func (r *Registry) EnabledNames() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.flags))
	for name, on := range r.flags {
		if on {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
