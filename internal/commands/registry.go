package commands

import (
	"sync"
	"sync/atomic"

	"uniconsole/pkg/logging"
)

const subsystem = "Registry"

// Snapshot is an immutable view of the registered commands produced by one
// population. Resolution always works against a single snapshot.
type Snapshot struct {
	descriptors []*Descriptor
	groups      []string
}

// Descriptors returns the commands in registration order.
func (s *Snapshot) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(s.descriptors))
	copy(out, s.descriptors)
	return out
}

// Groups returns the distinct groups in first-seen order.
func (s *Snapshot) Groups() []string {
	out := make([]string, len(s.groups))
	copy(out, s.groups)
	return out
}

// Len returns the number of commands.
func (s *Snapshot) Len() int {
	return len(s.descriptors)
}

// Equal reports whether both snapshots hold the same commands in the same order.
// Descriptors are compared by identity, not by pointer.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if len(s.descriptors) != len(other.descriptors) {
		return false
	}
	for i := range s.descriptors {
		if !s.descriptors[i].sameIdentity(other.descriptors[i]) {
			return false
		}
	}
	return true
}

// Registry holds the commands declared by its sources. Populate rebuilds the
// whole set and publishes it atomically, so readers never observe a partially
// populated registry.
type Registry struct {
	mu       sync.Mutex // serializes Populate and source changes
	sources  []Source
	snapshot atomic.Pointer[Snapshot]
}

// NewRegistry creates a registry over sources. Built-in console commands are
// always registered first.
func NewRegistry(sources ...Source) *Registry {
	r := &Registry{}
	r.sources = append([]Source{builtinSource(r)}, sources...)
	return r
}

// AddSource attaches a source. It takes effect on the next Populate.
func (r *Registry) AddSource(src Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, src)
}

// Populate rescans every source and replaces the current snapshot. Sources
// that fail and specs that are invalid are skipped.
func (r *Registry) Populate() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := &Snapshot{}
	seenGroups := make(map[string]bool)

	for i, src := range r.sources {
		specs, err := src.Specs()
		if err != nil {
			logging.Warn(subsystem, "Skipping command source %d: %v", i, err)
			continue
		}
		for _, spec := range specs {
			d, err := newDescriptor(spec)
			if err != nil {
				logging.Warn(subsystem, "Skipping command %q: %v", spec.Name, err)
				continue
			}
			next.descriptors = append(next.descriptors, d)
			if !seenGroups[d.group] {
				seenGroups[d.group] = true
				next.groups = append(next.groups, d.group)
			}
		}
	}

	r.snapshot.Store(next)
	logging.Debug(subsystem, "Registered %d commands in %d groups", len(next.descriptors), len(next.groups))
	return next
}

// Snapshot returns the current snapshot, populating on first use.
func (r *Registry) Snapshot() *Snapshot {
	if s := r.snapshot.Load(); s != nil {
		return s
	}
	return r.Populate()
}

// Commands returns the current descriptors.
func (r *Registry) Commands() []*Descriptor {
	return r.Snapshot().Descriptors()
}

// Groups returns the current groups.
func (r *Registry) Groups() []string {
	return r.Snapshot().Groups()
}
