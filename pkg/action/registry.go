package action

import (
	"fmt"
	"iter"
	"sync"

	"github.com/actonlabs/acton/pkg/errmodel"
)

// Registry owns the mapping from action name to Action. It is constructed
// explicitly and passed by reference; there is no package-level registry.
// Registration is write-rare and typically completes before concurrent
// execution begins; reads are safe at any time.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: map[string]Action{}}
}

// Register stores an action under its definition name. A name collision
// fails with a duplicate_action error and leaves the original registered.
func (r *Registry) Register(a Action) error {
	if a == nil {
		return fmt.Errorf("action is nil")
	}
	d := a.Describe()
	if d.Name == "" {
		return fmt.Errorf("action name is empty")
	}
	seen := map[string]bool{}
	for _, p := range d.Params {
		if p.Name == "" {
			return fmt.Errorf("action %q: parameter with empty name", d.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("action %q: duplicate parameter %q", d.Name, p.Name)
		}
		seen[p.Name] = true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.actions[d.Name]; exists {
		return errmodel.DuplicateAction(d.Name)
	}
	r.actions[d.Name] = a
	r.order = append(r.order, d.Name)
	return nil
}

// Get returns the registered action or an unknown_action error. Lookup is
// case-sensitive and exact; the catalog names are the only legal vocabulary.
func (r *Registry) Get(name string) (Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actions[name]
	if !ok {
		return nil, errmodel.UnknownAction(name)
	}
	return a, nil
}

// Len reports the number of registered actions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}

// List yields the definitions of all registered actions in insertion order.
// The sequence is restartable; it iterates over a snapshot taken when List
// is called, so ranging twice without intervening Register calls produces
// identical sequences.
func (r *Registry) List() iter.Seq[Definition] {
	r.mu.RLock()
	snapshot := make([]Action, 0, len(r.order))
	for _, name := range r.order {
		snapshot = append(snapshot, r.actions[name])
	}
	r.mu.RUnlock()
	return func(yield func(Definition) bool) {
		for _, a := range snapshot {
			if !yield(a.Describe()) {
				return
			}
		}
	}
}

// Definitions collects List into a slice, for callers that need the whole
// catalog at once (prompt assembly, HTTP export).
func (r *Registry) Definitions() []Definition {
	var out []Definition
	for d := range r.List() {
		out = append(out, d)
	}
	return out
}
