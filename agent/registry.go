package agent

import (
	"fmt"
	"sort"
	"sync"

	"github.com/synthesis-agents/runtime/core/capability"
)

// Info describes a registered agent's name and declared capabilities.
type Info struct {
	Name         string
	Capabilities []capability.Capability
}

// Registry holds named runners for coordinator lookup. Names are unique
// within a registry. Thread-safe for concurrent access.
type Registry struct {
	mu      sync.RWMutex
	runners map[string]Runner
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{runners: make(map[string]Runner)}
}

// Register adds a runner under its own name. Duplicate names are rejected.
func (r *Registry) Register(runner Runner) error {
	name := runner.Name()
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runners[name]; exists {
		return fmt.Errorf("%w: %s", ErrAgentExists, name)
	}
	r.runners[name] = runner
	return nil
}

// Get retrieves a runner by name.
func (r *Registry) Get(name string) (Runner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runner, exists := r.runners[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return runner, nil
}

// Unregister removes a named runner. The runner's tracked memory is the
// owner's to release; the registry only forgets the reference.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runners[name]; !exists {
		return fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	delete(r.runners, name)
	return nil
}

// List returns information about all registered agents, sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.runners))
	for name, runner := range r.runners {
		infos = append(infos, Info{
			Name:         name,
			Capabilities: runner.Capabilities().List(),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// FindByCapability returns the runners whose capability set intersects the
// required set, sorted by name. An empty required set matches nothing.
func (r *Registry) FindByCapability(required capability.Set) []Runner {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []Runner
	for _, runner := range r.runners {
		if runner.Capabilities().Intersects(required) {
			matched = append(matched, runner)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Name() < matched[j].Name() })
	return matched
}
