package agent

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// ToolHandler is the function signature for tools an agent registers for
// its own use during Execute.
type ToolHandler func(ctx context.Context, args map[string]any) (any, error)

// ToolInfo describes a registered tool.
type ToolInfo struct {
	Name        string
	Description string
}

// Toolset is a per-agent named tool registry. Unlike a global registry,
// each agent owns its toolset; two agents can register different tools
// under the same name. Thread-safe for concurrent access.
type Toolset struct {
	mu      sync.RWMutex
	entries map[string]toolEntry
}

type toolEntry struct {
	info    ToolInfo
	handler ToolHandler
}

// NewToolset creates an empty Toolset.
func NewToolset() *Toolset {
	return &Toolset{entries: make(map[string]toolEntry)}
}

// Register adds a tool. Duplicate names are rejected; use Replace to swap a
// handler.
func (t *Toolset) Register(name, description string, handler ToolHandler) error {
	if name == "" {
		return ErrEmptyToolName
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.entries[name]; exists {
		return fmt.Errorf("%w: %s", ErrToolExists, name)
	}
	t.entries[name] = toolEntry{
		info:    ToolInfo{Name: name, Description: description},
		handler: handler,
	}
	return nil
}

// Replace updates an existing tool's description and handler.
func (t *Toolset) Replace(name, description string, handler ToolHandler) error {
	if name == "" {
		return ErrEmptyToolName
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.entries[name]; !exists {
		return fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	t.entries[name] = toolEntry{
		info:    ToolInfo{Name: name, Description: description},
		handler: handler,
	}
	return nil
}

// Execute dispatches to the named tool. Handler errors are wrapped with the
// tool name for context.
func (t *Toolset) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	t.mu.RLock()
	e, exists := t.entries[name]
	t.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	out, err := e.handler(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", name, err)
	}
	return out, nil
}

// List returns all registered tools, sorted by name.
func (t *Toolset) List() []ToolInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()

	infos := make([]ToolInfo, 0, len(t.entries))
	for _, e := range t.entries {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
