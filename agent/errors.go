package agent

import "errors"

// Sentinel errors for the registry and toolset.
var (
	ErrEmptyName     = errors.New("agent name is empty")
	ErrAgentExists   = errors.New("agent already registered")
	ErrAgentNotFound = errors.New("agent not found")

	ErrEmptyToolName = errors.New("tool name is empty")
	ErrToolExists    = errors.New("tool already registered")
	ErrToolNotFound  = errors.New("tool not found")
)
