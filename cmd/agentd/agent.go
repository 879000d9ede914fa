package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/synthesis-agents/runtime/agent"
	"github.com/synthesis-agents/runtime/core/capability"
)

// echoAgent is a built-in demonstration executor. It restates the task it
// was given, using its toolset for the word count.
type echoAgent struct {
	tools *agent.Toolset
}

func newEchoAgent() (*echoAgent, error) {
	a := &echoAgent{tools: agent.NewToolset()}

	err := a.tools.Register("word_count", "counts whitespace-separated words", func(ctx context.Context, args map[string]any) (any, error) {
		text, _ := args["text"].(string)
		return len(strings.Fields(text)), nil
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (a *echoAgent) Name() string { return "echo" }

func (a *echoAgent) Capabilities() capability.Set {
	return capability.NewSet(capability.Reasoning, capability.Documentation)
}

func (a *echoAgent) RequiredFields() []string { return []string{"task"} }

func (a *echoAgent) Execute(ctx context.Context, input map[string]any) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	task, _ := input["task"].(string)

	words, err := a.tools.Execute(ctx, "word_count", map[string]any{"text": task})
	if err != nil {
		return nil, fmt.Errorf("word_count failed: %w", err)
	}

	return map[string]any{
		"task":  task,
		"words": words,
	}, nil
}
