package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lmittmann/tint"

	"github.com/synthesis-agents/runtime/agent"
	"github.com/synthesis-agents/runtime/core/capability"
	"github.com/synthesis-agents/runtime/observability"
	"github.com/synthesis-agents/runtime/runtime"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to shell config file, JSON or YAML (optional)")
		task       = flag.String("task", "", "Task text to hand the demo agent (required)")
		timeoutMS  = flag.Int("timeout-ms", 0, "Execute timeout in milliseconds (overrides config)")
		verbose    = flag.Bool("verbose", false, "Enable debug logging to stderr")
	)
	flag.Parse()

	if *task == "" {
		fmt.Fprintln(os.Stderr, "Usage: agentd -task <text> [-config <file>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := runtime.DefaultConfig()
	if *configFile != "" {
		loaded, err := runtime.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if *timeoutMS > 0 {
		cfg.TimeoutMS = *timeoutMS
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	exec, err := newEchoAgent()
	if err != nil {
		log.Fatalf("Failed to create demo agent: %v", err)
	}

	shell, err := runtime.New(exec, &cfg,
		runtime.WithObserver(observability.NewSlogObserver(logger)),
	)
	if err != nil {
		log.Fatalf("Failed to create shell: %v", err)
	}

	reg := agent.NewRegistry()
	if err := reg.Register(shell); err != nil {
		log.Fatalf("Failed to register agent: %v", err)
	}

	// Select the agent the way a coordinator would, by capability.
	matches := reg.FindByCapability(capability.NewSet(capability.Reasoning))
	if len(matches) == 0 {
		log.Fatal("No agent with the reasoning capability is registered")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res := matches[0].RunGuarded(ctx, map[string]any{"task": *task})

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))

	if !res.OK() {
		os.Exit(1)
	}
}
