// Counter-Pose - stdio MCP entrypoint
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rptlabs/counterpose/internal/config"
	"github.com/rptlabs/counterpose/internal/mcpserver"
	"github.com/rptlabs/counterpose/internal/store"
	"github.com/rptlabs/counterpose/internal/usage"
	"github.com/rptlabs/counterpose/internal/workflow"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Printf("Counter-Pose MCP server %s\n", mcpserver.Version)
		fmt.Println("An implementation of the RPT (Reasoning-through-Perspective-Transition) technique")
		return
	}

	// stdout carries the MCP transport; logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	sessions := store.NewMemory(cfg.MaxSessions)

	usageLogger, err := usage.New(usage.Config{
		Enabled:   cfg.UsageLog.Enabled,
		Path:      cfg.UsageLog.Path,
		QueueSize: cfg.UsageLog.QueueSize,
	})
	if err != nil {
		slog.Error("Failed to initialize usage logger", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := usageLogger.Close(); closeErr != nil {
			slog.Error("Failed to close usage logger", "error", closeErr)
		}
	}()

	svc := workflow.NewService(sessions, usageLogger)
	s := mcpserver.New(svc)

	slog.Info("Counter-Pose MCP server starting on stdio", "version", mcpserver.Version)
	if err := server.ServeStdio(s); err != nil {
		slog.Error("MCP server exited", "error", err)
		os.Exit(1)
	}
}
