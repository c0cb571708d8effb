package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"student-productivity/config"
	"student-productivity/internal/deadline"
	"student-productivity/internal/httpserver"
	"student-productivity/internal/mcptools"
	resumeUC "student-productivity/internal/resume/usecase"
	"student-productivity/pkg/datemath"
	"student-productivity/pkg/llmprovider"
	"student-productivity/pkg/log"
)

// main serves the deadline and resume engines as MCP tools over stdio.
// Stdout carries the protocol; the logger writes JSON to stderr.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     log.ModeProduction,
		Encoding: log.EncodingJSON,
	})
	ctx := context.Background()

	parser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		os.Exit(1)
	}

	var generator resumeUC.Generator
	if providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger); err == nil {
		if managerCfg, cfgErr := llmprovider.ManagerConfigFrom(cfg.LLM); cfgErr == nil {
			generator = llmprovider.NewManager(providers, managerCfg, logger)
		}
	}

	tools := mcptools.New(deadline.New(parser), resumeUC.New(generator, logger), logger)
	s := mcptools.NewServer(httpserver.ServiceName, httpserver.HealthVersion, tools)

	if err := server.ServeStdio(s); err != nil {
		logger.Error(ctx, "MCP server stopped: ", err)
		os.Exit(1)
	}
}
