package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jonzarecki/fast-flights-mcp/bootstrap"
	"github.com/jonzarecki/fast-flights-mcp/config"
	"github.com/jonzarecki/fast-flights-mcp/log"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Init("info")
		log.Fatalf(ctx, "Failed to load config: %v", err)
	}
	log.Init(cfg.Log.Level)

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(ctx, "Failed to set up application: %v", err)
	}

	log.Infof(ctx, "Starting fast-flights MCP server on stdio")
	if err := server.ServeStdio(app.Server); err != nil {
		log.Fatalf(ctx, "Server error: %v", err)
	}
}
