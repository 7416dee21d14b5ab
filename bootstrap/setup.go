// Package bootstrap assembles the application: collaborator clients,
// the search pipeline and the MCP server surface.
package bootstrap

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jonzarecki/fast-flights-mcp/config"
	"github.com/jonzarecki/fast-flights-mcp/exchange"
	"github.com/jonzarecki/fast-flights-mcp/fastflights"
	"github.com/jonzarecki/fast-flights-mcp/flights"
	"github.com/jonzarecki/fast-flights-mcp/log"
	"github.com/jonzarecki/fast-flights-mcp/tools"
)

const serverVersion = "0.4.0"

// App holds the initialized components of the application
type App struct {
	Config   *config.Config
	Scraper  *fastflights.Client
	Exchange *exchange.Client
	Searcher *flights.Searcher
	Registry *tools.Registry
	Server   *server.MCPServer
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	scraper := fastflights.NewClient(
		cfg.Scraper.BaseURL,
		time.Duration(cfg.Scraper.TimeoutSeconds)*time.Second,
		cfg.Scraper.RequestsPerSecond,
		cfg.Scraper.Burst,
	)

	rates := exchange.NewClient(
		cfg.Exchange.BaseURL,
		time.Duration(cfg.Exchange.TimeoutSeconds)*time.Second,
		time.Duration(cfg.Exchange.CacheTTLMinutes)*time.Minute,
	)

	searcher := flights.NewSearcher(
		scraper,
		rates,
		cfg.Search.MaxAttempts,
		time.Duration(cfg.Search.RetryBackoffSeconds)*time.Second,
	)

	registry := tools.NewRegistry()
	tools.NewSearchFlightsTool(searcher, registry)
	tools.NewSearchAirportsTool(registry)
	tools.NewSeatClassesTool(registry)
	tools.NewCompareAirportsTool(searcher, registry)
	tools.NewBulkToolCaller(registry)

	s := server.NewMCPServer("fast-flights-mcp", serverVersion,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions("Flight search over scraped results. Use search_airports to resolve IATA codes, then search_flights; call_tool_bulk batches repeated lookups."),
	)
	registry.Attach(s)
	registerPrompts(s)
	registerResources(s)

	log.Infof(ctx, "Initialized MCP server with %d tool(s)", len(registry.GetTools()))

	return &App{
		Config:   cfg,
		Scraper:  scraper,
		Exchange: rates,
		Searcher: searcher,
		Registry: registry,
		Server:   s,
	}, nil
}
