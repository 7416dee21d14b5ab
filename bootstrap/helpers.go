package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jonzarecki/fast-flights-mcp/fastflights"
)

// registerPrompts adds the guided-usage prompts to the server.
func registerPrompts(s *server.MCPServer) {
	planTrip := mcp.NewPrompt("plan_trip",
		mcp.WithPromptDescription("Guides a flight search for a trip between two places."),
		mcp.WithArgument("origin", mcp.RequiredArgument(), mcp.ArgumentDescription("Origin airport or city")),
		mcp.WithArgument("destination", mcp.RequiredArgument(), mcp.ArgumentDescription("Destination airport or city")),
		mcp.WithArgument("date", mcp.RequiredArgument(), mcp.ArgumentDescription("Departure date, YYYY-MM-DD")),
		mcp.WithArgument("return_date", mcp.ArgumentDescription("Return date for round-trips, YYYY-MM-DD")),
	)

	s.AddPrompt(planTrip, func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := req.Params.Arguments

		var b strings.Builder
		fmt.Fprintf(&b, "Plan a trip from %s to %s departing %s.\n", args["origin"], args["destination"], args["date"])
		if ret := args["return_date"]; ret != "" {
			fmt.Fprintf(&b, "Return on %s (use trip=round-trip with return_date).\n", ret)
		}
		b.WriteString("\nSteps:\n")
		b.WriteString("1. If origin or destination is not a 3-letter IATA code, resolve it with search_airports.\n")
		b.WriteString("2. Call search_flights with the resolved codes and the dates.\n")
		b.WriteString("3. Summarize the best options by price and duration, noting the price assessment line.\n")

		return mcp.NewGetPromptResult("Trip planning instructions", []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(b.String())),
		}), nil
	})
}

// registerResources adds the airport directory resource to the server.
func registerResources(s *server.MCPServer) {
	directory := mcp.NewResource("airports://directory", "Airport directory",
		mcp.WithResourceDescription("Every airport known to the flight search, one per line as Name (CODE)"),
		mcp.WithMIMEType("text/plain"),
	)

	s.AddResource(directory, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		var b strings.Builder
		for _, a := range fastflights.Airports {
			fmt.Fprintf(&b, "%s (%s)\n", a.Name, a.Code)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     b.String(),
			},
		}, nil
	})
}
