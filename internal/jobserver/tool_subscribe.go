package jobserver

import (
	"context"

	"github.com/careerai/engine/internal/engine"
	"github.com/careerai/engine/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerAlertSubscribe(server *mcp.Server, s *jobs.Session) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_alert_subscribe",
		Description: "Subscribe an email address to job alerts for the most recent search. The address is validated before registration; a new search clears the subscription.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.JobAlertSubscribeInput) (*mcp.CallToolResult, jobs.Subscription, error) {
		sub, err := s.Subscribe(ctx, input.Email)
		if err != nil {
			return nil, jobs.Subscription{}, err
		}
		return nil, sub, nil
	})
}
