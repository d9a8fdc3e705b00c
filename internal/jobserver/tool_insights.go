package jobserver

import (
	"context"

	"github.com/careerai/engine/internal/engine"
	"github.com/careerai/engine/internal/engine/jobs"
	"github.com/careerai/engine/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerCareerInsights(server *mcp.Server, s *jobs.Session) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "career_insights",
		Description: "Get web-grounded career insights for a topic: industry trends, in-demand skills, and salary expectations, with up to four cited sources. Returns Markdown.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.CareerInsightsInput) (*mcp.CallToolResult, jobs.InsightsResult, error) {
		out, err := careerInsights(ctx, s, input)
		if err != nil {
			return nil, jobs.InsightsResult{}, err
		}
		return nil, out, nil
	})
}

func careerInsights(ctx context.Context, s *jobs.Session, input engine.CareerInsightsInput) (jobs.InsightsResult, error) {
	if input.Topic == "" {
		return jobs.InsightsResult{}, jobs.ErrEmptyTopic
	}

	cacheKey := engine.CacheKey("career_insights", input.Topic)
	if out, ok := toolutil.CacheLoadJSON[jobs.InsightsResult](ctx, cacheKey); ok {
		return out, nil
	}

	out, err := s.Insights(ctx, input.Topic)
	if err != nil {
		return jobs.InsightsResult{}, err
	}
	// The apology substitute must not outlive the outage that produced it.
	if !out.Degraded {
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
	}
	return out, nil
}
