package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/careerai/engine/internal/engine"
)

const insightsPrompt = `Provide detailed career insights, industry trends, or salary expectations for: "%s". Focus on actionable advice, skills in demand, and current market reality. Use Markdown formatting with clear sections.`

const (
	insightsApology  = "Sorry, I couldn't generate insights at this moment."
	noInsightsText   = "No insights available."
	maxInsightSource = 4
)

// InsightsResult carries a market-insights answer and up to four of the
// grounding sources the service cited for it. Degraded marks the apology
// substitute produced on service failure; degraded results must not be
// cached or the apology outlives the outage.
type InsightsResult struct {
	Topic    string                      `json:"topic"`
	Text     string                      `json:"text"`
	Sources  []engine.GroundingReference `json:"sources,omitempty"`
	Degraded bool                        `json:"degraded,omitempty"`
}

// FetchInsights asks the grounded service for market commentary on topic.
// Service failure degrades to a fixed apology line rather than an error:
// insights are advisory and should never break the caller's flow.
func FetchInsights(ctx context.Context, gen engine.Generator, topic string) InsightsResult {
	engine.IncrInsightRequests()

	out := InsightsResult{Topic: topic}

	res, err := gen.Generate(ctx, engine.GenerateRequest{
		Prompt:    fmt.Sprintf(insightsPrompt, topic),
		Grounding: true,
	})
	if err != nil {
		slog.Warn("insights fetch failed", slog.String("topic", topic), slog.Any("error", err))
		out.Text = insightsApology
		out.Degraded = true
		return out
	}

	if res.Text == "" {
		out.Text = noInsightsText
	} else {
		out.Text = res.Text
	}
	if len(res.References) > maxInsightSource {
		out.Sources = res.References[:maxInsightSource]
	} else {
		out.Sources = res.References
	}
	return out
}
