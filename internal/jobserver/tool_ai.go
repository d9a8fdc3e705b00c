package jobserver

import (
	"context"

	"github.com/careerai/engine/internal/engine"
	"github.com/careerai/engine/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerAITools wires the three per-job analysis tools. They share one
// runner, so starting any of them replaces whatever analysis was in flight.
func registerAITools(server *mcp.Server, s *jobs.Session) {
	addAITool(server, s, jobs.ToolFit, "analyze_fit",
		"Analyze how well a resume fits the given job. Returns a Markdown report with a match score, key strengths, and missing skills. Uses the stored default resume profile when no resume text is provided.")
	addAITool(server, s, jobs.ToolLetter, "cover_letter",
		"Draft a personalized cover letter for the given job, grounded in the resume or profile text. Uses the stored default resume profile when none is provided.")
	addAITool(server, s, jobs.ToolInterview, "interview_prep",
		"Prepare for an interview at the given job's company: likely questions, recommended talking points, and a company-specific pro-tip. Does not use a resume.")
}

func addAITool(server *mcp.Server, s *jobs.Session, kind jobs.ToolKind, name, desc string) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        name,
		Description: desc,
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.AIToolInput) (*mcp.CallToolResult, jobs.ToolStatus, error) {
		if input.JobID == "" {
			return nil, jobs.ToolStatus{}, jobs.ErrUnknownJob
		}
		st, err := s.RunTool(ctx, input.JobID, kind, input.Resume)
		if err != nil {
			return nil, jobs.ToolStatus{}, err
		}
		return nil, st, nil
	})
}
