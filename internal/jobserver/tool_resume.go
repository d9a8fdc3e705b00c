package jobserver

import (
	"context"

	"github.com/careerai/engine/internal/engine"
	"github.com/careerai/engine/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerResumeTools wires the stored-profile tools. Both fail with a clear
// error when no resume database is configured.
func registerResumeTools(server *mcp.Server, s *jobs.Session) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_set",
		Description: "Store resume text as a named profile (default: 'default'). The default profile is used by analyze_fit and cover_letter when no resume text is passed.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ResumeSetInput) (*mcp.CallToolResult, engine.ResumeOutput, error) {
		name := input.Name
		if name == "" {
			name = jobs.DefaultResumeProfile
		}
		if err := s.SetResume(ctx, name, input.Content); err != nil {
			return nil, engine.ResumeOutput{}, err
		}
		return nil, engine.ResumeOutput{Name: name, Content: input.Content, Stored: true}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_get",
		Description: "Read a stored resume profile (default: 'default'). Returns empty content when the profile does not exist.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ResumeGetInput) (*mcp.CallToolResult, engine.ResumeOutput, error) {
		name := input.Name
		if name == "" {
			name = jobs.DefaultResumeProfile
		}
		content, err := s.GetResume(ctx, name)
		if err != nil {
			return nil, engine.ResumeOutput{}, err
		}
		return nil, engine.ResumeOutput{Name: name, Content: content, Stored: content != ""}, nil
	})
}
