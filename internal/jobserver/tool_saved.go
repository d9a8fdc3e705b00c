package jobserver

import (
	"context"

	"github.com/careerai/engine/internal/engine"
	"github.com/careerai/engine/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type saveToggleOutput struct {
	JobID string `json:"job_id"`
	Saved bool   `json:"saved"`
	Total int    `json:"total"`
}

func registerSaveToggle(server *mcp.Server, s *jobs.Session) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_save_toggle",
		Description: "Save a job for later, or unsave it if it is already saved. Saved jobs persist across restarts and survive new searches.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.JobSaveToggleInput) (*mcp.CallToolResult, saveToggleOutput, error) {
		if input.JobID == "" {
			return nil, saveToggleOutput{}, jobs.ErrUnknownJob
		}
		saved, err := s.ToggleSave(input.JobID)
		if err != nil {
			return nil, saveToggleOutput{}, err
		}
		return nil, saveToggleOutput{JobID: input.JobID, Saved: saved, Total: s.Saved.Len()}, nil
	})
}

func registerSavedJobs(server *mcp.Server, s *jobs.Session) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "saved_jobs_list",
		Description: "List all saved jobs, most recently saved first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, engine.SavedJobsOutput, error) {
		list := s.Saved.List()
		return nil, engine.SavedJobsOutput{Jobs: list, Total: len(list)}, nil
	})
}
