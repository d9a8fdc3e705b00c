package jobserver

import (
	"context"

	"github.com/careerai/engine/internal/engine"
	"github.com/careerai/engine/internal/engine/jobs"
	"github.com/careerai/engine/internal/engine/search"
	"github.com/careerai/engine/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerJobSearch(server *mcp.Server, s *jobs.Session) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_search",
		Description: "Search for real current job openings via a web-grounded AI service. Returns structured listings (title, company, location, source URL) built from the service's citations. Supports filters for job type, experience level, and posting date. Falls back to representative listings when the service is unavailable.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.JobSearchInput) (*mcp.CallToolResult, engine.JobSearchOutput, error) {
		out, err := searchJobs(ctx, s, input)
		if err != nil {
			return nil, engine.JobSearchOutput{}, err
		}
		return nil, out, nil
	})
}

func searchJobs(ctx context.Context, s *jobs.Session, input engine.JobSearchInput) (engine.JobSearchOutput, error) {
	if input.Query == "" {
		return engine.JobSearchOutput{}, jobs.ErrEmptyQuery
	}

	f := search.Filters{
		JobType:         search.JobType(input.JobType),
		ExperienceLevel: search.ExperienceLevel(input.ExperienceLevel),
		DatePosted:      search.DatePosted(input.DatePosted),
	}.Normalized()

	cacheKey := engine.CacheKey("job_search", input.Query, input.Location,
		string(f.JobType), string(f.ExperienceLevel), string(f.DatePosted))
	if out, ok := toolutil.CacheLoadJSON[engine.JobSearchOutput](ctx, cacheKey); ok {
		// A cache hit still starts a fresh search context.
		s.AdoptResults(out.Query, input.Location, out.Jobs)
		return out, nil
	}

	list, degraded, err := s.Search(ctx, input.Query, input.Location, f)
	if err != nil {
		return engine.JobSearchOutput{}, err
	}

	out := engine.JobSearchOutput{
		Query:    input.Query,
		Location: toolutil.NormLocation(input.Location),
		Jobs:     list,
		Total:    len(list),
		Degraded: degraded,
	}
	// Outage fallbacks are served, not cached: the next identical query must
	// retry the service instead of replaying the synthetic listings for a TTL.
	if !degraded {
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
	}
	return out, nil
}

func registerSelectJob(server *mcp.Server, s *jobs.Session) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "select_job",
		Description: "Make a job from the current results or saved list the active one. Switching jobs clears any AI analysis from the previously active job.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.SelectJobInput) (*mcp.CallToolResult, engine.Job, error) {
		if input.JobID == "" {
			return nil, engine.Job{}, jobs.ErrUnknownJob
		}
		job, err := s.SelectJob(input.JobID)
		if err != nil {
			return nil, engine.Job{}, err
		}
		return nil, job, nil
	})
}

func registerSearchHistory(server *mcp.Server, s *jobs.Session) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_history",
		Description: "Return the five most recent search queries, newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, engine.SearchHistoryOutput, error) {
		return nil, engine.SearchHistoryOutput{Queries: s.History.Entries()}, nil
	})
}
