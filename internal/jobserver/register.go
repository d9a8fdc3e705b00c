// Package jobserver registers the careerai MCP tool surface: grounded job
// search, per-job AI analysis, saved jobs, search history, market insights,
// alert subscription, and resume profiles.
package jobserver

import (
	"github.com/careerai/engine/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers every careerai tool on server, binding them all to
// one shared session.
func RegisterTools(server *mcp.Server, s *jobs.Session) {
	registerJobSearch(server, s)
	registerSelectJob(server, s)
	registerSearchHistory(server, s)
	registerAITools(server, s)
	registerSaveToggle(server, s)
	registerSavedJobs(server, s)
	registerCareerInsights(server, s)
	registerAlertSubscribe(server, s)
	registerResumeTools(server, s)
}
