package jobs

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/careerai/engine/internal/engine"
	"github.com/careerai/engine/internal/engine/search"
)

var (
	ErrEmptyQuery      = errors.New("query is required")
	ErrEmptyTopic      = errors.New("topic is required")
	ErrUnknownJob      = errors.New("job not found")
	ErrUnknownToolKind = errors.New("unknown tool kind")
	ErrNoResumeStore   = errors.New("resume storage is not configured")
	ErrEmptyResume     = errors.New("resume content is required")
)

// Session is the engine facade: current result set, selection, saved jobs,
// search history, the AI tool runner, and the alert flow, all sharing one
// generative client. It starts with seed listings so the first interaction
// has content before any search runs.
type Session struct {
	gen engine.Generator

	mu           sync.Mutex
	jobs         []engine.Job
	selectedID   string
	lastQuery    string
	lastLocation string
	resumes      *ResumeStore

	Saved   *SavedJobs
	History *History
	Tools   *ToolRunner
	Alerts  *AlertFlow
}

// NewSession builds a session over gen, persisting saved jobs through kv.
func NewSession(gen engine.Generator, kv KV) *Session {
	return &Session{
		gen:     gen,
		jobs:    search.SeedJobs(),
		Saved:   NewSavedJobs(kv),
		History: &History{},
		Tools:   NewToolRunner(gen),
		Alerts:  NewAlertFlow(),
	}
}

// SetResumeStore attaches an optional Postgres-backed resume store. Without
// one, tools fall back to their built-in resume placeholders.
func (s *Session) SetResumeStore(rs *ResumeStore) {
	s.mu.Lock()
	s.resumes = rs
	s.mu.Unlock()
}

// Search runs a grounded job search and replaces the current result set.
// An empty query is rejected before anything is touched. Selection, tool
// state, and the alert flow are cleared for the new context; service failure
// degrades to synthesized listings instead of an error, reported through the
// degraded flag so callers never treat outage output as real listings. The
// query is recorded in history either way.
func (s *Session) Search(ctx context.Context, query, location string, f search.Filters) (jobs []engine.Job, degraded bool, err error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, false, ErrEmptyQuery
	}
	engine.IncrSearchRequests()
	f = f.Normalized()

	s.mu.Lock()
	s.selectedID = ""
	s.mu.Unlock()
	s.Tools.Reset("")
	s.Alerts.Reset()

	res, genErr := s.gen.Generate(ctx, engine.GenerateRequest{
		Prompt:    search.BuildPrompt(query, location, f),
		Grounding: true,
	})
	if genErr != nil {
		slog.Warn("job search failed, serving fallback listings",
			slog.String("query", query), slog.Any("error", genErr))
		jobs = search.FallbackJobs(query, location, f)
		degraded = true
	} else {
		jobs = search.ParseResults(res.References, query, location, f)
	}

	s.mu.Lock()
	s.jobs = jobs
	s.lastQuery = query
	s.lastLocation = location
	s.mu.Unlock()

	s.History.Record(query)
	return jobs, degraded, nil
}

// AdoptResults installs a previously produced result set for query, applying
// the same context reset and history recording a live search performs. Used
// when a cached search response is served.
func (s *Session) AdoptResults(query, location string, jobs []engine.Job) {
	s.mu.Lock()
	s.selectedID = ""
	s.jobs = append([]engine.Job(nil), jobs...)
	s.lastQuery = query
	s.lastLocation = location
	s.mu.Unlock()

	s.Tools.Reset("")
	s.Alerts.Reset()
	s.History.Record(query)
}

// Jobs returns a copy of the current result set.
func (s *Session) Jobs() []engine.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]engine.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// lookup finds id in the current results, then among saved jobs.
func (s *Session) lookup(id string) (engine.Job, bool) {
	s.mu.Lock()
	for _, j := range s.jobs {
		if j.ID == id {
			s.mu.Unlock()
			return j, true
		}
	}
	s.mu.Unlock()
	return s.Saved.Get(id)
}

// SelectJob makes id the active job. Changing jobs resets the tool runner so
// no analysis from the previous job lingers.
func (s *Session) SelectJob(id string) (engine.Job, error) {
	job, ok := s.lookup(id)
	if !ok {
		return engine.Job{}, ErrUnknownJob
	}

	s.mu.Lock()
	changed := s.selectedID != id
	s.selectedID = id
	s.mu.Unlock()

	if changed {
		s.Tools.Reset(id)
	}
	return job, nil
}

// RunTool runs kind against jobID, selecting it first if it is not already
// active. An explicit resume wins; otherwise the stored default profile is
// tried; an empty resume lets the prompt builder substitute its placeholder.
func (s *Session) RunTool(ctx context.Context, jobID string, kind ToolKind, resume string) (ToolStatus, error) {
	if !ValidToolKind(kind) {
		return ToolStatus{}, ErrUnknownToolKind
	}
	job, ok := s.lookup(jobID)
	if !ok {
		return ToolStatus{}, ErrUnknownJob
	}

	s.mu.Lock()
	if s.selectedID != jobID {
		s.selectedID = jobID
		s.mu.Unlock()
		s.Tools.Reset(jobID)
		s.mu.Lock()
	}
	rs := s.resumes
	s.mu.Unlock()

	if strings.TrimSpace(resume) == "" && rs != nil {
		stored, err := rs.Get(ctx, DefaultResumeProfile)
		if err != nil {
			slog.Warn("resume lookup failed", slog.Any("error", err))
		} else {
			resume = stored
		}
	}

	return s.Tools.Run(ctx, job, kind, resume), nil
}

// ToggleSave flips saved membership for jobID and reports the new state.
func (s *Session) ToggleSave(jobID string) (bool, error) {
	job, ok := s.lookup(jobID)
	if !ok {
		return false, ErrUnknownJob
	}
	return s.Saved.Toggle(job), nil
}

// Insights fetches market commentary on topic via the shared client.
func (s *Session) Insights(ctx context.Context, topic string) (InsightsResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return InsightsResult{}, ErrEmptyTopic
	}
	return FetchInsights(ctx, s.gen, topic), nil
}

// SetResume stores resume content under the named profile.
func (s *Session) SetResume(ctx context.Context, name, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyResume
	}
	s.mu.Lock()
	rs := s.resumes
	s.mu.Unlock()
	if rs == nil {
		return ErrNoResumeStore
	}
	if name == "" {
		name = DefaultResumeProfile
	}
	return rs.Set(ctx, name, content)
}

// GetResume returns the stored content for the named profile, "" when none.
func (s *Session) GetResume(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	rs := s.resumes
	s.mu.Unlock()
	if rs == nil {
		return "", ErrNoResumeStore
	}
	if name == "" {
		name = DefaultResumeProfile
	}
	return rs.Get(ctx, name)
}

// Subscribe registers email for alerts on the most recent search context.
func (s *Session) Subscribe(ctx context.Context, email string) (Subscription, error) {
	engine.IncrSubscribeRequests()
	s.mu.Lock()
	query, location := s.lastQuery, s.lastLocation
	s.mu.Unlock()
	return s.Alerts.Subscribe(ctx, email, query, location)
}
