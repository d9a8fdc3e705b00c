package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/careerai/engine/internal/engine"
)

// ToolKind selects one of the per-job AI actions.
type ToolKind string

const (
	ToolFit       ToolKind = "fit"
	ToolLetter    ToolKind = "letter"
	ToolInterview ToolKind = "interview"
)

// ValidToolKind checks a kind string.
func ValidToolKind(k ToolKind) bool {
	switch k {
	case ToolFit, ToolLetter, ToolInterview:
		return true
	}
	return false
}

// ToolState is the orchestrator state for the current (job, kind) pair.
type ToolState string

const (
	StateIdle      ToolState = "idle"
	StateLoading   ToolState = "loading"
	StateSucceeded ToolState = "succeeded"
	StateFailed    ToolState = "failed"
)

// ToolStatus is the orchestrator's view model: which job and kind the result
// belongs to, the tagged state, and the text or failure message.
type ToolStatus struct {
	JobID   string    `json:"job_id,omitempty"`
	Kind    ToolKind  `json:"kind,omitempty"`
	State   ToolState `json:"state"`
	Text    string    `json:"text,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Fixed user-facing strings. Raw service errors never reach the result field.
const (
	toolFailureMessage = "Error: Could not complete AI analysis."
	emptyToolText      = "Failed to generate AI insights."
)

// Resume placeholders, substituted so a tool never sees an empty profile.
const (
	fitResumePlaceholder    = "No resume provided. Please simulate a fit analysis based on typical requirements for this title."
	letterResumePlaceholder = "Professional with relevant experience in this field."
)

const fitPrompt = `Analyze how well this user fits the job based on their resume.
Job: %s at %s.
Job Description: %s.
User Resume: %s

Provide a Match Score (0-100%%), Key Strengths, and Missing Skills or Improvement Areas. Use Markdown.`

const letterPrompt = `Write a professional, persuasive, and personalized cover letter for:
Job: %s at %s.
Job Description: %s.
User Profile: %s

The tone should be enthusiastic and confident.`

const interviewPrompt = `Prepare the user for an interview at %s for the role of %s.
Based on the description: %s.

Provide:
1. 5 specific interview questions they might face.
2. Recommended answers/talking points for each.
3. A "Pro-tip" for this specific company or industry.`

// buildToolPrompt renders the fixed per-kind template. The interview template
// takes no resume; the others substitute a placeholder when resume is empty.
func buildToolPrompt(job engine.Job, kind ToolKind, resume string) string {
	desc := engine.TruncateRunes(job.Description, 3000, "")
	resume = engine.TruncateRunes(strings.TrimSpace(resume), 4000, "")

	switch kind {
	case ToolFit:
		if resume == "" {
			resume = fitResumePlaceholder
		}
		return fmt.Sprintf(fitPrompt, job.Title, job.Company, desc, resume)
	case ToolLetter:
		if resume == "" {
			resume = letterResumePlaceholder
		}
		return fmt.Sprintf(letterPrompt, job.Title, job.Company, desc, resume)
	default:
		return fmt.Sprintf(interviewPrompt, job.Company, job.Title, desc)
	}
}

// ToolRunner runs per-job AI tools as a single-flight, latest-wins state
// machine: Idle → Loading → Succeeded|Failed. Each invocation gets a
// monotonically increasing sequence number; a completion whose sequence is
// no longer the latest issued is discarded instead of overwriting a newer
// invocation's state.
type ToolRunner struct {
	gen engine.Generator

	mu     sync.Mutex
	seq    uint64
	status ToolStatus
}

// NewToolRunner returns an idle runner bound to the generative service.
func NewToolRunner(gen engine.Generator) *ToolRunner {
	return &ToolRunner{gen: gen, status: ToolStatus{State: StateIdle}}
}

// Status returns the current view-model snapshot.
func (r *ToolRunner) Status() ToolStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Reset returns the runner to Idle for a newly selected job. Bumping the
// sequence makes any in-flight invocation stale.
func (r *ToolRunner) Reset(jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.status = ToolStatus{JobID: jobID, State: StateIdle}
}

// Run invokes kind for job and blocks until this invocation completes. The
// returned status is this invocation's outcome; the stored status is only
// updated when no newer invocation was issued in the meantime. The prior
// result is cleared the moment Loading begins, so nothing stale is displayed.
func (r *ToolRunner) Run(ctx context.Context, job engine.Job, kind ToolKind, resume string) ToolStatus {
	engine.IncrToolRequests()

	r.mu.Lock()
	r.seq++
	my := r.seq
	r.status = ToolStatus{JobID: job.ID, Kind: kind, State: StateLoading}
	r.mu.Unlock()

	outcome := ToolStatus{JobID: job.ID, Kind: kind}

	res, err := r.gen.Generate(ctx, engine.GenerateRequest{
		Prompt: buildToolPrompt(job, kind, resume),
	})
	switch {
	case err != nil:
		slog.Warn("ai tool failed", slog.String("job_id", job.ID), slog.String("kind", string(kind)), slog.Any("error", err))
		outcome.State = StateFailed
		outcome.Message = toolFailureMessage
	case res.Text == "":
		outcome.State = StateSucceeded
		outcome.Text = emptyToolText
	default:
		outcome.State = StateSucceeded
		outcome.Text = res.Text
	}

	r.mu.Lock()
	if my == r.seq {
		r.status = outcome
	} else {
		slog.Debug("ai tool result discarded as stale", slog.String("job_id", job.ID), slog.String("kind", string(kind)))
	}
	r.mu.Unlock()

	return outcome
}
