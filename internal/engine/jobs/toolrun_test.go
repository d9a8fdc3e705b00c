package jobs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/careerai/engine/internal/engine"
	"github.com/stretchr/testify/require"
)

// fakeGen scripts Generate responses for tests.
type fakeGen struct {
	mu    sync.Mutex
	calls []engine.GenerateRequest
	fn    func(ctx context.Context, req engine.GenerateRequest) (engine.GenerateResult, error)
}

func (g *fakeGen) Generate(ctx context.Context, req engine.GenerateRequest) (engine.GenerateResult, error) {
	g.mu.Lock()
	g.calls = append(g.calls, req)
	fn := g.fn
	g.mu.Unlock()
	if fn == nil {
		return engine.GenerateResult{Text: "ok"}, nil
	}
	return fn(ctx, req)
}

func (g *fakeGen) lastPrompt() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.calls) == 0 {
		return ""
	}
	return g.calls[len(g.calls)-1].Prompt
}

var testJob = engine.Job{
	ID:          "j1",
	Title:       "Staff Engineer",
	Company:     "Acme",
	Description: "Build things.",
}

func TestToolRunnerSuccess(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, _ engine.GenerateRequest) (engine.GenerateResult, error) {
		return engine.GenerateResult{Text: "## Match Score: 85%"}, nil
	}}
	r := NewToolRunner(gen)

	st := r.Run(context.Background(), testJob, ToolFit, "my resume")
	require.Equal(t, StateSucceeded, st.State)
	require.Equal(t, "## Match Score: 85%", st.Text)
	require.Equal(t, "j1", st.JobID)
	require.Equal(t, ToolFit, st.Kind)
	require.Equal(t, st, r.Status())

	// Grounding is never requested for per-job tools.
	require.False(t, gen.calls[0].Grounding)
}

func TestToolRunnerFailure(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, _ engine.GenerateRequest) (engine.GenerateResult, error) {
		return engine.GenerateResult{}, errors.New("boom: secret internals")
	}}
	r := NewToolRunner(gen)

	st := r.Run(context.Background(), testJob, ToolLetter, "")
	require.Equal(t, StateFailed, st.State)
	require.Equal(t, toolFailureMessage, st.Message)
	require.Empty(t, st.Text)
	require.NotContains(t, st.Message, "secret", "raw service errors must not leak")
}

func TestToolRunnerEmptyText(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, _ engine.GenerateRequest) (engine.GenerateResult, error) {
		return engine.GenerateResult{}, nil
	}}
	r := NewToolRunner(gen)

	st := r.Run(context.Background(), testJob, ToolInterview, "")
	require.Equal(t, StateSucceeded, st.State)
	require.Equal(t, emptyToolText, st.Text)
}

func TestToolRunnerLatestWins(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	gen := &fakeGen{}
	gen.fn = func(_ context.Context, req engine.GenerateRequest) (engine.GenerateResult, error) {
		if strings.Contains(req.Prompt, "fits the job") { // fit prompt
			close(started)
			<-release
			return engine.GenerateResult{Text: "fit analysis"}, nil
		}
		return engine.GenerateResult{Text: "cover letter"}, nil
	}
	r := NewToolRunner(gen)

	done := make(chan ToolStatus)
	go func() {
		done <- r.Run(context.Background(), testJob, ToolFit, "")
	}()
	<-started

	st := r.Run(context.Background(), testJob, ToolLetter, "")
	require.Equal(t, "cover letter", st.Text)

	close(release)
	fit := <-done

	// The fit invocation still sees its own outcome, but the stored state
	// belongs to the newer letter invocation.
	require.Equal(t, "fit analysis", fit.Text)
	require.Equal(t, ToolLetter, r.Status().Kind)
	require.Equal(t, "cover letter", r.Status().Text)
}

func TestToolRunnerResetInvalidatesInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	gen := &fakeGen{fn: func(_ context.Context, _ engine.GenerateRequest) (engine.GenerateResult, error) {
		close(started)
		<-release
		return engine.GenerateResult{Text: "late"}, nil
	}}
	r := NewToolRunner(gen)

	done := make(chan ToolStatus)
	go func() {
		done <- r.Run(context.Background(), testJob, ToolFit, "")
	}()
	<-started
	r.Reset("j2")
	close(release)
	<-done

	st := r.Status()
	require.Equal(t, StateIdle, st.State)
	require.Equal(t, "j2", st.JobID)
	require.Empty(t, st.Text)
}

func TestBuildToolPromptPlaceholders(t *testing.T) {
	tests := []struct {
		name   string
		kind   ToolKind
		resume string
		want   string
		absent string
	}{
		{"fit without resume", ToolFit, "", fitResumePlaceholder, ""},
		{"fit with resume", ToolFit, "10 years of Go", "10 years of Go", fitResumePlaceholder},
		{"letter without resume", ToolLetter, "", letterResumePlaceholder, ""},
		{"interview ignores resume", ToolInterview, "10 years of Go", "Pro-tip", "10 years of Go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildToolPrompt(testJob, tt.kind, tt.resume)
			if !strings.Contains(p, tt.want) {
				t.Errorf("prompt missing %q:\n%s", tt.want, p)
			}
			if tt.absent != "" && strings.Contains(p, tt.absent) {
				t.Errorf("prompt should not contain %q:\n%s", tt.absent, p)
			}
		})
	}
}

func TestValidToolKind(t *testing.T) {
	for _, k := range []ToolKind{ToolFit, ToolLetter, ToolInterview} {
		if !ValidToolKind(k) {
			t.Errorf("ValidToolKind(%q) = false", k)
		}
	}
	if ValidToolKind("resume") {
		t.Error("ValidToolKind(\"resume\") = true")
	}
}
