package jobs

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/careerai/engine/internal/engine"
)

// savedJobsKey is the fixed key for the saved-jobs payload. Kept for payload
// compatibility with earlier clients.
const savedJobsKey = "career_ai_saved_jobs"

// SavedJobs is the toggle-set over job ids, ordered most-recently-saved
// first. Every mutation writes the full set to the persisted store.
type SavedJobs struct {
	mu   sync.Mutex
	kv   KV
	jobs []engine.Job
}

// NewSavedJobs loads the persisted set. A decode failure degrades to an
// empty set and logs a warning; it never fails construction.
func NewSavedJobs(kv KV) *SavedJobs {
	s := &SavedJobs{kv: kv}

	raw, ok, err := kv.Get(savedJobsKey)
	if err != nil {
		slog.Warn("saved jobs: load failed, starting empty", slog.Any("error", err))
		return s
	}
	if !ok {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s.jobs); err != nil {
		slog.Warn("saved jobs: corrupt payload, starting empty", slog.Any("error", err))
		s.jobs = nil
	}
	return s
}

// Toggle removes the job when its id is already saved, otherwise prepends it.
// Returns whether the job is saved after the call.
func (s *SavedJobs) Toggle(job engine.Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := false
	idx := -1
	for i, j := range s.jobs {
		if j.ID == job.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.jobs = append(s.jobs[:idx], s.jobs[idx+1:]...)
	} else {
		s.jobs = append([]engine.Job{job}, s.jobs...)
		saved = true
	}

	s.persistLocked()
	return saved
}

// IsSaved reports membership by job id.
func (s *SavedJobs) IsSaved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.ID == id {
			return true
		}
	}
	return false
}

// Get returns the saved job with the given id.
func (s *SavedJobs) Get(id string) (engine.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return engine.Job{}, false
}

// List returns a copy of the set, most-recently-saved first.
func (s *SavedJobs) List() []engine.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]engine.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Len returns the number of saved jobs.
func (s *SavedJobs) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// persistLocked writes the full set. A write failure loses durability, not
// the in-memory state, so it is logged and swallowed.
func (s *SavedJobs) persistLocked() {
	data, err := json.Marshal(s.jobs)
	if err != nil {
		slog.Warn("saved jobs: marshal failed", slog.Any("error", err))
		return
	}
	if err := s.kv.Set(savedJobsKey, string(data)); err != nil {
		slog.Warn("saved jobs: persist failed", slog.Any("error", err))
	}
}
