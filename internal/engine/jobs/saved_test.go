package jobs

import (
	"path/filepath"
	"testing"

	"github.com/careerai/engine/internal/engine"
)

func job(id, title string) engine.Job {
	return engine.Job{ID: id, Title: title, Company: "Acme", Location: "Remote"}
}

func TestSavedJobsToggle(t *testing.T) {
	s := NewSavedJobs(NewMemKV())

	if got := s.Toggle(job("a", "First")); !got {
		t.Fatal("first toggle should save")
	}
	if !s.IsSaved("a") {
		t.Fatal("job not saved")
	}
	if got := s.Toggle(job("a", "First")); got {
		t.Fatal("second toggle should unsave")
	}
	if s.IsSaved("a") || s.Len() != 0 {
		t.Fatal("double toggle must restore the original set")
	}
}

func TestSavedJobsMostRecentFirst(t *testing.T) {
	s := NewSavedJobs(NewMemKV())
	s.Toggle(job("a", "First"))
	s.Toggle(job("b", "Second"))
	s.Toggle(job("c", "Third"))

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("len = %d", len(list))
	}
	for i, want := range []string{"c", "b", "a"} {
		if list[i].ID != want {
			t.Errorf("list[%d].ID = %q, want %q", i, list[i].ID, want)
		}
	}
}

func TestSavedJobsPersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	kv, err := OpenKV(path)
	if err != nil {
		t.Fatalf("OpenKV: %v", err)
	}

	s := NewSavedJobs(kv)
	s.Toggle(job("a", "First"))
	s.Toggle(job("b", "Second"))
	s.Toggle(job("a", "First")) // unsave again

	reloaded := NewSavedJobs(kv)
	if reloaded.Len() != 1 {
		t.Fatalf("reloaded len = %d, want 1", reloaded.Len())
	}
	if got, ok := reloaded.Get("b"); !ok || got.Title != "Second" {
		t.Errorf("reloaded job = %+v, ok = %v", got, ok)
	}
	if reloaded.IsSaved("a") {
		t.Error("unsaved job survived reload")
	}
}

func TestSavedJobsCorruptStateStartsEmpty(t *testing.T) {
	kv := NewMemKV()
	if err := kv.Set(savedJobsKey, "{not json"); err != nil {
		t.Fatal(err)
	}
	s := NewSavedJobs(kv)
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0 on corrupt state", s.Len())
	}
	// The store still works after degrading.
	s.Toggle(job("a", "First"))
	if !s.IsSaved("a") {
		t.Error("toggle after corrupt load failed")
	}
}

func TestSavedJobsListReturnsCopy(t *testing.T) {
	s := NewSavedJobs(NewMemKV())
	s.Toggle(job("a", "First"))

	list := s.List()
	list[0].Title = "mutated"
	if got, _ := s.Get("a"); got.Title != "First" {
		t.Error("List must not expose internal state")
	}
}
