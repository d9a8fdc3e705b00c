package search

import (
	"strings"
	"testing"

	"github.com/careerai/engine/internal/engine"
)

func TestParseResults_TitleSplit(t *testing.T) {
	refs := []engine.GroundingReference{
		{URI: "https://a", Title: "Eng - Acme"},
		{URI: "", Title: "X"},
	}
	jobs := ParseResults(refs, "developer", "", Filters{})
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job (empty-uri ref dropped), got %d", len(jobs))
	}
	j := jobs[0]
	if j.Title != "Eng" {
		t.Errorf("title = %q, want Eng", j.Title)
	}
	if j.Company != "Acme" {
		t.Errorf("company = %q, want Acme", j.Company)
	}
	if j.Location != "Remote/On-site" {
		t.Errorf("empty location must fall back, got %q", j.Location)
	}
	if j.SourceURL != "https://a" || j.SourceTitle != "Eng - Acme" {
		t.Errorf("source fields not carried: %+v", j)
	}
	if !strings.Contains(j.Description, "Eng - Acme") {
		t.Errorf("description must reference the source title: %q", j.Description)
	}
}

func TestParseResults_Fallbacks(t *testing.T) {
	refs := []engine.GroundingReference{
		{URI: "https://a", Title: ""},            // no title at all
		{URI: "https://b", Title: "Solo Title"},  // no separator
		{URI: "https://c", Title: " - OnlyCo"},   // empty first segment
	}
	jobs := ParseResults(refs, "designer", "Austin", Filters{})
	if len(jobs) != 3 {
		t.Fatalf("got %d jobs", len(jobs))
	}
	if jobs[0].Title != "designer" || jobs[0].Company != "Various Companies" {
		t.Errorf("empty title fallbacks wrong: %+v", jobs[0])
	}
	if jobs[1].Title != "Solo Title" || jobs[1].Company != "Various Companies" {
		t.Errorf("missing company fallback wrong: %+v", jobs[1])
	}
	if jobs[2].Title != "designer" || jobs[2].Company != "OnlyCo" {
		t.Errorf("empty first segment fallback wrong: %+v", jobs[2])
	}
	for _, j := range jobs {
		if j.Location != "Austin" {
			t.Errorf("location = %q, want Austin", j.Location)
		}
	}
}

func TestParseResults_OrderPreserved(t *testing.T) {
	refs := []engine.GroundingReference{
		{URI: "https://1", Title: "First - A"},
		{URI: "https://2", Title: "Second - B"},
		{URI: "https://3", Title: "Third - C"},
	}
	jobs := ParseResults(refs, "q", "", Filters{})
	want := []string{"First", "Second", "Third"}
	for i, w := range want {
		if jobs[i].Title != w {
			t.Errorf("jobs[%d].Title = %q, want %q", i, jobs[i].Title, w)
		}
	}
}

func TestParseResults_UniqueIDs(t *testing.T) {
	refs := []engine.GroundingReference{
		{URI: "https://1", Title: "A - X"},
		{URI: "https://2", Title: "A - X"},
		{URI: "https://3", Title: "A - X"},
	}
	seen := map[string]bool{}
	// Two back-to-back parse calls must not collide either.
	for range 2 {
		for _, j := range ParseResults(refs, "q", "", Filters{}) {
			if seen[j.ID] {
				t.Fatalf("duplicate id %s", j.ID)
			}
			seen[j.ID] = true
		}
	}
}

func TestParseResults_EmptyRefsYieldFallback(t *testing.T) {
	jobs := ParseResults(nil, "data engineer", "", Filters{})
	if len(jobs) != 3 {
		t.Fatalf("expected exactly 3 fallback jobs, got %d", len(jobs))
	}
	ids := map[string]bool{}
	for _, j := range jobs {
		if j.SourceURL != "" {
			t.Errorf("fallback job %s carries a source URL", j.ID)
		}
		if ids[j.ID] {
			t.Errorf("duplicate fallback id %s", j.ID)
		}
		ids[j.ID] = true
	}
}

func TestFallbackJobs_FilterShapesTitle(t *testing.T) {
	jobs := FallbackJobs("analyst", "", Filters{ExperienceLevel: LevelSenior, JobType: TypeContract})
	if jobs[0].Title != "Senior analyst (contract)" {
		t.Errorf("filtered title = %q", jobs[0].Title)
	}
	if jobs[1].Title != "Junior analyst" {
		t.Errorf("junior tier title = %q", jobs[1].Title)
	}
	if jobs[2].Title != "Senior analyst Manager" {
		t.Errorf("manager tier title = %q", jobs[2].Title)
	}

	// No filters: plain query title, tier locations kick in.
	jobs = FallbackJobs("analyst", "", Filters{})
	if jobs[0].Title != "analyst" {
		t.Errorf("unfiltered title = %q", jobs[0].Title)
	}
	if jobs[0].Location != "Global Remote" || jobs[1].Location != "Hybrid" || jobs[2].Location != "New York, NY" {
		t.Errorf("tier locations wrong: %q %q %q", jobs[0].Location, jobs[1].Location, jobs[2].Location)
	}

	// User location wins over tier locations.
	jobs = FallbackJobs("analyst", "Lisbon", Filters{})
	for i, j := range jobs {
		if j.Location != "Lisbon" {
			t.Errorf("jobs[%d].Location = %q, want Lisbon", i, j.Location)
		}
	}
}
