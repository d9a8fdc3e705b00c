package search

import (
	"strings"
	"testing"
)

func TestFiltersClause(t *testing.T) {
	tests := []struct {
		name string
		f    Filters
		want string
	}{
		{
			name: "all any",
			f:    Filters{},
			want: "",
		},
		{
			name: "explicit any",
			f:    Filters{JobType: TypeAny, ExperienceLevel: LevelAny, DatePosted: PostedAny},
			want: "",
		},
		{
			name: "job type only",
			f:    Filters{JobType: TypeContract},
			want: "Type: contract",
		},
		{
			name: "experience only",
			f:    Filters{ExperienceLevel: LevelSenior},
			want: "Experience Level: senior",
		},
		{
			name: "date 24h phrase",
			f:    Filters{DatePosted: Posted24h},
			want: "Posted: last 24 hours",
		},
		{
			name: "date week phrase",
			f:    Filters{DatePosted: PostedWeek},
			want: "Posted: last week",
		},
		{
			name: "date month phrase",
			f:    Filters{DatePosted: PostedMonth},
			want: "Posted: last month",
		},
		{
			name: "all three",
			f:    Filters{JobType: TypeFullTime, ExperienceLevel: LevelEntry, DatePosted: PostedMonth},
			want: "Type: full-time, Experience Level: entry, Posted: last month",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Clause(); got != tt.want {
				t.Errorf("Clause() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFiltersClause_FragmentCount(t *testing.T) {
	// k active facets produce exactly k comma-joined fragments.
	for _, tt := range []struct {
		f Filters
		k int
	}{
		{Filters{}, 0},
		{Filters{JobType: TypePartTime}, 1},
		{Filters{JobType: TypePartTime, DatePosted: PostedWeek}, 2},
		{Filters{JobType: TypeInternship, ExperienceLevel: LevelExecutive, DatePosted: Posted24h}, 3},
	} {
		clause := tt.f.Clause()
		got := 0
		if clause != "" {
			got = len(strings.Split(clause, ", "))
		}
		if got != tt.k {
			t.Errorf("Clause(%+v) = %q: %d fragments, want %d", tt.f, clause, got, tt.k)
		}
	}
}

func TestFiltersActive(t *testing.T) {
	if (Filters{}).Active() {
		t.Error("zero filters reported active")
	}
	if !(Filters{DatePosted: PostedWeek}).Active() {
		t.Error("set facet not reported active")
	}
}
