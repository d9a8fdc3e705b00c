// Package search builds grounded search requests and converts the service's
// grounding references into job records.
package search

import "strings"

// JobType is the employment-type facet.
type JobType string

const (
	TypeAny        JobType = "any"
	TypeFullTime   JobType = "full-time"
	TypePartTime   JobType = "part-time"
	TypeContract   JobType = "contract"
	TypeInternship JobType = "internship"
)

// ExperienceLevel is the seniority facet.
type ExperienceLevel string

const (
	LevelAny       ExperienceLevel = "any"
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// DatePosted is the recency facet.
type DatePosted string

const (
	PostedAny   DatePosted = "any"
	Posted24h   DatePosted = "24h"
	PostedWeek  DatePosted = "week"
	PostedMonth DatePosted = "month"
)

// Filters are the advanced search facets. The zero value means "any" for
// every field. Pure value; no identity.
type Filters struct {
	JobType         JobType
	ExperienceLevel ExperienceLevel
	DatePosted      DatePosted
}

// Normalized maps empty fields to their "any" default.
func (f Filters) Normalized() Filters {
	if f.JobType == "" {
		f.JobType = TypeAny
	}
	if f.ExperienceLevel == "" {
		f.ExperienceLevel = LevelAny
	}
	if f.DatePosted == "" {
		f.DatePosted = PostedAny
	}
	return f
}

// Active reports whether any facet is set to something other than "any".
func (f Filters) Active() bool {
	f = f.Normalized()
	return f.JobType != TypeAny || f.ExperienceLevel != LevelAny || f.DatePosted != PostedAny
}

// datePostedPhrase maps the recency facet to a human phrase for the prompt.
func datePostedPhrase(d DatePosted) string {
	switch d {
	case Posted24h:
		return "last 24 hours"
	case PostedWeek:
		return "last week"
	case PostedMonth:
		return "last month"
	}
	return ""
}

// Clause renders the active facets as "Label: value" fragments joined with
// ", ". Facets at "any" are omitted entirely; all-any renders the empty string.
func (f Filters) Clause() string {
	f = f.Normalized()
	var parts []string
	if f.JobType != TypeAny {
		parts = append(parts, "Type: "+string(f.JobType))
	}
	if f.ExperienceLevel != LevelAny {
		parts = append(parts, "Experience Level: "+string(f.ExperienceLevel))
	}
	if f.DatePosted != PostedAny {
		parts = append(parts, "Posted: "+datePostedPhrase(f.DatePosted))
	}
	return strings.Join(parts, ", ")
}
