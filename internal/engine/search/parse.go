package search

import (
	"fmt"
	"strings"

	"github.com/careerai/engine/internal/engine"
	"github.com/google/uuid"
)

// Fallback field values used when a grounding reference carries no usable part.
const (
	fallbackCompany  = "Various Companies"
	fallbackLocation = "Remote/On-site"
)

// shortID returns a compact random id suffix. Random rather than wall-clock so
// rapid repeated parses cannot collide.
func shortID() string {
	return uuid.NewString()[:8]
}

// ParseResults maps grounding references to job records in reference order.
// References without a URI are dropped — they cannot be surfaced without a
// link. If nothing usable remains, FallbackJobs guarantees a non-empty list.
func ParseResults(refs []engine.GroundingReference, query, location string, f Filters) []engine.Job {
	loc := location
	if strings.TrimSpace(loc) == "" {
		loc = fallbackLocation
	}

	var out []engine.Job
	for i, ref := range refs {
		if ref.URI == "" {
			continue
		}
		title := query
		company := fallbackCompany
		parts := strings.Split(ref.Title, " - ")
		if len(parts) > 0 && parts[0] != "" {
			title = parts[0]
		}
		if len(parts) > 1 && parts[1] != "" {
			company = parts[1]
		}
		out = append(out, engine.Job{
			ID:          fmt.Sprintf("search-%d-%s", i, shortID()),
			Title:       title,
			Company:     company,
			Location:    loc,
			Description: fmt.Sprintf("Source: %s. Click for more details on the original listing site.", ref.Title),
			SourceURL:   ref.URI,
			SourceTitle: ref.Title,
		})
	}

	if len(out) == 0 {
		return FallbackJobs(query, location, f)
	}
	return out
}

// FallbackJobs deterministically synthesizes exactly three placeholder
// listings — a filter-matched role, a junior-tier role, and a senior
// manager-tier role — so a completed search never shows an empty list.
// Synthetic records carry no source URL.
func FallbackJobs(query, location string, f Filters) []engine.Job {
	f = f.Normalized()

	title := query
	if f.ExperienceLevel != LevelAny {
		level := string(f.ExperienceLevel)
		title = strings.ToUpper(level[:1]) + level[1:] + " " + query
	}
	if f.JobType != TypeAny {
		title += " (" + string(f.JobType) + ")"
	}

	pick := func(fallback string) string {
		if strings.TrimSpace(location) == "" {
			return fallback
		}
		return location
	}

	return []engine.Job{
		{
			ID:          "gen-1-" + shortID(),
			Title:       title,
			Company:     "InnovateX",
			Location:    pick("Global Remote"),
			Description: fmt.Sprintf("Exciting opportunity for a %s matching your specific filters.", query),
			Type:        string(f.JobType),
			Level:       string(f.ExperienceLevel),
		},
		{
			ID:          "gen-2-" + shortID(),
			Title:       "Junior " + query,
			Company:     "CloudBase Corp",
			Location:    pick("Hybrid"),
			Description: fmt.Sprintf("Perfect entry level role for someone passionate about %s.", query),
			Level:       string(LevelEntry),
		},
		{
			ID:          "gen-3-" + shortID(),
			Title:       "Senior " + query + " Manager",
			Company:     "Enterprise Solutions",
			Location:    pick("New York, NY"),
			Description: fmt.Sprintf("Strategic leadership role managing %s initiatives across the organization.", query),
			Level:       string(LevelSenior),
		},
	}
}
