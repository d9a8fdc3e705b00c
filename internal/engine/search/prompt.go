package search

import (
	"fmt"
	"strings"
)

// DefaultLocation is used when the caller supplies no location.
const DefaultLocation = "Anywhere"

const searchPromptTemplate = `Search for real current job openings for: %q in %q.%s
Provide a diverse list of jobs including Title, Company, Location, and a brief Description.
Focus on providing high-quality results from recent listings.`

// BuildPrompt renders the outbound search prompt. The caller must reject an
// empty query before calling; an empty location falls back to "Anywhere".
func BuildPrompt(query, location string, f Filters) string {
	if strings.TrimSpace(location) == "" {
		location = DefaultLocation
	}
	var filterPart string
	if clause := f.Clause(); clause != "" {
		filterPart = fmt.Sprintf(" Apply these filters: %s.", clause)
	}
	return fmt.Sprintf(searchPromptTemplate, query, location, filterPart)
}
