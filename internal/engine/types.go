package engine

// --- Core job types ---

// Job is a single listing surfaced to the user. Records are immutable after
// creation; a new search replaces the whole list. Two records describe the
// same listing iff their IDs are equal.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url,omitempty"`
	SourceTitle string `json:"source_title,omitempty"`
	Salary      string `json:"salary,omitempty"`
	Type        string `json:"type,omitempty"`
	Level       string `json:"level,omitempty"`
}

// GroundingReference is a citation (URL + title) returned by the generative
// service substantiating its answer. Order is the relevance signal and is
// preserved end to end.
type GroundingReference struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// --- MCP tool inputs/outputs ---

type JobSearchInput struct {
	Query           string `json:"query" jsonschema:"Job title, keywords, or company"`
	Location        string `json:"location,omitempty" jsonschema:"City, state, or 'Remote' (default: Anywhere)"`
	JobType         string `json:"job_type,omitempty" jsonschema:"Filter: full-time, part-time, contract, internship (default: any)"`
	ExperienceLevel string `json:"experience_level,omitempty" jsonschema:"Filter: entry, mid, senior, executive (default: any)"`
	DatePosted      string `json:"date_posted,omitempty" jsonschema:"Filter: 24h, week, month (default: any)"`
}

type JobSearchOutput struct {
	Query    string `json:"query"`
	Location string `json:"location"`
	Jobs     []Job  `json:"jobs"`
	Total    int    `json:"total"`
	Degraded bool   `json:"degraded,omitempty"`
}

type SelectJobInput struct {
	JobID string `json:"job_id" jsonschema:"ID of the job to make active"`
}

type AIToolInput struct {
	JobID  string `json:"job_id" jsonschema:"ID of the job to analyze"`
	Resume string `json:"resume,omitempty" jsonschema:"Resume or profile text; falls back to the stored default profile"`
}

type JobSaveToggleInput struct {
	JobID string `json:"job_id" jsonschema:"ID of the job to save or unsave"`
}

type SavedJobsOutput struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
}

type SearchHistoryOutput struct {
	Queries []string `json:"queries"`
}

type CareerInsightsInput struct {
	Topic string `json:"topic" jsonschema:"Career topic, industry, or role to analyze"`
}

type JobAlertSubscribeInput struct {
	Email string `json:"email" jsonschema:"Email address to receive job alerts"`
}

type ResumeSetInput struct {
	Content string `json:"content" jsonschema:"Full resume text to store"`
	Name    string `json:"name,omitempty" jsonschema:"Profile name (default: default)"`
}

type ResumeGetInput struct {
	Name string `json:"name,omitempty" jsonschema:"Profile name (default: default)"`
}

type ResumeOutput struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Stored  bool   `json:"stored"`
}
