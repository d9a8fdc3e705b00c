package search

import "github.com/careerai/engine/internal/engine"

// SeedJobs returns the sample listings shown before the first search.
func SeedJobs() []engine.Job {
	return []engine.Job{
		{
			ID:          "1",
			Title:       "Senior Frontend Engineer",
			Company:     "TechFlow Systems",
			Location:    "San Francisco, CA (Remote)",
			Description: "We are looking for an expert in React, TypeScript and modern CSS frameworks. You will lead our design system effort and build high-performance web applications.",
			Salary:      "160k - 210k",
		},
		{
			ID:          "2",
			Title:       "Product Designer",
			Company:     "Nova Creative",
			Location:    "New York, NY",
			Description: "Join a world-class creative team building the next generation of e-commerce experiences. Expertise in Figma and prototyping is essential.",
			Salary:      "120k - 150k",
		},
		{
			ID:          "3",
			Title:       "Machine Learning Researcher",
			Company:     "Aether AI",
			Location:    "London, UK",
			Description: "Working on cutting edge LLM research. PhD in Computer Science or related field required. Experience with PyTorch or JAX.",
			Salary:      "140k - 190k",
		},
	}
}
