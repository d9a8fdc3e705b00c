package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests    atomic.Int64
	ToolRequests      atomic.Int64
	InsightRequests   atomic.Int64
	SubscribeRequests atomic.Int64
	LLMCalls          atomic.Int64
	LLMErrors         atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests":    metrics.SearchRequests.Load(),
		"tool_requests":      metrics.ToolRequests.Load(),
		"insight_requests":   metrics.InsightRequests.Load(),
		"subscribe_requests": metrics.SubscribeRequests.Load(),
		"llm_calls":          metrics.LLMCalls.Load(),
		"llm_errors":         metrics.LLMErrors.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"search_requests", "tool_requests", "insight_requests", "subscribe_requests",
		"llm_calls", "llm_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the jobs/ and search/ sub-packages.
func IncrSearchRequests()    { metrics.SearchRequests.Add(1) }
func IncrToolRequests()      { metrics.ToolRequests.Add(1) }
func IncrInsightRequests()   { metrics.InsightRequests.Add(1) }
func IncrSubscribeRequests() { metrics.SubscribeRequests.Add(1) }
