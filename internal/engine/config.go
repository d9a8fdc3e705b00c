package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	GeminiAPIKey         string
	GeminiAPIBase        string
	GeminiModel          string
	GeminiRPS            float64 // client-side rate limit, requests per second
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	DatabaseURL          string
	StateDBPath          string
	HTTPClient           *http.Client
}

var cfg Config

// Cfg exposes the engine configuration after Init; NewGeminiClientFromConfig
// and friends read their defaults from it. Always points to the current cfg
// value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
