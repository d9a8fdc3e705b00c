// careerai engine — grounded job search and career-tools MCP server.
//
// Exposes job search backed by a web-grounded generative service, per-job AI
// analysis (fit, cover letter, interview prep), saved jobs, search history,
// market insights, alert subscription, and stored resume profiles.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/careerai/engine/internal/engine"
	"github.com/careerai/engine/internal/engine/jobs"
	"github.com/careerai/engine/internal/jobserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	session := initEngine()

	slog.Info("starting careerai-engine",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "careerai-engine",
		Version: version,
	}, nil)

	jobserver.RegisterTools(server, session)
	slog.Info("tools registered", slog.Int("count", 12))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "careerai-engine",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() *jobs.Session {
	c := engine.Config{
		GeminiAPIKey:         env.Str("GEMINI_API_KEY", ""),
		GeminiAPIBase:        env.Str("GEMINI_API_BASE", engine.DefaultGeminiAPIBase),
		GeminiModel:          env.Str("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiRPS:            env.Float("GEMINI_RPS", 1),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		StateDBPath:          env.Str("STATE_DB_PATH", defaultStateDBPath()),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	gen := engine.NewGeminiClientFromConfig()

	kv, err := jobs.OpenKV(c.StateDBPath)
	if err != nil {
		slog.Warn("state db init failed, saved jobs will not persist", slog.Any("error", err))
		kv = jobs.NewMemKV()
	}

	session := jobs.NewSession(gen, kv)

	// Resume profiles (PostgreSQL, optional)
	if c.DatabaseURL != "" {
		rs, err := jobs.ConnectResumeStore(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("resume store init failed", slog.Any("error", err))
		} else {
			session.SetResumeStore(rs)
			slog.Info("resume store initialized")
		}
	}

	return session
}

func defaultStateDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "careerai-state.db"
	}
	return filepath.Join(home, ".careerai", "state.db")
}
