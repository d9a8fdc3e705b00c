package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// GenerateRequest is one call into the generative text/search service.
// Grounding enables Google Search so the response carries grounding
// references for the answer.
type GenerateRequest struct {
	Prompt    string
	Grounding bool
}

// GenerateResult is the service response. Text is empty (not an error) when
// the model returned no text part. References preserve response order.
type GenerateResult struct {
	Text       string
	References []GroundingReference
}

// Generator is the boundary to the generative service. The session depends on
// this interface so tests can inject a fake.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)
}

// GeminiClient talks to the Gemini generateContent REST API. Each Generate is
// attempted exactly once; retries are the caller's decision, and none of the
// engine's user actions retry.
type GeminiClient struct {
	base    string
	apiKey  string
	model   string
	http    *http.Client
	limiter *rate.Limiter
}

// DefaultGeminiAPIBase is the public Generative Language endpoint.
const DefaultGeminiAPIBase = "https://generativelanguage.googleapis.com"

// NewGeminiClientFromConfig builds a client from the engine configuration.
// Call after Init.
func NewGeminiClientFromConfig() *GeminiClient {
	return NewGeminiClient(Cfg.GeminiAPIBase, Cfg.GeminiAPIKey, Cfg.GeminiModel, Cfg.GeminiRPS, Cfg.HTTPClient)
}

// NewGeminiClient builds a client for the given endpoint, key, and model.
// rps <= 0 disables the client-side rate limit.
func NewGeminiClient(base, apiKey, model string, rps float64, hc *http.Client) *GeminiClient {
	if base == "" {
		base = DefaultGeminiAPIBase
	}
	if hc == nil {
		hc = &http.Client{Timeout: 60 * time.Second}
	}
	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &GeminiClient{
		base:    strings.TrimRight(base, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    hc,
		limiter: limiter,
	}
}

// --- Wire format ---

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiTool struct {
	GoogleSearch struct{} `json:"google_search"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
	Tools    []geminiTool    `json:"tools,omitempty"`
}

type geminiWeb struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type geminiChunk struct {
	Web *geminiWeb `json:"web"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []geminiChunk `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// Generate sends the prompt to the model and decodes text plus grounding
// references. A response without text is returned with Text == "".
func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	metrics.LLMCalls.Add(1)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			metrics.LLMErrors.Add(1)
			return GenerateResult{}, err
		}
	}

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Prompt}}}},
	}
	if req.Grounding {
		body.Tools = []geminiTool{{}}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return GenerateResult{}, fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.base, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		metrics.LLMErrors.Add(1)
		return GenerateResult{}, fmt.Errorf("gemini: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return GenerateResult{}, fmt.Errorf("gemini: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.LLMErrors.Add(1)
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return GenerateResult{}, fmt.Errorf("gemini: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		metrics.LLMErrors.Add(1)
		return GenerateResult{}, fmt.Errorf("gemini: decode response: %w", err)
	}

	var result GenerateResult
	if len(decoded.Candidates) > 0 {
		cand := decoded.Candidates[0]
		var sb strings.Builder
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		result.Text = sb.String()

		for _, ch := range cand.GroundingMetadata.GroundingChunks {
			if ch.Web == nil {
				continue
			}
			result.References = append(result.References, GroundingReference{
				URI:   ch.Web.URI,
				Title: ch.Web.Title,
			})
		}
	}
	return result, nil
}
