// Package ai wraps the external generative-language endpoint that scores
// startup pitches. The adapter implements no scoring of its own: it formats a
// prompt, performs the HTTP call, and extracts a result from whatever text
// the model answers with.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com"
	defaultModel    = "gemini-2.0-flash"
	// The source never set a timeout on this call; 30s is the documented
	// enhancement so a stuck model cannot pin a request forever.
	defaultCallTimeout = 30 * time.Second
)

// Config captures the settings for the Gemini adapter.
type Config struct {
	APIKey   string
	Model    string
	Endpoint string // override for tests
	Timeout  time.Duration
}

// GeminiAnalyzer implements ports.PitchAnalyzer against the Gemini
// generateContent REST API.
type GeminiAnalyzer struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

func NewGeminiAnalyzer(cfg Config, log zerolog.Logger) *GeminiAnalyzer {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultCallTimeout
	}
	return &GeminiAnalyzer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// --- wire types ---

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze runs one pitch analysis. The external model is non-deterministic:
// two calls with identical input may yield different scores.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, pitch ports.PitchInput) (*ports.AnalysisResult, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(pitch)}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal analysis request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", a.cfg.Endpoint, a.cfg.Model, a.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Error().Err(err).Msg("gemini call failed")
		return nil, fmt.Errorf("call gemini: %v: %w", err, ports.ErrUpstream)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gemini response: %w", ports.ErrUpstream)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.log.Error().Int("status", resp.StatusCode).Msg("gemini returned non-2xx")
		return nil, fmt.Errorf("gemini status %d: %w", resp.StatusCode, ports.ErrUpstream)
	}

	var gr generateResponse
	text := string(raw)
	if err := json.Unmarshal(raw, &gr); err == nil &&
		len(gr.Candidates) > 0 && len(gr.Candidates[0].Content.Parts) > 0 {
		text = gr.Candidates[0].Content.Parts[0].Text
	}

	result, err := parseAnalysis(text)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// buildPrompt formats the pitch fields into the analysis instruction. The
// prompt demands strict JSON on the 0-100 scale; parseAnalysis still defends
// against the model ignoring either demand.
func buildPrompt(pitch ports.PitchInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this startup pitch for %q:\n", pitch.Name)
	fmt.Fprintf(&b, "Tagline: %s\n", orNotProvided(pitch.Tagline))
	fmt.Fprintf(&b, "Description: %s\n", orNotProvided(pitch.Description))
	fmt.Fprintf(&b, "Industry: %s\n", orNotProvided(pitch.Industry))
	fmt.Fprintf(&b, "Funding stage: %s\n", orNotProvided(pitch.FundingStage))
	if pitch.FundingMax > 0 {
		fmt.Fprintf(&b, "Funding sought: $%d - $%d\n", pitch.FundingMin, pitch.FundingMax)
	}
	b.WriteString(`
Provide analysis in STRICT JSON format with ALL of these REQUIRED fields:
{
  "clarity": number (0-100),
  "marketNeed": number (0-100),
  "teamStrength": number (0-100),
  "overallScore": number (0-100),
  "suggestion": string,
  "swotAnalysis": {
    "strengths": string[],
    "weaknesses": string[],
    "opportunities": string[],
    "threats": string[]
  }
}

The response MUST include all fields and be valid JSON.
`)
	return b.String()
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}
