package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/RaidanPro1/CPA-YePortal/internal/config"

	"github.com/pkg/errors"
)

type GeminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}

type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}

type GeminiCandidate struct {
	Content GeminiContent `json:"content"`
}

var errNoAPIKey = errors.New("gemini api key is not configured")

// Gemini calls the generateContent endpoint of the Gemini API.
type Gemini struct {
	cfg    config.AIConfig
	client *http.Client
	logger *slog.Logger
}

// NewGemini builds the client. A nil httpClient gets one limited by cfg.Timeout.
func NewGemini(cfg config.AIConfig, httpClient *http.Client, logger *slog.Logger) *Gemini {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gemini{cfg: cfg, client: httpClient, logger: logger}
}

func (g *Gemini) AnalyzeViolation(ctx context.Context, in ViolationInput) Result {
	text, err := g.generate(ctx, violationPrompt(in))
	if err != nil {
		g.logger.ErrorContext(ctx, "gemini analysis failed",
			slog.String("product", in.ProductName),
			slog.String("error", err.Error()),
		)
		return FallbackResult(UnavailableText)
	}

	if text == "" {
		return FallbackResult(EmptyResponseText)
	}

	return Ok(text)
}

func violationPrompt(in ViolationInput) string {
	return fmt.Sprintf(`You are an AI assistant for the Consumer Protection Association in Taiz, Yemen.
Analyze the following violation report:

Product: %s
Official Price: %d YR
Reported Price: %s YR
User Description: %s

Please provide a brief assessment (max 50 words) in Arabic.
1. Calculate the percentage increase if applicable.
2. Classify severity (Low, Medium, High).
3. Recommend an immediate action for the admin.

Format the output as plain text.`,
		in.ProductName, in.OfficialPrice, strconv.FormatFloat(in.ReportedPrice, 'f', -1, 64), in.Description)
}

// generate returns the concatenated candidate text, empty when the service produced none.
func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	if g.cfg.APIKey == "" {
		return "", errNoAPIKey
	}

	jsonData, err := json.Marshal(GeminiRequest{
		Contents: []GeminiContent{{Parts: []GeminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "encode request")
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(g.cfg.Endpoint, "/"), g.cfg.Model, url.QueryEscape(g.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", errors.Wrap(err, "decode response")
	}

	if len(geminiResp.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return strings.TrimSpace(sb.String()), nil
}
