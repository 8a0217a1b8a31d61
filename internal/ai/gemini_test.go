package ai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RaidanPro1/CPA-YePortal/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGemini(endpoint string) *Gemini {
	return NewGemini(config.AIConfig{
		APIKey:   "test-key",
		Model:    "gemini-2.5-flash",
		Endpoint: endpoint,
		Timeout:  2 * time.Second,
	}, nil, quietLogger())
}

var milk = ViolationInput{
	ProductName:   "Premium Milk 1L",
	ReportedPrice: 1000,
	OfficialPrice: 850,
	Description:   "Sold above the list price",
}

func TestGemini_ReturnsServiceText(t *testing.T) {
	var got GeminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(GeminiResponse{Candidates: []GeminiCandidate{{
			Content: GeminiContent{Parts: []GeminiPart{{Text: " زيادة 17.6%، "}, {Text: "خطورة متوسطة "}}},
		}}})
	}))
	defer srv.Close()

	res := newTestGemini(srv.URL).AnalyzeViolation(context.Background(), milk)

	assert.False(t, res.Fallback)
	assert.Equal(t, "زيادة 17.6%، خطورة متوسطة", res.Text)

	require.Len(t, got.Contents, 1)
	prompt := got.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Product: Premium Milk 1L")
	assert.Contains(t, prompt, "Official Price: 850 YR")
	assert.Contains(t, prompt, "Reported Price: 1000 YR")
	assert.Contains(t, prompt, "User Description: Sold above the list price")
}

func TestGemini_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
			want: EmptyResponseText,
		},
		{
			name: "blank text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`))
			},
			want: EmptyResponseText,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota", http.StatusTooManyRequests)
			},
			want: UnavailableText,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			want: UnavailableText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			res := newTestGemini(srv.URL).AnalyzeViolation(context.Background(), milk)
			assert.True(t, res.Fallback)
			assert.Equal(t, tt.want, res.Text)
		})
	}
}

func TestGemini_MissingKey(t *testing.T) {
	g := NewGemini(config.AIConfig{Endpoint: "http://127.0.0.1:0"}, nil, quietLogger())

	res := g.AnalyzeViolation(context.Background(), milk)
	assert.Equal(t, FallbackResult(UnavailableText), res)
}

func TestGemini_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := newTestGemini(url).AnalyzeViolation(context.Background(), milk)
	assert.Equal(t, FallbackResult(UnavailableText), res)
}

func TestGemini_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"late"}]}}]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := newTestGemini(srv.URL).AnalyzeViolation(ctx, milk)
	assert.True(t, res.Fallback)
}

func TestAnalyzerFunc(t *testing.T) {
	var a Analyzer = AnalyzerFunc(func(_ context.Context, in ViolationInput) Result {
		return Ok(in.ProductName)
	})
	assert.Equal(t, Ok("Premium Milk 1L"), a.AnalyzeViolation(context.Background(), milk))
}
