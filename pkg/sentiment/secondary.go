package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bharatpulse/culturesense/pkg/config"
)

// secondaryPromptTpl 次级服务使用另一种嵌套 schema
const secondaryPromptTpl = `Analyze this Indian social media text for region "%s":

%s

Answer with one JSON object only:
{
  "culturalScore": <0-100>,
  "sentiment": "positive" | "neutral" | "negative",
  "confidence": <0-1>,
  "codeMixing": {"languages": ["..."], "pattern": "...", "authenticity": <0-100>},
  "regionalContext": {"relevance": <0-1>, "markers": ["..."]},
  "festivalContext": {"active": "...", "relevance": <0-1>},
  "viralPotential": {"score": <0-100>, "factors": ["..."]},
  "brandSafety": {"score": <0-100>, "risks": ["..."]}
}`

type secondaryResponse struct {
	CulturalScore *float64 `json:"culturalScore"`
	Sentiment     *string  `json:"sentiment"`
	Confidence    *float64 `json:"confidence"`
	CodeMixing    struct {
		Languages    []string `json:"languages"`
		Pattern      string   `json:"pattern"`
		Authenticity float64  `json:"authenticity"`
	} `json:"codeMixing"`
	RegionalContext struct {
		Relevance float64  `json:"relevance"`
		Markers   []string `json:"markers"`
	} `json:"regionalContext"`
	FestivalContext struct {
		Active    string  `json:"active"`
		Relevance float64 `json:"relevance"`
	} `json:"festivalContext"`
	ViralPotential struct {
		Score   float64  `json:"score"`
		Factors []string `json:"factors"`
	} `json:"viralPotential"`
	BrandSafety struct {
		Score float64  `json:"score"`
		Risks []string `json:"risks"`
	} `json:"brandSafety"`
}

// chat-completions 协议的请求/响应
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// SecondaryProvider 第二层：直连 chat-completions 接口的备用模型服务
type SecondaryProvider struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	limiter *rate.Limiter
}

// NewSecondary 创建备用模型层
func NewSecondary(cfg config.LLMConfig, limiter *rate.Limiter) *SecondaryProvider {
	timeout := defaultRemoteTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &SecondaryProvider{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

func (p *SecondaryProvider) Name() string { return "secondary" }

// Analyze implements Provider.
func (p *SecondaryProvider) Analyze(ctx context.Context, text, region string) (*Result, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a JSON generator. Output only the JSON object."},
			{Role: "user", Content: fmt.Sprintf(secondaryPromptTpl, region, text)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Add("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Add("Content-Type", "application/json")

	res, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("secondary api error (status %d): %s", res.StatusCode, string(body))
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", ErrInvalidSchema)
	}

	extracted, err := ExtractJSON(chat.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	var parsed secondaryResponse
	if err := json.Unmarshal([]byte(extracted), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if parsed.CulturalScore == nil || parsed.Sentiment == nil || parsed.Confidence == nil {
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidSchema)
	}
	if !validScore(*parsed.CulturalScore) || !validConfidence(*parsed.Confidence) {
		return nil, fmt.Errorf("%w: score/confidence out of range", ErrInvalidSchema)
	}
	sentiment, err := normalizeSentiment(*parsed.Sentiment)
	if err != nil {
		return nil, err
	}

	return &Result{
		CulturalScore: int(*parsed.CulturalScore),
		Sentiment:     sentiment,
		Confidence:    *parsed.Confidence,
		Insights:      parsed.ViralPotential.Factors,
		Provider:      p.Name(),
		AIPowered:     true,
	}, nil
}
