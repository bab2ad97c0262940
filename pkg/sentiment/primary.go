package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/bharatpulse/culturesense/pkg/config"
)

const defaultRemoteTimeout = 15 * time.Second

// primaryPromptTpl 要求模型返回固定的扁平 JSON schema
const primaryPromptTpl = `You are a cultural signal analyst for Indian social media content.
Analyze the following text for the region "%s":

%s

Respond with exactly one JSON object and nothing else, using this schema:
{
  "culturalScore": <0-100>,
  "sentiment": "positive" | "neutral" | "negative",
  "confidence": <0-1>,
  "culturalInsights": ["..."],
  "regionalRelevance": <0-1>,
  "codeLanguages": ["..."],
  "festivals": ["..."],
  "urbanRural": "urban" | "rural" | "semi-urban",
  "generationAppeal": "...",
  "viralPotential": <0-100>,
  "brandSafety": <0-100>,
  "businessValue": "..."
}`

// primaryResponse 主服务的应答 schema；指针字段缺失视为违例
type primaryResponse struct {
	CulturalScore     *float64 `json:"culturalScore"`
	Sentiment         *string  `json:"sentiment"`
	Confidence        *float64 `json:"confidence"`
	CulturalInsights  []string `json:"culturalInsights"`
	RegionalRelevance float64  `json:"regionalRelevance"`
	CodeLanguages     []string `json:"codeLanguages"`
	Festivals         []string `json:"festivals"`
	UrbanRural        string   `json:"urbanRural"`
	GenerationAppeal  string   `json:"generationAppeal"`
	ViralPotential    float64  `json:"viralPotential"`
	BrandSafety       float64  `json:"brandSafety"`
	BusinessValue     string   `json:"businessValue"`
}

// PrimaryProvider 第一层：通过 eino 调用 OpenAI 协议的远端模型
type PrimaryProvider struct {
	chatModel model.ChatModel
	timeout   time.Duration
	limiter   *rate.Limiter
}

// NewPrimary 创建主模型层
func NewPrimary(ctx context.Context, cfg config.LLMConfig, limiter *rate.Limiter) (*PrimaryProvider, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("primary chat model init: %w", err)
	}

	timeout := defaultRemoteTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &PrimaryProvider{chatModel: chatModel, timeout: timeout, limiter: limiter}, nil
}

func (p *PrimaryProvider) Name() string { return "primary" }

// Analyze 单次尝试，层内不重试；失败由上层链路兜底
func (p *PrimaryProvider) Analyze(ctx context.Context, text, region string) (*Result, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	// 每次调用的独立超时，防止挂起的远端拖垮整条流水线
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	messages := []*schema.Message{
		{Role: schema.System, Content: "You are a JSON generator. Output only the JSON object."},
		{Role: schema.User, Content: fmt.Sprintf(primaryPromptTpl, region, text)},
	}

	resp, err := p.chatModel.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("primary generate: %w", err)
	}

	payload, err := ExtractJSON(resp.Content)
	if err != nil {
		return nil, err
	}

	var parsed primaryResponse
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
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
		Insights:      parsed.CulturalInsights,
		Provider:      p.Name(),
		AIPowered:     true,
	}, nil
}
