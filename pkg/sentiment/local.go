package sentiment

import (
	"context"
	"strings"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

const (
	localBaseScore = 50
	genericHitPts  = 4
	maxConfidence  = 0.95
)

// LocalProvider 终端兜底层：纯词表启发式，永不失败
type LocalProvider struct {
	snapshot func() *knowledge.Base
}

// NewLocal 创建本地启发式层；snapshot 在每次调用时取当前知识库
func NewLocal(snapshot func() *knowledge.Base) *LocalProvider {
	return &LocalProvider{snapshot: snapshot}
}

func (p *LocalProvider) Name() string { return "local" }

// Analyze 基于文化加权词表与通用情感词表打分
func (p *LocalProvider) Analyze(_ context.Context, text, _ string) (*Result, error) {
	kb := p.snapshot()
	lower := strings.ToLower(text)

	score := localBaseScore
	positives := 0
	negatives := 0

	for _, t := range kb.CulturalPositive {
		if strings.Contains(lower, t.Term) {
			score += t.Weight
			positives++
		}
	}
	for _, t := range kb.CulturalNegative {
		if strings.Contains(lower, t.Term) {
			score -= t.Weight
			negatives++
		}
	}
	for _, w := range kb.GenericPositive {
		if strings.Contains(lower, w) {
			score += genericHitPts
			positives++
		}
	}
	for _, w := range kb.GenericNegative {
		if strings.Contains(lower, w) {
			score -= genericHitPts
			negatives++
		}
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	sentiment := model.SentimentNeutral
	if positives > negatives {
		sentiment = model.SentimentPositive
	} else if negatives > positives {
		sentiment = model.SentimentNegative
	}

	diff := positives - negatives
	if diff < 0 {
		diff = -diff
	}
	wordCount := len(strings.Fields(text))
	confidence := 0.6 + 0.01*float64(wordCount) + 0.05*float64(diff)
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return &Result{
		CulturalScore: score,
		Sentiment:     sentiment,
		Confidence:    confidence,
		Provider:      p.Name(),
		AIPowered:     false,
	}, nil
}
