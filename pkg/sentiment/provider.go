// Package sentiment implements the tiered cultural-score engine: an ordered
// chain of providers tried once each until one succeeds. The local heuristic
// provider never fails, so the chain always produces a result.
package sentiment

import (
	"context"
	"errors"
)

// Provider 定义评分引擎的单个层级
type Provider interface {
	Name() string
	Analyze(ctx context.Context, text, region string) (*Result, error)
}

// Result 单层评分结果
type Result struct {
	CulturalScore int      `json:"cultural_score"`
	Sentiment     string   `json:"sentiment"`
	Confidence    float64  `json:"confidence"`
	Insights      []string `json:"insights,omitempty"`
	Provider      string   `json:"provider"`
	AIPowered     bool     `json:"ai_powered"`
}

// 层级内部失败原因，仅用于日志，从不暴露给调用方
var (
	ErrNoJSON        = errors.New("response contains no JSON object")
	ErrInvalidSchema = errors.New("response violates expected schema")
)
