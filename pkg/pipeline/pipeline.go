// Package pipeline fans all analyzers out concurrently over one immutable
// knowledge snapshot and merges their partial reports into the composite
// AnalysisResult consumed by the API layer.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bharatpulse/culturesense/pkg/analyzer"
	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
	"github.com/bharatpulse/culturesense/pkg/sentiment"
)

// Engine 评分引擎抽象，生产环境为 sentiment.Chain
type Engine interface {
	Analyze(ctx context.Context, text, region string) (*sentiment.Result, error)
}

// Pipeline 分析流水线
type Pipeline struct {
	kb     *knowledge.Holder
	engine Engine
	log    *logrus.Logger
	now    func() time.Time
}

// New 创建流水线实例
func New(kb *knowledge.Holder, engine Engine, log *logrus.Logger) *Pipeline {
	return &Pipeline{kb: kb, engine: engine, log: log, now: time.Now}
}

// Analyze runs the full pipeline for one request. The only caller-visible
// failures are input validation and caller cancellation; every remote-tier
// failure is absorbed by the engine's fallback chain.
func (p *Pipeline) Analyze(ctx context.Context, req model.AnalysisRequest) (*model.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 快照在请求开始时取定，热更新不影响进行中的请求
	kb := p.kb.Current()
	now := p.now()

	res := &model.AnalysisResult{
		Region:           req.Region,
		Language:         req.Language,
		KnowledgeVersion: kb.Version,
		AnalyzedAt:       now,
	}

	var (
		wg        sync.WaitGroup
		engineRes *sentiment.Result
		engineErr error
	)

	wg.Add(9)
	go func() { defer wg.Done(); res.CodeMixing = analyzer.DetectCodeMixing(req.Text, kb) }()
	go func() { defer wg.Done(); res.RegionalNuance = analyzer.AnalyzeRegional(req.Text, req.Region, kb) }()
	go func() { defer wg.Done(); res.FestivalContext = analyzer.AnalyzeFestival(req.Text, now, kb) }()
	go func() { defer wg.Done(); res.Virality = analyzer.PredictVirality(req.Text, kb) }()
	go func() { defer wg.Done(); res.BrandSafety = analyzer.ScreenBrandSafety(req.Text, kb) }()
	go func() { defer wg.Done(); res.Generational = analyzer.ClassifyGeneration(req.Text, kb) }()
	go func() { defer wg.Done(); res.Economic = analyzer.ExtractEconomicSignals(req.Text, kb) }()
	go func() { defer wg.Done(); res.Political = analyzer.AssessPoliticalNeutrality(req.Text, kb) }()
	go func() { defer wg.Done(); engineRes, engineErr = p.engine.Analyze(ctx, req.Text, req.Region) }()
	wg.Wait()

	if engineErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// 正常配置下链路以本地层兜底，到不了这里
		p.log.Errorf("sentiment engine failed: %v", engineErr)
		engineRes = &sentiment.Result{
			CulturalScore: 50,
			Sentiment:     model.SentimentNeutral,
			Confidence:    0.5,
			Provider:      "none",
		}
	}

	res.CulturalScore = engineRes.CulturalScore
	res.Sentiment = engineRes.Sentiment
	res.Confidence = engineRes.Confidence
	res.Provider = engineRes.Provider
	res.AIPowered = engineRes.AIPowered

	res.Insights = deriveInsights(res, engineRes.Insights)
	res.Recommendations = deriveRecommendations(res)
	res.RiskFactors = deriveRiskFactors(res)

	return res, nil
}

func deriveInsights(res *model.AnalysisResult, aiInsights []string) []string {
	insights := append([]string{}, aiInsights...)
	insights = append(insights,
		fmt.Sprintf("Overall sentiment is %s with %.0f%% confidence for %s", res.Sentiment, res.Confidence*100, res.Region),
		fmt.Sprintf("Cultural resonance score %d/100 for %s", res.CulturalScore, res.Region),
	)
	if res.FestivalContext.ActiveFestival != "" {
		insights = append(insights, fmt.Sprintf("Content rides the %s festive window", res.FestivalContext.ActiveFestival))
	}
	if pattern := res.CodeMixing.MixingPattern; pattern != "" && pattern != model.PatternCustom {
		insights = append(insights, fmt.Sprintf("Code-mixing pattern %q signals bilingual comfort with the audience", pattern))
	}
	return insights
}

func deriveRecommendations(res *model.AnalysisResult) []string {
	var recs []string
	if res.Virality.ViralPotential > 60 {
		recs = append(recs, "High viral potential: schedule amplification while the sharing window lasts")
	}
	if len(res.CodeMixing.Scripts) > 1 {
		recs = append(recs, "Keep the code-mixed voice; flattening to one language would cost authenticity")
	}
	if res.CulturalScore > 80 {
		recs = append(recs, "Strong cultural resonance: suitable anchor for brand-association campaigns")
	}
	return recs
}

func deriveRiskFactors(res *model.AnalysisResult) []string {
	var risks []string
	if res.BrandSafety.OverallSafety < 70 {
		risks = append(risks, fmt.Sprintf("Brand safety %d/100: review before commercial association", res.BrandSafety.OverallSafety))
	}
	if res.Political.Lean != "neutral" {
		risks = append(risks, fmt.Sprintf("Political lean detected (%s): brand pairing may read as bias", res.Political.Lean))
	}
	if res.RegionalNuance.ReligionNeutrality < 70 {
		risks = append(risks, "Religious sensitivity flags present: regional review advised")
	}
	return risks
}
