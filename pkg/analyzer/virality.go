package analyzer

import (
	"strings"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

// 病毒传播评分的基础分与各类命中的固定加分
const (
	viralBase       = 20
	viralKeywordPts = 15
	triggerPts      = 8
	questionPts     = 10
	pridePts        = 12
)

// PredictVirality scores shareability plus the secondary meme/influencer/
// cross-platform heuristics over the same keyword families.
func PredictVirality(text string, kb *knowledge.Base) model.ViralityReport {
	lower := strings.ToLower(text)

	viralHits := matchTerms(lower, kb.ViralKeywords)
	triggers := matchTerms(lower, kb.EmotionalTriggers)
	prideHits := matchTerms(lower, kb.PrideKeywords)

	score := viralBase
	factors := make([]string, 0, len(viralHits)+len(prideHits)+1)

	for _, hit := range viralHits {
		score += viralKeywordPts
		factors = append(factors, hit)
	}
	score += triggerPts * len(triggers)
	if strings.Contains(text, "?") {
		score += questionPts
		factors = append(factors, "engagement question")
	}
	for _, hit := range prideHits {
		score += pridePts
		factors = append(factors, "cultural pride: "+hit)
	}

	memeHits := len(matchTerms(lower, kb.MemeKeywords))
	influencerHits := len(matchTerms(lower, kb.InfluencerKeywords))
	platformHits := len(matchTerms(lower, kb.PlatformKeywords))

	return model.ViralityReport{
		ViralPotential:     clamp(score, 0, 100),
		Factors:            factors,
		EmotionalTriggers:  triggers,
		MemePotential:      clamp(10+20*memeHits, 0, 100),
		InfluencerAppeal:   clamp(15+15*influencerHits+6*len(prideHits), 0, 100),
		CrossPlatformScore: clamp(25+12*platformHits+8*len(viralHits), 0, 100),
	}
}
