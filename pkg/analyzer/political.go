package analyzer

import (
	"strings"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

const (
	leanHitPts   = 10
	leanMargin   = 20
	prideBase    = 50
	prideHitPts  = 15
	activismBase = 10
	activismPts  = 20
)

// AssessPoliticalNeutrality derives lean, national pride, social causes and
// activism level from independent keyword tallies.
func AssessPoliticalNeutrality(text string, kb *knowledge.Base) model.PoliticalReport {
	lower := strings.ToLower(text)

	left := leanHitPts * len(matchTerms(lower, kb.LeftKeywords))
	right := leanHitPts * len(matchTerms(lower, kb.RightKeywords))

	lean := "neutral"
	if left > right+leanMargin {
		lean = "slightly_left"
	} else if right > left+leanMargin {
		lean = "slightly_right"
	}

	return model.PoliticalReport{
		Lean:          lean,
		NationalPride: clamp(prideBase+prideHitPts*len(matchTerms(lower, kb.NationalPrideKeywords)), 0, 100),
		SocialCauses:  matchTerms(lower, kb.CauseKeywords),
		ActivismLevel: clamp(activismBase+activismPts*len(matchTerms(lower, kb.ActivismKeywords)), 0, 100),
	}
}
