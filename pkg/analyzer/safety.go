package analyzer

import (
	"strings"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

// ageInappropriatePenalty 额外的年龄适宜性扣分
const ageInappropriatePenalty = 20

// ScreenBrandSafety deducts each matched sensitive topic's risk weight from
// a perfect 100, clamping at zero after every deduction.
func ScreenBrandSafety(text string, kb *knowledge.Base) model.SafetyReport {
	lower := strings.ToLower(text)

	rep := model.SafetyReport{OverallSafety: 100, AgeAppropriate: true}
	for _, topic := range kb.SensitiveTopics {
		if !strings.Contains(lower, topic.Term) {
			continue
		}
		rep.OverallSafety = clamp(rep.OverallSafety-topic.RiskWeight, 0, 100)
		switch topic.Category {
		case "religious":
			rep.ReligiousConflicts = append(rep.ReligiousConflicts, topic.Description)
		case "political":
			rep.PoliticalConflicts = append(rep.PoliticalConflicts, topic.Description)
		case "social":
			rep.SocialConflicts = append(rep.SocialConflicts, topic.Description)
		}
	}

	if containsAny(lower, kb.AdultKeywords) {
		rep.AgeAppropriate = false
		rep.OverallSafety = clamp(rep.OverallSafety-ageInappropriatePenalty, 0, 100)
	}

	switch {
	case rep.OverallSafety >= 80:
		rep.CorporateRisk = "low"
	case rep.OverallSafety >= 60:
		rep.CorporateRisk = "medium"
	default:
		rep.CorporateRisk = "high"
	}

	return rep
}
