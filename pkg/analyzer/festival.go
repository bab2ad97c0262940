package analyzer

import (
	"strings"
	"time"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

// implicitSeasonWeight discounts festivals that are merely in season but
// not mentioned by name.
const implicitSeasonWeight = 0.7

// AnalyzeFestival detects festival relevance. An explicit festival mention
// wins; otherwise any festival whose months include now's month contributes
// its discounted importance.
func AnalyzeFestival(text string, now time.Time, kb *knowledge.Base) model.FestivalReport {
	lower := strings.ToLower(text)
	rep := model.FestivalReport{}

	for _, f := range kb.Festivals {
		if strings.Contains(lower, strings.ToLower(f.Name)) && f.Importance > rep.SeasonalRelevance {
			rep.ActiveFestival = f.Name
			rep.SeasonalRelevance = f.Importance
			rep.SentimentBoost = f.SentimentBoost
		}
	}

	if rep.ActiveFestival == "" {
		month := int(now.Month())
		for _, f := range kb.Festivals {
			if !monthIn(f.Months, month) {
				continue
			}
			if v := f.Importance * implicitSeasonWeight; v > rep.SeasonalRelevance {
				rep.SeasonalRelevance = v
			}
		}
	}

	rep.GiftingIntent = containsAny(lower, kb.GiftingKeywords)
	rep.FamilyGathering = containsAny(lower, kb.FamilyKeywords)

	switch {
	case rep.SeasonalRelevance >= 0.7 || rep.GiftingIntent:
		rep.CommercialOpportunity = "high"
	case rep.SeasonalRelevance >= 0.3:
		rep.CommercialOpportunity = "medium"
	default:
		rep.CommercialOpportunity = "low"
	}

	return rep
}

func monthIn(months []int, month int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
