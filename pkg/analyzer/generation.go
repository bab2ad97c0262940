package analyzer

import (
	"strings"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

// generationHitPts 每个关键词命中为所属代际加的分
const generationHitPts = 10

// ClassifyGeneration buckets the text by generational keyword tallies.
// Ties resolve to the earlier profile in the configured order
// (Gen-Z > Millennial > Gen-X > Boomer in the default tables).
func ClassifyGeneration(text string, kb *knowledge.Base) model.GenerationReport {
	lower := strings.ToLower(text)

	scores := make(map[string]int, len(kb.Generations))
	var winner knowledge.GenerationProfile
	best := -1
	for _, profile := range kb.Generations {
		tally := generationHitPts * len(matchTerms(lower, profile.Keywords))
		scores[profile.Name] = tally
		if tally > best {
			best = tally
			winner = profile
		}
	}

	return model.GenerationReport{
		Generation:         winner.Name,
		Scores:             scores,
		CommunicationStyle: winner.CommunicationStyle,
		ValueSystem:        winner.ValueSystem,
		DigitalSavviness:   winner.DigitalSavviness,
		ConsumptionPattern: winner.ConsumptionPattern,
	}
}
