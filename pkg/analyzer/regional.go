package analyzer

import (
	"strings"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

// AnalyzeRegional matches the region's marker list against the text and
// computes the neutrality sub-scores as keyword-weighted deductions from a
// perfect 100 baseline.
func AnalyzeRegional(text, region string, kb *knowledge.Base) model.RegionalReport {
	lower := strings.ToLower(text)

	rep := model.RegionalReport{
		Region:             region,
		ReligionNeutrality: neutralityScore(lower, kb.Neutrality["religion"]),
		CasteNeutrality:    neutralityScore(lower, kb.Neutrality["caste"]),
		GenderNeutrality:   neutralityScore(lower, kb.Neutrality["gender"]),
	}

	for _, marker := range regionMarkers(region, kb) {
		if strings.Contains(lower, strings.ToLower(marker.Term)) {
			rep.Markers = append(rep.Markers, marker.Term)
			if marker.Slang {
				rep.LocalSlang = append(rep.LocalSlang, marker.Term)
			}
		}
	}

	return rep
}

// regionMarkers 地区名查表，退化为大小写不敏感匹配
func regionMarkers(region string, kb *knowledge.Base) []knowledge.Marker {
	if markers, ok := kb.Regions[region]; ok {
		return markers
	}
	for name, markers := range kb.Regions {
		if strings.EqualFold(name, region) {
			return markers
		}
	}
	return nil
}

func neutralityScore(lower string, terms []knowledge.WeightedTerm) int {
	score := 100
	for _, t := range terms {
		if strings.Contains(lower, t.Term) {
			score -= t.Weight
		}
	}
	return clamp(score, 0, 100)
}
