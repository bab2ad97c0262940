package analyzer

import (
	"testing"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
)

func TestScreenBrandSafetySingleReligiousTerm(t *testing.T) {
	kb := knowledge.Defaults()
	rep := ScreenBrandSafety("this restaurant also serves beef dishes", kb)

	if rep.OverallSafety != 75 {
		t.Errorf("OverallSafety = %d, want 75 after one 25-weight deduction", rep.OverallSafety)
	}
	if rep.CorporateRisk != "medium" {
		t.Errorf("CorporateRisk = %q, want medium", rep.CorporateRisk)
	}
	if len(rep.ReligiousConflicts) != 1 {
		t.Errorf("ReligiousConflicts = %v, want one entry", rep.ReligiousConflicts)
	}
}

func TestScreenBrandSafetyNeverNegative(t *testing.T) {
	kb := knowledge.Defaults()
	text := "kashmir article 370 caa nrc pakistan love jihad cow slaughter mob lynching honor killing"
	rep := ScreenBrandSafety(text, kb)

	if rep.OverallSafety != 0 {
		t.Errorf("OverallSafety = %d, want clamp at 0", rep.OverallSafety)
	}
	if rep.CorporateRisk != "high" {
		t.Errorf("CorporateRisk = %q, want high", rep.CorporateRisk)
	}
}

func TestScreenBrandSafetyClean(t *testing.T) {
	kb := knowledge.Defaults()
	rep := ScreenBrandSafety("sharing my homemade recipe for weekend breakfast", kb)

	if rep.OverallSafety != 100 {
		t.Errorf("OverallSafety = %d, want 100", rep.OverallSafety)
	}
	if rep.CorporateRisk != "low" {
		t.Errorf("CorporateRisk = %q, want low", rep.CorporateRisk)
	}
	if !rep.AgeAppropriate {
		t.Error("AgeAppropriate should be true for clean text")
	}
}

func TestScreenBrandSafetyAgePenalty(t *testing.T) {
	kb := knowledge.Defaults()
	rep := ScreenBrandSafety("weekend party with beer and hookah", kb)

	if rep.AgeAppropriate {
		t.Error("AgeAppropriate should be false")
	}
	if rep.OverallSafety != 80 {
		t.Errorf("OverallSafety = %d, want 100-20", rep.OverallSafety)
	}
}
