package analyzer

import (
	"testing"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

func TestDetectCodeMixingRomanizedHinglish(t *testing.T) {
	kb := knowledge.Defaults()
	rep := DetectCodeMixing("Diwali ki shubhkamnaye yaar, bhai sab kuch accha hoga", kb)

	if rep.MixingPattern != model.PatternHinglish {
		t.Errorf("MixingPattern = %q, want hinglish", rep.MixingPattern)
	}
	languages := make(map[string]float64)
	for _, m := range rep.Scripts {
		languages[m.Language] = m.Percentage
	}
	if languages["Hindi"] <= languages["English"] {
		t.Errorf("Hindi share (%.1f) should dominate English (%.1f)", languages["Hindi"], languages["English"])
	}
	if rep.Authenticity <= 50 {
		t.Errorf("Authenticity = %d, particles should raise it above the 50 base", rep.Authenticity)
	}
}

func TestDetectCodeMixingDevanagari(t *testing.T) {
	kb := knowledge.Defaults()
	rep := DetectCodeMixing("Happy Diwali शुभ दीपावली की हार्दिक शुभकामनाएँ", kb)

	if rep.MixingPattern != model.PatternHinglish {
		t.Errorf("MixingPattern = %q, want hinglish for Latin+Devanagari", rep.MixingPattern)
	}
}

func TestDetectCodeMixingSurvivalFilter(t *testing.T) {
	kb := knowledge.Defaults()
	rep := DetectCodeMixing("This is a plain English sentence about the weather today", kb)

	for _, m := range rep.Scripts {
		if m.Percentage <= 5 {
			t.Errorf("script %s survived with %.2f%%, entries must exceed 5%%", m.Language, m.Percentage)
		}
	}
	if rep.MixingPattern != model.PatternCustom {
		t.Errorf("MixingPattern = %q, want custom for monolingual text", rep.MixingPattern)
	}
}

func TestDetectCodeMixingEmptyText(t *testing.T) {
	rep := DetectCodeMixing("", knowledge.Defaults())
	if len(rep.Scripts) != 0 {
		t.Errorf("empty text should yield an empty report, got %v", rep.Scripts)
	}
}

func TestUrbanRuralIndicator(t *testing.T) {
	kb := knowledge.Defaults()

	urban := DetectCodeMixing("stuck in traffic near the mall, ordered swiggy to office", kb)
	if urban.UrbanRural != "urban" {
		t.Errorf("UrbanRural = %q, want urban", urban.UrbanRural)
	}

	rural := DetectCodeMixing("gaon me fasal mandi le gaye tractor se", kb)
	if rural.UrbanRural != "rural" {
		t.Errorf("UrbanRural = %q, want rural", rural.UrbanRural)
	}

	tie := DetectCodeMixing("nothing relevant here", kb)
	if tie.UrbanRural != "semi-urban" {
		t.Errorf("UrbanRural = %q, want semi-urban on tie", tie.UrbanRural)
	}
}
