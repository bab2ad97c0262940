package analyzer

import (
	"testing"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
)

func TestPredictViralityKeywordsAndQuestion(t *testing.T) {
	kb := knowledge.Defaults()
	// 3 个病毒关键词 + 问号：20 + 15*3 + 10 = 75
	rep := PredictVirality("Will this viral trending clip get a repost from everyone?", kb)

	if rep.ViralPotential < 65 {
		t.Errorf("ViralPotential = %d, want >= 65", rep.ViralPotential)
	}
	if len(rep.Factors) < 3 {
		t.Errorf("Factors = %v, want the viral keywords and the question recorded", rep.Factors)
	}
}

func TestPredictViralityBaseline(t *testing.T) {
	kb := knowledge.Defaults()
	rep := PredictVirality("The meeting is at 5pm.", kb)

	if rep.ViralPotential != 20 {
		t.Errorf("ViralPotential = %d, want base 20", rep.ViralPotential)
	}
	if len(rep.Factors) != 0 || len(rep.EmotionalTriggers) != 0 {
		t.Errorf("baseline text should record no factors, got %v / %v", rep.Factors, rep.EmotionalTriggers)
	}
}

func TestPredictViralityClamped(t *testing.T) {
	kb := knowledge.Defaults()
	text := "viral trending share repost challenge hashtag breaking exclusive must watch omg " +
		"love amazing shocking unbelievable proud wow?"
	rep := PredictVirality(text, kb)

	if rep.ViralPotential != 100 {
		t.Errorf("ViralPotential = %d, want clamp at 100", rep.ViralPotential)
	}
}

func TestPredictViralityCulturalPride(t *testing.T) {
	kb := knowledge.Defaults()
	rep := PredictVirality("jai hind, made in india products only", kb)

	// 20 + 12*2，两个自豪关键词
	if rep.ViralPotential < 44 {
		t.Errorf("ViralPotential = %d, pride keywords should add 12 each", rep.ViralPotential)
	}
	foundPride := false
	for _, f := range rep.Factors {
		if len(f) > 15 && f[:15] == "cultural pride:" {
			foundPride = true
		}
	}
	if !foundPride {
		t.Errorf("Factors = %v, want cultural pride recorded", rep.Factors)
	}
}
