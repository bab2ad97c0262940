package analyzer

import (
	"testing"
	"time"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
)

func TestAnalyzeFestivalExplicitMention(t *testing.T) {
	kb := knowledge.Defaults()
	// 六月没有大节日，显式提及不应依赖当前月份
	june := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	rep := AnalyzeFestival("Diwali ki shubhkamnaye yaar, bhai sab kuch accha hoga", june, kb)
	if rep.ActiveFestival != "Diwali" {
		t.Errorf("ActiveFestival = %q, want Diwali", rep.ActiveFestival)
	}
	if rep.SeasonalRelevance < 0.85 || rep.SeasonalRelevance > 0.95 {
		t.Errorf("SeasonalRelevance = %v, want ~0.9", rep.SeasonalRelevance)
	}
	if rep.SentimentBoost != 0.8 {
		t.Errorf("SentimentBoost = %v, want 0.8", rep.SentimentBoost)
	}
	if rep.CommercialOpportunity != "high" {
		t.Errorf("CommercialOpportunity = %q, want high", rep.CommercialOpportunity)
	}
}

func TestAnalyzeFestivalImplicitSeason(t *testing.T) {
	kb := knowledge.Defaults()
	october := time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)

	rep := AnalyzeFestival("naya phone kharidna hai is mahine", october, kb)
	if rep.ActiveFestival != "" {
		t.Errorf("ActiveFestival = %q, want none without explicit mention", rep.ActiveFestival)
	}
	// 十月 Diwali 在季，隐式权重 0.9*0.7
	want := 0.9 * 0.7
	if rep.SeasonalRelevance < want-0.001 || rep.SeasonalRelevance > want+0.001 {
		t.Errorf("SeasonalRelevance = %v, want %v", rep.SeasonalRelevance, want)
	}
}

func TestAnalyzeFestivalOffSeason(t *testing.T) {
	kb := knowledge.Defaults()
	june := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	rep := AnalyzeFestival("regular weekday content with nothing seasonal", june, kb)
	if rep.SeasonalRelevance != 0 {
		t.Errorf("SeasonalRelevance = %v, want 0 off-season", rep.SeasonalRelevance)
	}
	if rep.CommercialOpportunity != "low" {
		t.Errorf("CommercialOpportunity = %q, want low", rep.CommercialOpportunity)
	}
}

func TestAnalyzeFestivalGiftingIntent(t *testing.T) {
	kb := knowledge.Defaults()
	june := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	rep := AnalyzeFestival("best gift ideas for maa, family gathering at home", june, kb)
	if !rep.GiftingIntent {
		t.Error("GiftingIntent should be true")
	}
	if !rep.FamilyGathering {
		t.Error("FamilyGathering should be true")
	}
	if rep.CommercialOpportunity != "high" {
		t.Errorf("CommercialOpportunity = %q, gifting intent should force high", rep.CommercialOpportunity)
	}
}
