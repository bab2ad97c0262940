package analyzer

import (
	"strings"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

const (
	purchasePts   = 15
	pricePts      = 12
	loyaltyPts    = 10
	anxietyBase   = 20
	anxietyHitPts = 15
)

// ExtractEconomicSignals tallies purchase/price/loyalty keyword hits and
// derives the disposable-income tier (luxury evidence checked first).
func ExtractEconomicSignals(text string, kb *knowledge.Base) model.EconomicReport {
	lower := strings.ToLower(text)

	income := "medium"
	if containsAny(lower, kb.LuxuryKeywords) {
		income = "high"
	} else if containsAny(lower, kb.BudgetKeywords) {
		income = "low"
	}

	return model.EconomicReport{
		PurchaseIntent:     clamp(purchasePts*len(matchTerms(lower, kb.PurchaseKeywords)), 0, 100),
		PriceConsciousness: clamp(pricePts*len(matchTerms(lower, kb.PriceKeywords)), 0, 100),
		BrandLoyalty:       clamp(loyaltyPts*len(matchTerms(lower, kb.LoyaltyKeywords)), 0, 100),
		DisposableIncome:   income,
		EconomicAnxiety:    clamp(anxietyBase+anxietyHitPts*len(matchTerms(lower, kb.AnxietyKeywords)), 0, 100),
	}
}
