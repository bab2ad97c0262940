package model

import "time"

// MaxTextLength is the upper bound on analyzable text.
const MaxTextLength = 10000

// Sentiment labels produced by the scoring engine.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Mixing patterns recognized by the script mixture detector.
const (
	PatternHinglish = "hinglish"
	PatternTanglish = "tanglish"
	PatternBanglish = "banglish"
	PatternPunglish = "punglish"
	PatternCustom   = "custom"
)

// AnalysisRequest 单次分析请求
type AnalysisRequest struct {
	Text     string `json:"text"`
	Region   string `json:"region"`
	Language string `json:"language"`
}

// Validate checks the request before the pipeline is invoked.
func (r AnalysisRequest) Validate() error {
	if len(r.Text) == 0 {
		return ErrEmptyText
	}
	if len([]rune(r.Text)) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}

// ScriptMatch 单个文种的占比
type ScriptMatch struct {
	Script     string  `json:"script"`
	Language   string  `json:"language"`
	Percentage float64 `json:"percentage"`
}

// CodeMixingReport describes the script/language blend of the text.
type CodeMixingReport struct {
	Scripts       []ScriptMatch `json:"detected_scripts"`
	MixingPattern string        `json:"mixing_pattern"`
	Authenticity  int           `json:"authenticity_score"`
	UrbanRural    string        `json:"urban_rural"`
}

// RegionalReport lists matched regional markers and neutrality sub-scores.
type RegionalReport struct {
	Region             string   `json:"region"`
	Markers            []string `json:"markers"`
	LocalSlang         []string `json:"local_slang"`
	ReligionNeutrality int      `json:"religion_neutrality"`
	CasteNeutrality    int      `json:"caste_neutrality"`
	GenderNeutrality   int      `json:"gender_neutrality"`
}

// FestivalReport captures festival/seasonal relevance.
type FestivalReport struct {
	ActiveFestival        string  `json:"active_festival"`
	SeasonalRelevance     float64 `json:"seasonal_relevance"`
	SentimentBoost        float64 `json:"sentiment_boost"`
	GiftingIntent         bool    `json:"gifting_intent"`
	FamilyGathering       bool    `json:"family_gathering"`
	CommercialOpportunity string  `json:"commercial_opportunity"`
}

// ViralityReport estimates shareability.
type ViralityReport struct {
	ViralPotential     int      `json:"viral_potential"`
	Factors            []string `json:"factors"`
	EmotionalTriggers  []string `json:"emotional_triggers"`
	MemePotential      int      `json:"meme_potential"`
	InfluencerAppeal   int      `json:"influencer_appeal"`
	CrossPlatformScore int      `json:"cross_platform_score"`
}

// SafetyReport scores brand-safety risk.
type SafetyReport struct {
	OverallSafety      int      `json:"overall_safety"`
	ReligiousConflicts []string `json:"religious_conflicts"`
	PoliticalConflicts []string `json:"political_conflicts"`
	SocialConflicts    []string `json:"social_conflicts"`
	AgeAppropriate     bool     `json:"age_appropriate"`
	CorporateRisk      string   `json:"corporate_risk"`
}

// GenerationReport buckets the text into a generational profile.
type GenerationReport struct {
	Generation         string         `json:"generation"`
	Scores             map[string]int `json:"scores"`
	CommunicationStyle string         `json:"communication_style"`
	ValueSystem        string         `json:"value_system"`
	DigitalSavviness   int            `json:"digital_savviness"`
	ConsumptionPattern string         `json:"consumption_pattern"`
}

// EconomicReport extracts purchase/price/income signals.
type EconomicReport struct {
	PurchaseIntent     int    `json:"purchase_intent"`
	PriceConsciousness int    `json:"price_consciousness"`
	BrandLoyalty       int    `json:"brand_loyalty"`
	DisposableIncome   string `json:"disposable_income"`
	EconomicAnxiety    int    `json:"economic_anxiety"`
}

// PoliticalReport assesses lean, pride and activism signals.
type PoliticalReport struct {
	Lean          string   `json:"lean"`
	NationalPride int      `json:"national_pride"`
	SocialCauses  []string `json:"social_causes"`
	ActivismLevel int      `json:"activism_level"`
}

// AnalysisResult 聚合后的综合分析报告
type AnalysisResult struct {
	Region   string `json:"region"`
	Language string `json:"language"`

	CulturalScore int     `json:"cultural_score"`
	Sentiment     string  `json:"sentiment"`
	Confidence    float64 `json:"confidence"`
	AIPowered     bool    `json:"ai_powered"`
	Provider      string  `json:"provider"`

	CodeMixing      CodeMixingReport `json:"code_mixing"`
	RegionalNuance  RegionalReport   `json:"regional_nuance"`
	FestivalContext FestivalReport   `json:"festival_context"`
	Virality        ViralityReport   `json:"virality"`
	BrandSafety     SafetyReport     `json:"brand_safety"`
	Generational    GenerationReport `json:"generational"`
	Economic        EconomicReport   `json:"economic"`
	Political       PoliticalReport  `json:"political"`

	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	RiskFactors     []string `json:"risk_factors"`

	KnowledgeVersion string    `json:"knowledge_version"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
}
