// Package knowledge holds the static lexicons and tables driving every
// analyzer. A Base is loaded once, validated, and never mutated afterwards;
// hot reload builds a fresh Base and swaps the Holder pointer.
package knowledge

import (
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/bharatpulse/culturesense/pkg/model"
)

// ScriptRange 单个文种的 Unicode 区间
type ScriptRange struct {
	Script   string `yaml:"script"`
	Language string `yaml:"language"`
	Lo       rune   `yaml:"lo"`
	Hi       rune   `yaml:"hi"`
}

// RomanizedLexicon maps a language to its common Latin-script renderings.
// Order matters: earlier entries win when two languages share a word.
type RomanizedLexicon struct {
	Language string   `yaml:"language"`
	Words    []string `yaml:"words"`
}

// Marker 地域标记词，Slang 表示属于当地俚语
type Marker struct {
	Term  string `yaml:"term"`
	Slang bool   `yaml:"slang"`
}

// WeightedTerm 带权重的词条
type WeightedTerm struct {
	Term   string `yaml:"term"`
	Weight int    `yaml:"weight"`
}

// Festival 节日条目
type Festival struct {
	Name           string  `yaml:"name"`
	Months         []int   `yaml:"months"`
	Importance     float64 `yaml:"importance"`
	SentimentBoost float64 `yaml:"sentiment_boost"`
}

// SensitiveTopic 品牌安全敏感词条目
type SensitiveTopic struct {
	Term        string `yaml:"term"`
	RiskWeight  int    `yaml:"risk_weight"`
	Category    string `yaml:"category"` // religious / political / social
	Description string `yaml:"description"`
}

// GenerationProfile 代际画像，按固定顺序排列用于平局裁决
type GenerationProfile struct {
	Name               string   `yaml:"name"`
	Keywords           []string `yaml:"keywords"`
	CommunicationStyle string   `yaml:"communication_style"`
	ValueSystem        string   `yaml:"value_system"`
	DigitalSavviness   int      `yaml:"digital_savviness"`
	ConsumptionPattern string   `yaml:"consumption_pattern"`
}

// Base 一次性加载的只读知识库快照
type Base struct {
	Version string `yaml:"version"`

	Scripts      []ScriptRange      `yaml:"scripts"`
	Romanized    []RomanizedLexicon `yaml:"romanized"`
	MixParticles []string           `yaml:"mix_particles"`

	UrbanKeywords []string `yaml:"urban_keywords"`
	RuralKeywords []string `yaml:"rural_keywords"`

	Regions    map[string][]Marker       `yaml:"regions"`
	Neutrality map[string][]WeightedTerm `yaml:"neutrality"` // religion / caste / gender

	Festivals       []Festival `yaml:"festivals"`
	GiftingKeywords []string   `yaml:"gifting_keywords"`
	FamilyKeywords  []string   `yaml:"family_keywords"`

	SensitiveTopics []SensitiveTopic `yaml:"sensitive_topics"`
	AdultKeywords   []string         `yaml:"adult_keywords"`

	ViralKeywords      []string `yaml:"viral_keywords"`
	EmotionalTriggers  []string `yaml:"emotional_triggers"`
	PrideKeywords      []string `yaml:"pride_keywords"`
	MemeKeywords       []string `yaml:"meme_keywords"`
	InfluencerKeywords []string `yaml:"influencer_keywords"`
	PlatformKeywords   []string `yaml:"platform_keywords"`

	Generations []GenerationProfile `yaml:"generations"`

	PurchaseKeywords []string `yaml:"purchase_keywords"`
	PriceKeywords    []string `yaml:"price_keywords"`
	LoyaltyKeywords  []string `yaml:"loyalty_keywords"`
	LuxuryKeywords   []string `yaml:"luxury_keywords"`
	BudgetKeywords   []string `yaml:"budget_keywords"`
	AnxietyKeywords  []string `yaml:"anxiety_keywords"`

	LeftKeywords          []string `yaml:"left_keywords"`
	RightKeywords         []string `yaml:"right_keywords"`
	NationalPrideKeywords []string `yaml:"national_pride_keywords"`
	CauseKeywords         []string `yaml:"cause_keywords"`
	ActivismKeywords      []string `yaml:"activism_keywords"`

	CulturalPositive []WeightedTerm `yaml:"cultural_positive"`
	CulturalNegative []WeightedTerm `yaml:"cultural_negative"`
	GenericPositive  []string       `yaml:"generic_positive"`
	GenericNegative  []string       `yaml:"generic_negative"`
}

// Load 构建知识库：内置默认表 + 可选 YAML 覆盖文件。
// overlayPath 为空时仅使用默认表。
func Load(overlayPath string) (*Base, error) {
	base := Defaults()

	if overlayPath != "" {
		data, err := os.ReadFile(overlayPath)
		if err != nil {
			return nil, &model.ConfigError{Source: overlayPath, Err: err}
		}
		// 覆盖文件只替换其中出现的表，未出现的保持默认值
		if err := yaml.Unmarshal(data, base); err != nil {
			return nil, &model.ConfigError{Source: overlayPath, Err: err}
		}
	}

	if err := base.validate(); err != nil {
		return nil, err
	}
	return base, nil
}

func (b *Base) validate() error {
	fail := func(format string, args ...any) error {
		return &model.ConfigError{Source: "knowledge base", Err: fmt.Errorf(format, args...)}
	}

	if b.Version == "" {
		return fail("version must not be empty")
	}
	if len(b.Scripts) == 0 {
		return fail("script ranges must not be empty")
	}
	for _, s := range b.Scripts {
		if s.Lo > s.Hi {
			return fail("script %s: invalid range %U..%U", s.Script, s.Lo, s.Hi)
		}
	}
	for _, f := range b.Festivals {
		if len(f.Months) == 0 {
			return fail("festival %s: months must not be empty", f.Name)
		}
		for _, m := range f.Months {
			if m < 1 || m > 12 {
				return fail("festival %s: month %d out of range", f.Name, m)
			}
		}
		if f.Importance < 0 || f.Importance > 1 {
			return fail("festival %s: importance %v out of range", f.Name, f.Importance)
		}
		if f.SentimentBoost < 0 || f.SentimentBoost > 1 {
			return fail("festival %s: sentiment boost %v out of range", f.Name, f.SentimentBoost)
		}
	}
	for _, t := range b.SensitiveTopics {
		if t.RiskWeight < 0 {
			return fail("sensitive topic %q: negative risk weight", t.Term)
		}
		switch t.Category {
		case "religious", "political", "social":
		default:
			return fail("sensitive topic %q: unknown category %q", t.Term, t.Category)
		}
	}
	for category := range b.Neutrality {
		switch category {
		case "religion", "caste", "gender":
		default:
			return fail("neutrality: unknown category %q", category)
		}
	}
	if len(b.Generations) == 0 {
		return fail("generation profiles must not be empty")
	}
	return nil
}

// Holder 持有当前快照，供热更新时原子替换
type Holder struct {
	current atomic.Pointer[Base]
}

// NewHolder 以初始快照创建 Holder
func NewHolder(base *Base) *Holder {
	h := &Holder{}
	h.current.Store(base)
	return h
}

// Current 返回当前快照
func (h *Holder) Current() *Base { return h.current.Load() }

// Swap 替换快照，进行中的请求继续使用旧快照
func (h *Holder) Swap(base *Base) { h.current.Store(base) }
