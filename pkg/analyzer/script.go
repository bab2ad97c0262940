package analyzer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

// survivalThreshold 低于该占比的文种在输出前被丢弃
const survivalThreshold = 5.0

// DetectCodeMixing classifies the script/language blend of the text.
//
// Attribution is word-first: a token found in a language's romanized lexicon
// counts its characters for that language, so Latin-script Hinglish still
// registers as Hindi. All other runes are attributed by Unicode block.
// Percentages are over the total rune count of the text.
func DetectCodeMixing(text string, kb *knowledge.Base) model.CodeMixingReport {
	runes := []rune(text)
	total := len(runes)
	if total == 0 {
		return model.CodeMixingReport{}
	}

	lower := strings.ToLower(text)
	lowRunes := []rune(lower)

	// 词 -> 语言，保持 lexicon 顺序（先到先得）
	wordLang := make(map[string]string)
	for _, lex := range kb.Romanized {
		for _, w := range lex.Words {
			if _, ok := wordLang[w]; !ok {
				wordLang[w] = lex.Language
			}
		}
	}

	counts := make(map[string]int)
	scriptOf := make(map[string]string)
	for _, sr := range kb.Scripts {
		if _, ok := scriptOf[sr.Language]; !ok {
			scriptOf[sr.Language] = sr.Script
		}
	}

	claimed := make([]bool, total)
	for i := 0; i < total; {
		if !unicode.IsLetter(lowRunes[i]) {
			i++
			continue
		}
		j := i
		for j < total && unicode.IsLetter(lowRunes[j]) {
			j++
		}
		if lang, ok := wordLang[string(lowRunes[i:j])]; ok {
			counts[lang] += j - i
			for k := i; k < j; k++ {
				claimed[k] = true
			}
		}
		i = j
	}

	for i, r := range runes {
		if claimed[i] {
			continue
		}
		for _, sr := range kb.Scripts {
			if r >= sr.Lo && r <= sr.Hi {
				counts[sr.Language]++
				break
			}
		}
	}

	var matches []model.ScriptMatch
	for lang, n := range counts {
		pct := float64(n) / float64(total) * 100
		if pct > survivalThreshold {
			matches = append(matches, model.ScriptMatch{
				Script:     scriptOf[lang],
				Language:   lang,
				Percentage: pct,
			})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Percentage != matches[j].Percentage {
			return matches[i].Percentage > matches[j].Percentage
		}
		return matches[i].Language < matches[j].Language
	})

	return model.CodeMixingReport{
		Scripts:       matches,
		MixingPattern: mixingPattern(matches),
		Authenticity:  authenticityScore(lower, kb),
		UrbanRural:    urbanRural(lower, kb),
	}
}

// mixingPattern 依据存活语言集合查固定组合表
func mixingPattern(matches []model.ScriptMatch) string {
	if len(matches) != 2 {
		return model.PatternCustom
	}
	other := ""
	hasEnglish := false
	for _, m := range matches {
		if m.Language == "English" {
			hasEnglish = true
		} else {
			other = m.Language
		}
	}
	if !hasEnglish {
		return model.PatternCustom
	}
	switch other {
	case "Hindi":
		return model.PatternHinglish
	case "Tamil":
		return model.PatternTanglish
	case "Bengali":
		return model.PatternBanglish
	case "Punjabi":
		return model.PatternPunglish
	default:
		return model.PatternCustom
	}
}

// authenticityScore 基础 50 分，语气词每次出现 +8，封顶 100
func authenticityScore(lower string, kb *knowledge.Base) int {
	score := 50
	for _, particle := range kb.MixParticles {
		score += 8 * strings.Count(lower, particle)
	}
	return clamp(score, 0, 100)
}

func urbanRural(lower string, kb *knowledge.Base) string {
	urban := len(matchTerms(lower, kb.UrbanKeywords))
	rural := len(matchTerms(lower, kb.RuralKeywords))
	switch {
	case urban > rural:
		return "urban"
	case rural > urban:
		return "rural"
	default:
		return "semi-urban"
	}
}
