package sentiment

import (
	"fmt"
	"strings"

	"github.com/bharatpulse/culturesense/pkg/model"
)

// ExtractJSON pulls the first balanced JSON object out of free-form model
// output. Models wrap JSON in prose and code fences despite instructions,
// so the response is treated as untrusted text, never as structured data.
func ExtractJSON(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	start := strings.IndexByte(clean, '{')
	if start < 0 {
		return "", ErrNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(clean); i++ {
		c := clean[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return clean[start : i+1], nil
				}
			}
		}
	}
	return "", ErrNoJSON
}

// normalizeSentiment 校验情感标签，超出枚举视为 schema 违例
func normalizeSentiment(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case model.SentimentPositive:
		return model.SentimentPositive, nil
	case model.SentimentNeutral:
		return model.SentimentNeutral, nil
	case model.SentimentNegative:
		return model.SentimentNegative, nil
	default:
		return "", fmt.Errorf("%w: sentiment %q", ErrInvalidSchema, s)
	}
}

func validScore(v float64) bool      { return v >= 0 && v <= 100 }
func validConfidence(v float64) bool { return v >= 0 && v <= 1 }
