package sentiment

import (
	"errors"
	"testing"
)

func TestExtractJSONFromProse(t *testing.T) {
	raw := `Sure! Here is the analysis you asked for:
{"culturalScore": 80, "note": "has {braces} inside", "nested": {"a": 1}}
Hope that helps.`

	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	want := `{"culturalScore": 80, "note": "has {braces} inside", "nested": {"a": 1}}`
	if got != want {
		t.Errorf("ExtractJSON() = %q, want %q", got, want)
	}
}

func TestExtractJSONStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"sentiment\": \"positive\"}\n```"
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if got != `{"sentiment": "positive"}` {
		t.Errorf("ExtractJSON() = %q", got)
	}
}

func TestExtractJSONBraceInString(t *testing.T) {
	raw := `{"a": "closing brace in string } should not end the scan", "b": 2}`
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if got != raw {
		t.Errorf("ExtractJSON() = %q, want the full object", got)
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	if _, err := ExtractJSON("the model refused to answer"); !errors.Is(err, ErrNoJSON) {
		t.Errorf("ExtractJSON() error = %v, want ErrNoJSON", err)
	}
}

func TestExtractJSONUnbalanced(t *testing.T) {
	if _, err := ExtractJSON(`{"a": {"b": 1}`); !errors.Is(err, ErrNoJSON) {
		t.Errorf("ExtractJSON() error = %v, want ErrNoJSON for unbalanced braces", err)
	}
}

func TestNormalizeSentiment(t *testing.T) {
	if s, err := normalizeSentiment(" Positive "); err != nil || s != "positive" {
		t.Errorf("normalizeSentiment = %q, %v", s, err)
	}
	if _, err := normalizeSentiment("ecstatic"); err == nil {
		t.Error("normalizeSentiment should reject labels outside the enum")
	}
}
