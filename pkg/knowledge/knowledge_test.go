package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	if _, err := Load(""); err != nil {
		t.Fatalf("Load() with defaults error = %v", err)
	}
}

func TestLoadOverlayReplacesTables(t *testing.T) {
	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	content := "version: \"test-overlay\"\nviral_keywords:\n  - custom viral word\n"
	if err := os.WriteFile(overlay, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	base, err := Load(overlay)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if base.Version != "test-overlay" {
		t.Errorf("Version = %q, want test-overlay", base.Version)
	}
	if len(base.ViralKeywords) != 1 || base.ViralKeywords[0] != "custom viral word" {
		t.Errorf("ViralKeywords = %v, overlay should replace the table", base.ViralKeywords)
	}
	// 未覆盖的表保持默认
	if len(base.Festivals) == 0 {
		t.Error("Festivals should keep defaults when not overridden")
	}
}

func TestLoadRejectsInvalidFestivalMonth(t *testing.T) {
	overlay := filepath.Join(t.TempDir(), "bad.yaml")
	content := "festivals:\n  - name: Broken\n    months: [13]\n    importance: 0.5\n    sentiment_boost: 0.5\n"
	if err := os.WriteFile(overlay, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(overlay); err == nil {
		t.Error("Load() should reject month 13")
	}
}

func TestLoadRejectsUnknownSensitiveCategory(t *testing.T) {
	overlay := filepath.Join(t.TempDir(), "bad.yaml")
	content := "sensitive_topics:\n  - term: x\n    risk_weight: 10\n    category: economic\n    description: d\n"
	if err := os.WriteFile(overlay, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(overlay); err == nil {
		t.Error("Load() should reject unknown category")
	}
}

func TestHolderSwap(t *testing.T) {
	first := Defaults()
	holder := NewHolder(first)
	if holder.Current() != first {
		t.Fatal("Current() should return the initial snapshot")
	}

	second := Defaults()
	second.Version = "next"
	holder.Swap(second)
	if holder.Current().Version != "next" {
		t.Errorf("Current().Version = %q, want next", holder.Current().Version)
	}
}
