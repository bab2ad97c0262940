package sentiment

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
)

type stubProvider struct {
	name  string
	res   *Result
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Analyze(context.Context, string, string) (*Result, error) {
	s.calls++
	return s.res, s.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestChainPrimarySuccessSkipsRest(t *testing.T) {
	primary := &stubProvider{name: "primary", res: &Result{CulturalScore: 80, Sentiment: model.SentimentPositive, Confidence: 0.9, Provider: "primary", AIPowered: true}}
	secondary := &stubProvider{name: "secondary"}
	chain := NewChainOf(quietLogger(), primary, secondary)

	res, err := chain.Analyze(context.Background(), "text", "North India")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Provider != "primary" {
		t.Errorf("Provider = %q, want primary", res.Provider)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary.calls = %d, later tiers must not run after success", secondary.calls)
	}
}

func TestChainPrimaryFailureFallsToSecondary(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("connection refused")}
	secondary := &stubProvider{name: "secondary", res: &Result{CulturalScore: 70, Sentiment: model.SentimentNeutral, Confidence: 0.8, Provider: "secondary", AIPowered: true}}
	chain := NewChainOf(quietLogger(), primary, secondary)

	res, err := chain.Analyze(context.Background(), "text", "North India")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Provider != "secondary" {
		t.Errorf("Provider = %q, want secondary", res.Provider)
	}
	if primary.calls != 1 {
		t.Errorf("primary.calls = %d, want exactly one attempt per tier", primary.calls)
	}
}

func TestChainBothRemotesFailLocalWins(t *testing.T) {
	kb := knowledge.Defaults()
	primary := &stubProvider{name: "primary", err: errors.New("timeout")}
	secondary := &stubProvider{name: "secondary", err: errors.New("bad json")}
	chain := NewChainOf(quietLogger(), primary, secondary, NewLocal(func() *knowledge.Base { return kb }))

	res, err := chain.Analyze(context.Background(), "Diwali ki shubhkamnaye", "North India")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Provider != "local" {
		t.Errorf("Provider = %q, want local", res.Provider)
	}
	if res.AIPowered {
		t.Error("AIPowered should be false on the heuristic tier")
	}
	if res.Confidence >= 0.95 {
		t.Errorf("Confidence = %v, heuristic tier must stay below 0.95", res.Confidence)
	}
}

func TestChainCanceledContextPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := &stubProvider{name: "primary", err: context.Canceled}
	local := &stubProvider{name: "local", res: &Result{Provider: "local"}}
	chain := NewChainOf(quietLogger(), primary, local)

	if _, err := chain.Analyze(ctx, "text", "North India"); !errors.Is(err, context.Canceled) {
		t.Errorf("Analyze() error = %v, want context.Canceled", err)
	}
	if local.calls != 0 {
		t.Error("canceled request must not fall through to later tiers")
	}
}
