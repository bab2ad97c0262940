package sentiment

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/bharatpulse/culturesense/pkg/config"
	"github.com/bharatpulse/culturesense/pkg/knowledge"
)

// Chain 按配置顺序逐层尝试，层内不重试
type Chain struct {
	providers []Provider
	log       *logrus.Logger
}

// NewChain builds the provider chain from config. Adding, removing or
// reordering tiers is a configuration change; the local heuristic is always
// the terminal tier.
func NewChain(ctx context.Context, cfg *config.Config, snapshot func() *knowledge.Base, log *logrus.Logger) (*Chain, error) {
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.Concurrency.RPM)/60.0), cfg.Concurrency.QPS)

	var providers []Provider
	for _, name := range cfg.Providers.Order {
		switch name {
		case "primary":
			p, err := NewPrimary(ctx, cfg.Providers.Primary, limiter)
			if err != nil {
				return nil, err
			}
			providers = append(providers, p)
		case "secondary":
			providers = append(providers, NewSecondary(cfg.Providers.Secondary, limiter))
		case "local":
			providers = append(providers, NewLocal(snapshot))
		default:
			return nil, fmt.Errorf("unknown sentiment provider: %s", name)
		}
	}

	if len(providers) == 0 || providers[len(providers)-1].Name() != "local" {
		providers = append(providers, NewLocal(snapshot))
	}

	return &Chain{providers: providers, log: log}, nil
}

// NewChainOf 以显式的层级列表构建链路，便于测试与复用
func NewChainOf(log *logrus.Logger, providers ...Provider) *Chain {
	return &Chain{providers: providers, log: log}
}

// Analyze 依次尝试各层直到成功；远端失败被吸收，调用方取消例外
func (c *Chain) Analyze(ctx context.Context, text, region string) (*Result, error) {
	var lastErr error
	for _, p := range c.providers {
		start := time.Now()
		res, err := p.Analyze(ctx, text, region)
		latency := time.Since(start).Milliseconds()

		if err != nil {
			c.log.WithFields(logrus.Fields{
				"provider":   p.Name(),
				"latency_ms": latency,
				"outcome":    "failure",
			}).Warnf("sentiment tier failed: %v", err)
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		c.log.WithFields(logrus.Fields{
			"provider":   p.Name(),
			"latency_ms": latency,
			"outcome":    "success",
		}).Debug("sentiment tier succeeded")
		return res, nil
	}
	return nil, fmt.Errorf("all sentiment tiers failed: %w", lastErr)
}
