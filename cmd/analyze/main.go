// 一次性分析命令：读取配置，对单条文本跑完整流水线并输出 JSON 报告
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/bharatpulse/culturesense/pkg/config"
	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/logger"
	"github.com/bharatpulse/culturesense/pkg/model"
	"github.com/bharatpulse/culturesense/pkg/pipeline"
	"github.com/bharatpulse/culturesense/pkg/sentiment"
)

func main() {
	var (
		flagconf = flag.String("conf", "configs/config.yaml", "config path")
		text     = flag.String("text", "", "text to analyze")
		region   = flag.String("region", "North India", "target region")
		language = flag.String("language", "hi", "language hint")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(*flagconf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	base, err := knowledge.Load(cfg.Knowledge.Overlay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load knowledge: %v\n", err)
		os.Exit(1)
	}
	holder := knowledge.NewHolder(base)

	ctx := context.Background()
	chain, err := sentiment.NewChain(ctx, cfg, holder.Current, logger.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build sentiment chain: %v\n", err)
		os.Exit(1)
	}

	pipe := pipeline.New(holder, chain, logger.Log)
	result, err := pipe.Analyze(ctx, model.AnalysisRequest{
		Text:     *text,
		Region:   *region,
		Language: *language,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
