package main

import (
	"context"
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/bharatpulse/culturesense/internal/server"
	"github.com/bharatpulse/culturesense/pkg/config"
	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/logger"
	"github.com/bharatpulse/culturesense/pkg/pipeline"
	"github.com/bharatpulse/culturesense/pkg/sentiment"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name 是服务的名称
	Name string = "culturesense"
	// Version 是服务的版本号
	Version string
	// flagconf 是配置文件的路径命令行参数
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(flagconf)
	if err != nil {
		panic(err)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		panic(err)
	}

	// 知识库在进程启动时加载；表缺失或非法在此即失败
	base, err := knowledge.Load(cfg.Knowledge.Overlay)
	if err != nil {
		panic(err)
	}
	holder := knowledge.NewHolder(base)

	chain, err := sentiment.NewChain(context.Background(), cfg, holder.Current, logger.Log)
	if err != nil {
		panic(err)
	}
	pipe := pipeline.New(holder, chain, logger.Log)

	klogger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	svc := server.NewAnalyzeService(pipe, holder, cfg.Knowledge.Overlay, klogger)
	httpSrv := server.NewHTTPServer(&cfg.Server, svc, klogger)

	app := kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Logger(klogger),
		kratos.Server(httpSrv),
	)

	if err := app.Run(); err != nil {
		panic(err)
	}
}
