package main

import (
	"flag"
	"fmt"

	"gutlog-api/internal/cli"
	"gutlog-api/internal/config"
	"gutlog-api/internal/handler"
	"gutlog-api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/gutlog.yaml", "the config file")

func main() {
	flag.Parse()

	cfg := config.MustLoad(*configFile)
	cli.LogConfigSummary(cfg)

	server := rest.MustNewServer(cfg.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(*cfg)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", cfg.Host, cfg.Port)
	server.Start()
}
