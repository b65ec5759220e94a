// Command analyze runs a one-off wellness analysis from the terminal without
// starting the HTTP server: `analyze -mode daily -date 2024-01-15` or
// `analyze -mode weekly -days 7`.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"gutlog-api/internal/cli"
	"gutlog-api/internal/config"
	"gutlog-api/internal/model"
	"gutlog-api/internal/svc"
)

func main() {
	var (
		configFile = flag.String("f", "etc/gutlog.yaml", "the config file")
		mode       = flag.String("mode", "daily", "analysis mode: daily or weekly")
		date       = flag.String("date", "", "date to analyze in daily mode (default today)")
		days       = flag.Int("days", 0, "window for weekly mode (default from config)")
		timeout    = flag.Duration("timeout", 2*time.Minute, "overall deadline for the model call")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fail("load config: %v", err)
	}
	cli.LogConfigSummary(cfg)

	svcCtx := svc.NewServiceContext(*cfg)
	if svcCtx.Analyzer == nil {
		fail("analysis is not configured: set the llm section and OPENAI_API_KEY")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var report any
	switch *mode {
	case "daily":
		key := *date
		if key == "" {
			key = svcCtx.Store.Today()
		}
		if err := model.ValidateDate(key); err != nil {
			fail("%v", err)
		}
		entry, ok := svcCtx.Store.Entry(key)
		if !ok {
			fail("no entry recorded for %s", key)
		}
		report, err = svcCtx.Analyzer.AnalyzeDaily(ctx, key, entry)
	case "weekly":
		window := *days
		if window <= 0 {
			window = cfg.RangeDays
		}
		doc := svcCtx.Store.DateRange(window)
		if len(doc) == 0 {
			fail("no entries recorded in the last %d days", window)
		}
		report, err = svcCtx.Analyzer.AnalyzeWeekly(ctx, doc)
	default:
		fail("unknown mode %q: want daily or weekly", *mode)
	}
	if err != nil {
		fail("analysis failed: %v", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fail("encode report: %v", err)
	}
	fmt.Println(string(out))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
