package svc

import (
	"log"

	"gutlog-api/internal/analysis"
	"gutlog-api/internal/config"
	"gutlog-api/internal/store"
	"gutlog-api/pkg/confkit"
	llmpkg "gutlog-api/pkg/llm"
)

type ServiceContext struct {
	Config config.Config

	Store    *store.Store
	Analyzer *analysis.Analyzer
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{
		Config: c,
		Store:  store.New(confkit.ResolvePath(c.BaseDir(), c.DataFile)),
	}

	// The analyzer is optional: without an LLM section the journaling API
	// still works and the analysis endpoints report the feature as unconfigured.
	if c.LLM.Value != nil {
		client, err := llmpkg.NewClient(c.LLM.Value)
		if err != nil {
			log.Fatalf("failed to init llm client: %v", err)
		}
		analyzer, err := analysis.New(client, c.Analysis.Value)
		if err != nil {
			log.Fatalf("failed to init analyzer: %v", err)
		}
		svc.Analyzer = analyzer
	}

	return svc
}
