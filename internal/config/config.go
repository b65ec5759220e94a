package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	"gutlog-api/internal/analysis"
	"gutlog-api/pkg/confkit"
	llmpkg "gutlog-api/pkg/llm"
)

// Config is the main service configuration loaded from etc/gutlog.yaml.
type Config struct {
	rest.RestConf
	// Env indicates the running environment: test | dev | prod.
	Env string `json:",default=dev"`
	// DataFile is the JSON document backing the journal.
	DataFile string `json:",default=data/gutlog.json"`
	// RangeDays is the default window for range queries and weekly analysis.
	RangeDays int `json:",default=7"`
	// TriggerThreshold is the default severity cutoff for trigger days.
	TriggerThreshold int `json:",default=6"`

	LLM      confkit.Section[llmpkg.Config]   `json:",optional"`
	Analysis confkit.Section[analysis.Config] `json:",optional"`

	mainPath string
	baseDir  string
}

func (c *Config) IsTestEnv() bool {
	return c.Env == "test"
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.hydrateSections(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "test", "dev", "prod":
	case "":
		c.Env = "dev"
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("config: dataFile is required")
	}
	if c.RangeDays <= 0 {
		return errors.New("config: rangeDays must be positive")
	}
	if c.TriggerThreshold < 1 || c.TriggerThreshold > 10 {
		return errors.New("config: triggerThreshold must be within 1..10")
	}
	return nil
}

func (c *Config) hydrateSections() error {
	if err := c.LLM.Hydrate(c.baseDir, llmpkg.LoadConfig); err != nil {
		return fmt.Errorf("load llm config: %w", err)
	}
	if err := c.Analysis.Hydrate(c.baseDir, analysis.LoadConfig); err != nil {
		return fmt.Errorf("load analysis config: %w", err)
	}
	return nil
}

func (c *Config) MainPath() string {
	return c.mainPath
}

func (c *Config) BaseDir() string {
	return c.baseDir
}
