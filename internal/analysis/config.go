package analysis

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config selects the model and prompt sources for the analyzer.
type Config struct {
	Model               string `yaml:"model"`
	MaxCompletionTokens int    `yaml:"max_completion_tokens"`
	// Optional template file overrides; built-in prompts are used when empty.
	DailyPromptFile  string `yaml:"daily_prompt_file"`
	WeeklyPromptFile string `yaml:"weekly_prompt_file"`
}

// LoadConfig reads analyzer configuration from disk.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read analysis config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal analysis config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Model) == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.MaxCompletionTokens <= 0 {
		c.MaxCompletionTokens = 1000
	}
}
