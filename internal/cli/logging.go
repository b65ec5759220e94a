package cli

import (
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/config"
	"gutlog-api/pkg/confkit"
)

// ConfigSummaryLines returns human readable lines describing the loaded app config.
func ConfigSummaryLines(cfg *config.Config) []string {
	if cfg == nil {
		return []string{"Configuration: <nil>"}
	}

	return []string{
		fmt.Sprintf("Environment: %s", cfg.Env),
		fmt.Sprintf("Data file: %s", cfg.DataFile),
		fmt.Sprintf("Range days: %d", cfg.RangeDays),
		fmt.Sprintf("Trigger threshold: %d", cfg.TriggerThreshold),
		sectionLine("LLM config", cfg.LLM),
		sectionLine("Analysis config", cfg.Analysis),
	}
}

// LogConfigSummary emits the configuration summary using logx.
func LogConfigSummary(cfg *config.Config) {
	lines := ConfigSummaryLines(cfg)
	if len(lines) == 0 {
		return
	}
	logx.Info("configuration summary")
	for _, line := range lines {
		logx.Infof("config • %s", line)
	}
}

func sectionLine[T any](name string, section confkit.Section[T]) string {
	switch {
	case strings.TrimSpace(section.File) != "":
		return fmt.Sprintf("%s: %s", name, section.File)
	case section.Value != nil:
		return fmt.Sprintf("%s: inline", name)
	default:
		return fmt.Sprintf("%s: not configured", name)
	}
}
