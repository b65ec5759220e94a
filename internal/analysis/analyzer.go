// Package analysis turns journal slices into narrative wellness reports by
// rendering a prompt template and asking an LLM for a structured JSON reply.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"gutlog-api/internal/model"
	"gutlog-api/pkg/llm"
)

// Analyzer forwards journal data to a chat-completion model.
type Analyzer struct {
	client llm.LLMClient
	cfg    *Config
	daily  *llm.PromptTemplate
	weekly *llm.PromptTemplate
}

type promptData struct {
	Date string
	Data string
}

// New builds an analyzer over the given client. Prompt files from cfg take
// precedence over the built-in templates.
func New(client llm.LLMClient, cfg *Config) (*Analyzer, error) {
	if cfg == nil {
		cfg = &Config{}
		cfg.applyDefaults()
	}

	daily, err := loadTemplate(cfg.DailyPromptFile, "daily", defaultDailyPrompt)
	if err != nil {
		return nil, err
	}
	weekly, err := loadTemplate(cfg.WeeklyPromptFile, "weekly", defaultWeeklyPrompt)
	if err != nil {
		return nil, err
	}

	return &Analyzer{client: client, cfg: cfg, daily: daily, weekly: weekly}, nil
}

// AnalyzeDaily analyzes a single day's entry.
func (a *Analyzer) AnalyzeDaily(ctx context.Context, date string, entry model.DailyEntry) (*DailyReport, error) {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("analysis: encode entry: %w", err)
	}
	prompt, err := a.daily.Render(promptData{Date: date, Data: string(data)})
	if err != nil {
		return nil, err
	}

	var report DailyReport
	if err := a.ask(ctx, prompt, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// AnalyzeWeekly analyzes a multi-day slice of the journal.
func (a *Analyzer) AnalyzeWeekly(ctx context.Context, doc model.Document) (*WeeklyReport, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("analysis: encode document: %w", err)
	}
	prompt, err := a.weekly.Render(promptData{Data: string(data)})
	if err != nil {
		return nil, err
	}

	var report WeeklyReport
	if err := a.ask(ctx, prompt, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (a *Analyzer) ask(ctx context.Context, prompt string, target interface{}) error {
	req := &llm.ChatRequest{
		Model:               a.cfg.Model,
		MaxCompletionTokens: &a.cfg.MaxCompletionTokens,
		Messages: []llm.Message{
			{Role: "user", Content: prompt},
		},
	}

	resp, err := a.client.Chat(ctx, req)
	if err != nil {
		return fmt.Errorf("analysis: llm call failed: %w", err)
	}
	if resp.Text() == "" {
		return fmt.Errorf("analysis: empty model response")
	}
	if err := llm.ParseStructured(resp.Text(), target); err != nil {
		return fmt.Errorf("analysis: model returned unstructured text: %w", err)
	}
	return nil
}

func loadTemplate(path, name, fallback string) (*llm.PromptTemplate, error) {
	if path != "" {
		return llm.NewPromptTemplate(path, nil)
	}
	return llm.NewPromptTemplateFromString(name, fallback, nil)
}
