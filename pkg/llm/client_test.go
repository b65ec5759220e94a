package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		DefaultModel: "gpt-4o-mini",
		Timeout:      5 * time.Second,
		MaxRetries:   1,
		LogLevel:     "error",
	}
}

func TestClientChat(t *testing.T) {
	var (
		mu        sync.Mutex
		lastBody  []byte
		lastPath  string
		callCount int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		callCount++
		lastPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		lastBody = body

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"chatcmpl-1",
			"object":"chat.completion",
			"created":1730366400,
			"model":"gpt-4o-mini",
			"choices":[
				{
					"index":0,
					"finish_reason":"stop",
					"logprobs":null,
					"message":{
						"role":"assistant",
						"content":"Hello from test",
						"tool_calls":[]
					}
				}
			],
			"usage":{
				"prompt_tokens":10,
				"completion_tokens":12,
				"total_tokens":22
			}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	resp, err := client.Chat(ctx, &ChatRequest{
		Messages: []Message{
			{Role: "user", Content: "hi"},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "gpt-4o-mini", resp.Model)
	require.Len(t, resp.Choices, 1)
	require.Equal(t, "Hello from test", resp.Choices[0].Message.Content)
	require.Equal(t, 22, resp.Usage.TotalTokens)
	require.Equal(t, "Hello from test", resp.Text())

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, "/chat/completions", lastPath)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(lastBody, &payload))
	require.Equal(t, "gpt-4o-mini", payload["model"])
	require.Equal(t, 1, callCount)
}

func TestClientChatModelAlias(t *testing.T) {
	var captured map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"chatcmpl-2",
			"object":"chat.completion",
			"created":1730366400,
			"model":"openai/gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","logprobs":null,"message":{"role":"assistant","content":"ok","tool_calls":[]}}],
			"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2}
		}`))
	}))
	defer server.Close()

	temp := 0.2
	cfg := testConfig(server.URL)
	cfg.DefaultModel = "journal"
	cfg.Models = map[string]ModelConfig{
		"journal": {
			ModelName:   "openai/gpt-4o-mini",
			Temperature: &temp,
		},
	}

	client, err := NewClient(cfg, WithHTTPClient(server.Client()))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	require.Equal(t, "openai/gpt-4o-mini", captured["model"])
	require.InDelta(t, 0.2, captured["temperature"].(float64), 0.0001)
}

func TestClientChatStructured(t *testing.T) {
	var captured map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"chatcmpl-structured",
			"object":"chat.completion",
			"created":1730366400,
			"model":"gpt-4o-mini",
			"choices":[
				{
					"index":0,
					"finish_reason":"stop",
					"logprobs":null,
					"message":{
						"role":"assistant",
						"content":"{\"wellness_score\":72,\"summary\":\"Stable day\"}",
						"tool_calls":[]
					}
				}
			],
			"usage":{
				"prompt_tokens":12,
				"completion_tokens":20,
				"total_tokens":32
			}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	type report struct {
		WellnessScore int    `json:"wellness_score"`
		Summary       string `json:"summary"`
	}

	var out report
	err = client.ChatStructured(ctx, &ChatRequest{
		Messages: []Message{
			{Role: "system", Content: "You are a wellness assistant."},
			{Role: "user", Content: "Score my day."},
		},
	}, &out)
	require.NoError(t, err)

	require.Equal(t, 72, out.WellnessScore)
	require.Equal(t, "Stable day", out.Summary)

	responseFormat, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, responseFormat, "json_schema")
}

func TestClientChatValidation(t *testing.T) {
	client, err := NewClient(testConfig("https://api.example.com"))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Chat(context.Background(), nil)
	require.Error(t, err)

	_, err = client.Chat(context.Background(), &ChatRequest{})
	require.ErrorContains(t, err, "at least one message")

	err = client.ChatStructured(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	}, nil)
	require.Error(t, err)

	var notPtr struct{}
	err = client.ChatStructured(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	}, notPtr)
	require.ErrorContains(t, err, "pointer")
}

func TestClientOptions(t *testing.T) {
	cfg := testConfig("https://api.example.com")

	t.Run("WithLogger", func(t *testing.T) {
		customLogger := NewLogger("debug")
		client, err := NewClient(cfg, WithLogger(customLogger))
		require.NoError(t, err)
		defer client.Close()

		require.Equal(t, customLogger, client.logger)
	})

	t.Run("WithRetryHandler", func(t *testing.T) {
		customRetry := NewRetryHandler(RetryConfig{MaxRetries: 5})
		client, err := NewClient(cfg, WithRetryHandler(customRetry))
		require.NoError(t, err)
		defer client.Close()

		require.Equal(t, customRetry, client.retryHandler)
	})

	t.Run("WithHTTPClient", func(t *testing.T) {
		customHTTPClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(cfg, WithHTTPClient(customHTTPClient))
		require.NoError(t, err)
		defer client.Close()

		require.NotNil(t, client.httpClient)
	})
}

func TestGetConfig(t *testing.T) {
	cfg := testConfig("https://api.example.com")

	client, err := NewClient(cfg)
	require.NoError(t, err)
	defer client.Close()

	returnedCfg := client.GetConfig()
	require.NotNil(t, returnedCfg)
	require.Equal(t, cfg.BaseURL, returnedCfg.BaseURL)
	require.Equal(t, cfg.APIKey, returnedCfg.APIKey)
	require.Equal(t, cfg.DefaultModel, returnedCfg.DefaultModel)

	// Verify it's a clone, not the original
	require.NotSame(t, cfg, returnedCfg)
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(nil)
	require.Error(t, err)

	_, err = NewClient(&Config{BaseURL: "https://api.example.com", Timeout: time.Second})
	require.ErrorContains(t, err, "api_key")
}
