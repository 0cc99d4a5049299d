// Package ai holds the single outbound hop to the LLM gateway. One request
// per call, no retries: a failed run surfaces to the caller, and retrying is
// a UI decision.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"journal-server/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Fixed sampling parameters for the extraction task. Low temperature keeps
// the JSON shape stable; 1000 tokens comfortably covers eight short fields.
const (
	completionTemperature = 0.3
	completionMaxTokens   = 1000
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_ai_requests_total",
			Help: "Total number of requests to the AI gateway.",
		},
		[]string{"model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "journal_ai_request_duration_seconds",
			Help:    "Histogram of AI gateway request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
	aiTotalTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "journal_ai_total_tokens",
			Help:    "Histogram of total token counts (prompt + completion).",
			Buckets: prometheus.LinearBuckets(250, 250, 20),
		},
		[]string{"model"},
	)
)

// Usage reports token consumption for one completion, when the gateway
// includes it.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Result is the raw content of one completion plus optional usage info.
type Result struct {
	Content string
	Usage   *Usage
}

// Client issues chat completions against the configured gateway.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*Result, error)
}

// Config holds gateway client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type gatewayClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a gateway client. A missing credential is a construction
// error so misconfiguration surfaces at startup instead of on the first
// request.
func NewClient(cfg Config, logger *zap.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("AI gateway API key is not configured")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT3Dot5Turbo
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &gatewayClient{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger.Named("AIClient"),
	}, nil
}

// Complete sends exactly one chat-completion request. Non-2xx responses map
// to the pipeline error taxonomy by status class; transport failures and
// malformed envelopes map to model.ErrAIUnavailable.
func (c *gatewayClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		mapped := mapGatewayError(err)
		c.logger.Warn("AI gateway request failed",
			zap.String("model", c.model),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error"}).Inc()
		return nil, mapped
	}

	aiRequestDuration.With(prometheus.Labels{"model": c.model}).Observe(duration.Seconds())

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.logger.Warn("AI gateway returned empty response", zap.String("model", c.model))
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_empty_response"}).Inc()
		return nil, fmt.Errorf("%w: empty response from gateway", model.ErrAIUnavailable)
	}

	aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "success"}).Inc()

	result := &Result{Content: resp.Choices[0].Message.Content}
	if resp.Usage.TotalTokens > 0 {
		result.Usage = &Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
		aiTotalTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(resp.Usage.TotalTokens))
	}

	c.logger.Debug("AI gateway request completed",
		zap.String("model", c.model),
		zap.Duration("duration", duration),
		zap.Int("contentBytes", len(result.Content)),
	)
	return result, nil
}

// mapGatewayError translates go-openai errors into the pipeline taxonomy.
// Raw provider detail stays in the wrapped error for logs; only the sentinel
// message ever reaches a user.
func mapGatewayError(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %v", model.ErrAINotConfigured, err)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", model.ErrAIRateLimited, err)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %v", model.ErrAIUpstream, err)
	default:
		return fmt.Errorf("%w: %v", model.ErrAIUnavailable, err)
	}
}
