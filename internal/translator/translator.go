// Package translator is a client for the Azure Translator text API (v3.0).
package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultEndpoint is the global Azure Translator endpoint.
	DefaultEndpoint = "https://api.cognitive.microsofttranslator.com/"

	// DefaultTimeout bounds a single translate call.
	DefaultTimeout = 30 * time.Second

	// APIVersion is sent as the api-version query parameter.
	APIVersion = "3.0"
)

// Header names used by the Azure Translator API.
const (
	headerKey     = "Ocp-Apim-Subscription-Key"
	headerRegion  = "Ocp-Apim-Subscription-Region"
	headerTraceID = "X-ClientTraceId"
)

// Translator translates a single piece of text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Config holds the credentials for a Client. It is read once by New.
type Config struct {
	Key      string
	Region   string
	Endpoint string
	Timeout  time.Duration
}

// Request is a single translation unit.
type Request struct {
	Text       string
	TargetLang string
	// SourceLang is optional; the service detects the language when empty.
	SourceLang string
}

// Response is the first translation returned for a Request.
type Response struct {
	TranslatedText string
	TargetLang     string
	DetectedLang   string
}

type inputItem struct {
	Text string `json:"Text"`
}

type translateResult struct {
	DetectedLanguage *struct {
		Language string  `json:"language"`
		Score    float64 `json:"score"`
	} `json:"detectedLanguage,omitempty"`
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// Client calls the translate operation of the Azure Translator API.
type Client struct {
	key      string
	region   string
	endpoint string
	http     *resty.Client
	logger   *zap.Logger
}

var _ Translator = (*Client)(nil)

// New validates cfg and creates a Client.
// Region is optional; Key and Endpoint are required.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("%w: subscription key is required", ErrConfiguration)
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint is required", ErrConfiguration)
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: endpoint %q is not an absolute http(s) URL", ErrConfiguration, cfg.Endpoint)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		key:      cfg.Key,
		region:   cfg.Region,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		http:     resty.New().SetTimeout(timeout),
		logger:   logger,
	}, nil
}

// Translate translates text into targetLang and returns the first translation.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	resp, err := c.TranslateRequest(ctx, Request{Text: text, TargetLang: targetLang})
	if err != nil {
		return "", err
	}
	return resp.TranslatedText, nil
}

// TranslateRequest sends req as the only element of one translate call.
func (c *Client) TranslateRequest(ctx context.Context, req Request) (*Response, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("%w: text is empty", ErrInvalidInput)
	}
	if req.TargetLang == "" {
		return nil, fmt.Errorf("%w: target language is empty", ErrInvalidInput)
	}

	traceID := uuid.NewString()
	logger := c.logger.With(
		zap.String("trace_id", traceID),
		zap.String("to", req.TargetLang),
		zap.Int("chars", len(req.Text)),
	)

	r := c.http.R().
		SetContext(ctx).
		SetHeader(headerKey, c.key).
		SetHeader(headerTraceID, traceID).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("api-version", APIVersion).
		SetQueryParam("to", req.TargetLang).
		SetBody([]inputItem{{Text: req.Text}})
	if c.region != "" {
		r.SetHeader(headerRegion, c.region)
	}
	if req.SourceLang != "" {
		r.SetQueryParam("from", req.SourceLang)
	}

	logger.Debug("Sending translate request")

	resp, err := r.Post(c.endpoint + "/translate")
	if err != nil {
		logger.Error("Translate request failed", zap.Error(err))
		return nil, &RemoteError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		remoteErr := newStatusError(resp.StatusCode(), resp.Body())
		logger.Error("Translate request rejected",
			zap.Int("status", remoteErr.StatusCode),
			zap.String("message", remoteErr.Message),
		)
		return nil, remoteErr
	}

	var results []translateResult
	if err := json.Unmarshal(resp.Body(), &results); err != nil {
		logger.Error("Failed to decode translate response", zap.Error(err))
		return nil, &RemoteError{
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	if len(results) == 0 || len(results[0].Translations) == 0 {
		logger.Warn("Translate response carried no translations")
		return nil, ErrEmptyResponse
	}

	first := results[0]
	out := &Response{
		TranslatedText: first.Translations[0].Text,
		TargetLang:     first.Translations[0].To,
	}
	if first.DetectedLanguage != nil {
		out.DetectedLang = first.DetectedLanguage.Language
	}

	logger.Debug("Translate request succeeded", zap.String("detected", out.DetectedLang))
	return out, nil
}
