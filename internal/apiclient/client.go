package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	maxBodyBytes = 10 << 20
	maxLogBody   = 512
	tracerName   = "github.com/ashokan1984/CorporatePassBookingReactApp/internal/apiclient"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, e.g. to attach
// credentials through a custom RoundTripper.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client is the single way the console talks to the booking API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
	tracer  trace.Tracer
}

func New(cfg Config, log logger.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  log,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs one round trip. body, when non-nil, is sent as JSON; a
// successful response is decoded into out, when non-nil.
//
// The returned error wraps one of domain.ErrUnavailable, domain.ErrRejected,
// domain.ErrEmptyResponse or domain.ErrMalformedResponse.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, method+" "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	err := c.do(ctx, span, method, path, body, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) do(ctx context.Context, span trace.Span, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.full", target),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.LogAttrs(ctx, logger.WarnLevel, "booking api unreachable",
			logger.String("method", method),
			logger.String("path", path),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %s %s: %w", domain.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s %s response: %w", domain.ErrUnavailable, method, path, err)
	}

	if !IsSuccess(resp.StatusCode) {
		c.logger.LogAttrs(ctx, logger.WarnLevel, "booking api rejected request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", resp.StatusCode),
			logger.String("body", truncate(string(data), maxLogBody)),
		)
		return &StatusError{Method: method, Path: path, Status: resp.StatusCode, Body: string(data)}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		c.logger.LogAttrs(ctx, logger.ErrorLevel, "booking api returned empty body",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: %s %s", domain.ErrEmptyResponse, method, path)
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrMalformedResponse, method, path, err)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
