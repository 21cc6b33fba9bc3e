// Package api is the HTTP client for the staffing backend.
//
// Every call sends and accepts JSON, runs inside a trace span, and reports
// failures as *Error matching ErrRequestFailed. The client never retries.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/staffdesk/internal/platform/timeouts"
)

const tracerName = "github.com/louisbranch/staffdesk/internal/services/console/api"

// Client calls the staffing backend.
type Client struct {
	http    fastshot.ClientHttpMethods
	tracer  trace.Tracer
	baseURL string
}

type options struct {
	timeout time.Duration
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*options)

// WithTimeout bounds each request, including reading the response.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		if tracer != nil {
			o.tracer = tracer
		}
	}
}

// New builds a client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q must use http or https", baseURL)
	}

	o := options{timeout: timeouts.APIRequest}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}

	httpClient := fastshot.NewClient(baseURL).
		Config().SetTimeout(o.timeout).
		Header().Add("Content-Type", "application/json").
		Header().Add("Accept", "application/json").
		Build()

	return &Client{http: httpClient, tracer: o.tracer, baseURL: baseURL}, nil
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// call issues one request and returns the raw response body on 2xx.
func (c *Client) call(ctx context.Context, op, method, path string, body any) (payload []byte, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := c.tracer.Start(ctx, "staffdesk.api."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var builder *fastshot.RequestBuilder
	switch method {
	case http.MethodGet:
		builder = c.http.GET(path)
	case http.MethodPost:
		builder = c.http.POST(path)
	case http.MethodPut:
		builder = c.http.PUT(path)
	case http.MethodDelete:
		builder = c.http.DELETE(path)
	default:
		return nil, &Error{Op: op, Message: "unsupported method " + method}
	}
	builder = builder.Context().Set(ctx)
	if body != nil {
		builder = builder.Body().AsJSON(body)
	}

	resp, err := builder.Send()
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	defer resp.Body().Close()

	status := resp.Status().Code()
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	raw, err := resp.Body().AsBytes()
	if err != nil {
		return nil, &Error{Op: op, Status: status, Message: "read response body", Err: err}
	}
	if status < 200 || status > 299 {
		message := strings.TrimSpace(string(raw))
		if message == "" {
			message = http.StatusText(status)
		}
		return nil, &Error{Op: op, Status: status, Message: message}
	}
	if isEnvelope(raw) {
		return nil, &Error{Op: op, Status: status, Err: ErrUnexpectedEnvelope}
	}
	return raw, nil
}

// fetch calls the backend and decodes a JSON body into out.
func (c *Client) fetch(ctx context.Context, op, method, path string, body any, out any) error {
	raw, err := c.call(ctx, op, method, path, body)
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Op: op, Message: "decode response", Err: err}
	}
	return nil
}

func resourcePath(collection string, id fmt.Stringer, sub ...string) string {
	parts := []string{"", collection, url.PathEscape(id.String())}
	parts = append(parts, sub...)
	return strings.Join(parts, "/")
}
