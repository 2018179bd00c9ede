// Package api implements the authenticated request pipeline: it owns the HTTP
// transport, applies headers and the bearer token, and converts every
// non-success response into a typed error.
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-reco-client/apierror"
	"github.com/jrsteele09/go-reco-client/codec"
	"github.com/jrsteele09/go-reco-client/internal/config"
)

// Version is reported in the User-Agent header.
const Version = "1.0.0"

// maxErrorBodySize caps how much of an error response body is read, so a
// misbehaving server cannot force an unbounded allocation.
const maxErrorBodySize = 64 * 1024

// Request describes one API call.
type Request struct {
	Method string
	// Path is relative to the base URL, e.g. "login/root/".
	Path string
	// Query parameters; multi-valued keys expand into repeated key=value
	// pairs in order.
	Query url.Values
	// Body is serialized as JSON when non-nil.
	Body any
	// Public marks endpoints callable without a bearer token (logins).
	Public bool
}

// Pipeline sends API requests over a single HTTP client for the lifetime of
// the owning client instance.
type Pipeline struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	log        zerolog.Logger

	mu     sync.RWMutex
	token  string
	closed bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(p *Pipeline) {
		p.httpClient = httpClient
	}
}

// WithTransport sets a custom transport on the default HTTP client.
func WithTransport(transport http.RoundTripper) Option {
	return func(p *Pipeline) {
		p.httpClient = &http.Client{Transport: transport, Timeout: p.httpClient.Timeout}
	}
}

// WithTimeout bounds each individual network call. It is not a retry policy.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Pipeline) {
		p.httpClient.Timeout = timeout
	}
}

// WithBaseURL overrides the base URL from the environment configuration.
func WithBaseURL(baseURL string) Option {
	return func(p *Pipeline) {
		p.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(p *Pipeline) {
		p.userAgent = userAgent
	}
}

// WithLogger sets the debug logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// New creates a request pipeline with defaults from the environment
// configuration.
func New(cfg config.EnvConfig, options ...Option) (*Pipeline, error) {
	p := &Pipeline{
		httpClient: &http.Client{Timeout: cfg.GetTimeout()},
		baseURL:    strings.TrimRight(cfg.GetBaseURL(), "/"),
		userAgent:  "go-reco-client/" + Version + " (Go; JSON)",
		log:        zerolog.Nop(),
	}
	for _, opt := range options {
		opt(p)
	}
	if p.baseURL == "" {
		return nil, errors.New("[api.New] base URL is required")
	}
	return p, nil
}

// SetToken replaces the bearer token. An empty token clears authentication.
func (p *Pipeline) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
}

// Token returns the current bearer token, empty when unauthenticated.
func (p *Pipeline) Token() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token
}

// HasToken reports whether a bearer token is set.
func (p *Pipeline) HasToken() bool {
	return p.Token() != ""
}

// Close releases the transport. Requests issued after Close fail locally.
func (p *Pipeline) Close() {
	p.mu.Lock()
	alreadyClosed := p.closed
	p.closed = true
	p.mu.Unlock()
	if !alreadyClosed {
		p.httpClient.CloseIdleConnections()
	}
}

func (p *Pipeline) isClosed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

// Do sends one request and decodes a 2xx response into out (which may be nil
// for endpoints without a response body). Failures are always typed: a
// *apierror.Error for remote errors, local preconditions, transport failures
// and cancellation.
func (p *Pipeline) Do(ctx context.Context, req Request, out any) error {
	if p.isClosed() {
		return apierror.LocalPrecondition(apierror.ErrClientClosed)
	}

	token := p.Token()
	if !req.Public && token == "" {
		return apierror.LocalPrecondition(apierror.ErrNoActiveSession)
	}

	if err := ctx.Err(); err != nil {
		return apierror.Cancelled(err)
	}

	httpReq, err := p.buildHTTPRequest(ctx, req, token)
	if err != nil {
		return err
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return apierror.Cancelled(ctxErr)
		}
		return apierror.Transport(err)
	}
	defer resp.Body.Close()

	p.log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return apierror.ClassifyBody(resp.StatusCode, body)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.Transport(err)
	}

	if err := ctx.Err(); err != nil {
		return apierror.Cancelled(err)
	}

	if err := codec.Decode(body, out); err != nil {
		return apierror.Transport(err)
	}
	return nil
}

func (p *Pipeline) buildHTTPRequest(ctx context.Context, req Request, token string) (*http.Request, error) {
	reqURL := p.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		reqURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		data, err := codec.Encode(req.Body)
		if err != nil {
			return nil, apierror.Transport(err)
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, reqURL, bodyReader)
	if err != nil {
		return nil, apierror.Transport(err)
	}

	httpReq.Header.Set("User-Agent", p.userAgent)
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	return httpReq, nil
}
