// Package client implements the recommendation API client: session and token
// lifecycle, transparent token-refresh retry, and the full endpoint surface.
package client

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-reco-client/api"
	"github.com/jrsteele09/go-reco-client/apierror"
	"github.com/jrsteele09/go-reco-client/internal/config"
	"github.com/jrsteele09/go-reco-client/models"
)

// Client is a session-holding client for the recommendation API. One Client
// holds one logical session; create separate instances for separate sessions.
type Client struct {
	pipeline  *api.Pipeline
	log       zerolog.Logger
	chunkSize int

	// refreshMu coalesces concurrent token refreshes; a caller that loses the
	// race rechecks the token and skips its own refresh.
	refreshMu sync.Mutex

	mu           sync.RWMutex
	refreshToken string
	database     *models.Database
	loginName    string
}

// Option configures a Client.
type Option func(*clientSettings)

type clientSettings struct {
	pipelineOptions []api.Option
	log             zerolog.Logger
	chunkSize       int
}

// WithBaseURL overrides the API base URL from the environment configuration.
func WithBaseURL(baseURL string) Option {
	return func(s *clientSettings) {
		s.pipelineOptions = append(s.pipelineOptions, api.WithBaseURL(baseURL))
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *clientSettings) {
		s.pipelineOptions = append(s.pipelineOptions, api.WithHTTPClient(httpClient))
	}
}

// WithTransport sets a custom transport on the default HTTP client.
func WithTransport(transport http.RoundTripper) Option {
	return func(s *clientSettings) {
		s.pipelineOptions = append(s.pipelineOptions, api.WithTransport(transport))
	}
}

// WithTimeout bounds each individual network call.
func WithTimeout(timeout time.Duration) Option {
	return func(s *clientSettings) {
		s.pipelineOptions = append(s.pipelineOptions, api.WithTimeout(timeout))
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(s *clientSettings) {
		s.pipelineOptions = append(s.pipelineOptions, api.WithUserAgent(userAgent))
	}
}

// WithLogger enables debug logging of requests and session transitions.
func WithLogger(log zerolog.Logger) Option {
	return func(s *clientSettings) {
		s.log = log
		s.pipelineOptions = append(s.pipelineOptions, api.WithLogger(log))
	}
}

// WithChunkSize sets the default number of records per bulk request.
func WithChunkSize(chunkSize int) Option {
	return func(s *clientSettings) {
		s.chunkSize = chunkSize
	}
}

// New creates a Client with defaults from the environment configuration.
func New(options ...Option) (*Client, error) {
	cfg := config.New()
	settings := clientSettings{
		log:       zerolog.Nop(),
		chunkSize: cfg.GetChunkSize(),
	}
	for _, opt := range options {
		opt(&settings)
	}

	pipeline, err := api.New(cfg, settings.pipelineOptions...)
	if err != nil {
		return nil, err
	}

	return &Client{
		pipeline:  pipeline,
		log:       settings.log,
		chunkSize: settings.chunkSize,
	}, nil
}

// Close releases the underlying transport. Any call after Close fails with
// apierror.ErrClientClosed. Close is idempotent.
func (c *Client) Close() {
	c.pipeline.Close()
}

// Token returns the current bearer token, empty when unauthenticated.
func (c *Client) Token() string {
	return c.pipeline.Token()
}

// RefreshToken returns the stored refresh token, empty after a root login or
// a session reset.
func (c *Client) RefreshToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshToken
}

// CurrentDatabase returns the database selected by the session, nil when no
// database session is active.
func (c *Client) CurrentDatabase() *models.Database {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.database
}

// LoginName returns the identity (email or service name) of the active
// session. It is empty after a refresh-token login, which does not reassert
// an identity.
func (c *Client) LoginName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loginName
}

// TokenExpiry returns the expiry time of the current bearer token, read from
// its unverified exp claim. The second result is false when no token is held
// or the token carries no expiry.
func (c *Client) TokenExpiry() (time.Time, bool) {
	token := c.pipeline.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// send issues an authenticated request with the transparent refresh-retry:
// when the response is a jwt-token-expired error and a refresh token is held,
// it refreshes the session once and resends the original request once.
func (c *Client) send(ctx context.Context, req api.Request, out any) error {
	err := c.pipeline.Do(ctx, req, out)
	if !apierror.IsKind(err, apierror.KindJwtTokenExpired) {
		return err
	}

	refreshToken := c.RefreshToken()
	if refreshToken == "" {
		return err
	}

	if refreshErr := c.refreshSession(ctx, refreshToken); refreshErr != nil {
		return refreshErr
	}
	return c.pipeline.Do(ctx, req, out)
}

// refreshSession performs one coalesced refresh. Callers that lose the race
// find a rotated token and return without refreshing again.
func (c *Client) refreshSession(ctx context.Context, staleRefreshToken string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if current := c.RefreshToken(); current != staleRefreshToken {
		// Another caller already refreshed.
		return nil
	}

	c.log.Debug().Msg("bearer token expired, refreshing session")
	_, err := c.LoginRefreshToken(ctx, staleRefreshToken)
	return err
}

// resetLoginData drops all session state, returning the client to the
// pre-login state.
func (c *Client) resetLoginData() {
	c.pipeline.SetToken("")
	c.mu.Lock()
	c.refreshToken = ""
	c.database = nil
	c.loginName = ""
	c.mu.Unlock()
	c.log.Debug().Msg("session reset")
}

func (c *Client) setLoginData(token, refreshToken string, database *models.Database, loginName string) {
	c.pipeline.SetToken(token)
	c.mu.Lock()
	c.refreshToken = refreshToken
	c.database = database
	c.loginName = loginName
	c.mu.Unlock()
}
