package client

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// tokenExpiryMargin refreshes slightly before the exp claim to absorb clock
// skew between client and server.
const tokenExpiryMargin = 30 * time.Second

// TokenSource adapts the client's session token to the oauth2.TokenSource
// interface, so it can feed any oauth2-aware HTTP stack. Token refreshes the
// session through the stored refresh token when the bearer token is expired
// or about to expire.
func (c *Client) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &sessionTokenSource{ctx: ctx, client: c}
}

type sessionTokenSource struct {
	ctx    context.Context
	client *Client
}

func (s *sessionTokenSource) Token() (*oauth2.Token, error) {
	token := s.client.Token()
	if token == "" {
		return nil, errors.New("[TokenSource] no active session")
	}

	expiry, hasExpiry := s.client.TokenExpiry()
	if hasExpiry && time.Until(expiry) < tokenExpiryMargin {
		refreshToken := s.client.RefreshToken()
		if refreshToken == "" {
			return nil, errors.New("[TokenSource] token expired and no refresh token held")
		}
		if err := s.client.refreshSession(s.ctx, refreshToken); err != nil {
			return nil, err
		}
		token = s.client.Token()
		expiry, hasExpiry = s.client.TokenExpiry()
	}

	oauthToken := &oauth2.Token{AccessToken: token, TokenType: "Bearer"}
	if hasExpiry {
		oauthToken.Expiry = expiry
	}
	return oauthToken, nil
}
