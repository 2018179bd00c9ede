package client_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{"exp": expiry.Unix()}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenSource(t *testing.T) {
	t.Run("hands out a live token without refreshing", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		liveToken := signedToken(t, time.Now().Add(time.Hour))
		f.handle(http.MethodPost, "/login/individual/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"token":"`+liveToken+`","refresh_token":"first-refresh"}`)
		})
		_, err := c.LoginIndividual(context.Background(), "a@b.com", "pw", "db-1")
		require.NoError(t, err)
		f.resetCalls()

		token, err := c.TokenSource(context.Background()).Token()
		require.NoError(t, err)
		require.Equal(t, liveToken, token.AccessToken)
		require.Equal(t, "Bearer", token.TokenType)
		require.Equal(t, 0, f.totalCalls())
	})

	t.Run("refreshes an expired token before handing it out", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		staleToken := signedToken(t, time.Now().Add(-time.Minute))
		freshToken := signedToken(t, time.Now().Add(time.Hour))
		f.handle(http.MethodPost, "/login/individual/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"token":"`+staleToken+`","refresh_token":"first-refresh"}`)
		})
		_, err := c.LoginIndividual(context.Background(), "a@b.com", "pw", "db-1")
		require.NoError(t, err)
		f.resetCalls()

		f.handle(http.MethodPost, "/login/refresh-token/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"token":"`+freshToken+`","refresh_token":"second-refresh"}`)
		})

		token, err := c.TokenSource(context.Background()).Token()
		require.NoError(t, err)
		require.Equal(t, freshToken, token.AccessToken)
		require.Equal(t, 1, f.callCount(http.MethodPost, "/login/refresh-token/"))
	})

	t.Run("fails without a session", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		_, err := c.TokenSource(context.Background()).Token()
		require.Error(t, err)
	})
}
