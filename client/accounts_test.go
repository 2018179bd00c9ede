package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-reco-client/apierror"
)

func TestDeleteIndividualAccount(t *testing.T) {
	t.Run("deleting the session's own account resets the session", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		loginIndividual(t, f, c)

		f.handle(http.MethodDelete, "/accounts/individual/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		// The comparison ignores case.
		require.NoError(t, c.DeleteIndividualAccount(context.Background(), "A@B.COM"))
		require.Empty(t, c.Token())
		require.Empty(t, c.RefreshToken())
		require.Nil(t, c.CurrentDatabase())
		require.Empty(t, c.LoginName())
	})

	t.Run("deleting a different account leaves the session untouched", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		loginIndividual(t, f, c)

		f.handle(http.MethodDelete, "/accounts/individual/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, c.DeleteIndividualAccount(context.Background(), "other@b.com"))
		require.Equal(t, "first-token", c.Token())
		require.Equal(t, "a@b.com", c.LoginName())
	})
}

func TestDeleteServiceAccount(t *testing.T) {
	f := newFakeAPI(t)
	c := f.newClient()
	f.handle(http.MethodPost, "/login/service/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, loginResultBody)
	})
	_, err := c.LoginService(context.Background(), "Reco-Bot", "pw", "db-1")
	require.NoError(t, err)

	f.handle(http.MethodDelete, "/accounts/service/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.DeleteServiceAccount(context.Background(), "reco-bot"))
	require.Empty(t, c.Token())
}

func TestDeleteCurrentAccount(t *testing.T) {
	t.Run("requires an active session", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()

		err := c.DeleteCurrentAccount(context.Background())
		require.True(t, apierror.IsKind(err, apierror.KindLocalPrecondition))
		require.ErrorIs(t, err, apierror.ErrNoActiveSession)
		require.Equal(t, 0, f.totalCalls())
	})

	t.Run("resets the session after deletion", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		loginIndividual(t, f, c)

		f.handle(http.MethodDelete, "/accounts/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		require.NoError(t, c.DeleteCurrentAccount(context.Background()))
		require.Empty(t, c.Token())
		require.Nil(t, c.CurrentDatabase())
	})
}

func TestAccountManagement(t *testing.T) {
	f := newFakeAPI(t)
	c := f.newClient()
	loginIndividual(t, f, c)

	t.Run("create individual account", func(t *testing.T) {
		f.handle(http.MethodPost, "/accounts/individual/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, `{"id":"acc-1"}`)
		})
		created, err := c.CreateIndividualAccount(context.Background(),
			"new@b.com", "pw", "manager", "Ada", "Lovelace")
		require.NoError(t, err)
		require.Equal(t, "acc-1", created.ID)
	})

	t.Run("create service account", func(t *testing.T) {
		f.handle(http.MethodPost, "/accounts/service/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, `{"id":"acc-2"}`)
		})
		created, err := c.CreateServiceAccount(context.Background(), "reco-bot", "pw", "backend")
		require.NoError(t, err)
		require.Equal(t, "acc-2", created.ID)
	})

	t.Run("list all accounts", func(t *testing.T) {
		f.handle(http.MethodGet, "/organizations/current/accounts/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{
				"individual_accounts": [{"email":"a@b.com","role":"manager","verified":true}],
				"service_accounts": [{"name":"reco-bot","role":"backend"}]
			}`)
		})
		accounts, err := c.ListAllAccounts(context.Background())
		require.NoError(t, err)
		require.Len(t, accounts.IndividualAccounts, 1)
		require.Len(t, accounts.ServiceAccounts, 1)
		require.True(t, accounts.IndividualAccounts[0].Verified)
	})

	t.Run("verification round", func(t *testing.T) {
		f.handle(http.MethodPut, "/accounts/resend-verification-code/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		require.NoError(t, c.ResendVerificationCode(context.Background(), "new@b.com"))

		f.handle(http.MethodGet, "/accounts/verify/", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "new@b.com", r.URL.Query().Get("email"))
			require.Equal(t, "1234", r.URL.Query().Get("code"))
			w.WriteHeader(http.StatusOK)
		})
		require.NoError(t, c.VerifyAccount(context.Background(), "new@b.com", "1234"))
	})
}
