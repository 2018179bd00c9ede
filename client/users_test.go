package client_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-reco-client/internal/utils"
	"github.com/jrsteele09/go-reco-client/models"
)

func TestUserProperties(t *testing.T) {
	f := newFakeAPI(t)
	c := f.newClient()
	loginIndividual(t, f, c)

	t.Run("create", func(t *testing.T) {
		f.handle(http.MethodPost, "/users-properties/", func(w http.ResponseWriter, r *http.Request) {
			var body models.Property
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "age", body.PropertyName)
			require.Equal(t, "uint8", body.ValueType)
			w.WriteHeader(http.StatusCreated)
		})
		require.NoError(t, c.CreateUserProperty(context.Background(), "age", "uint8", false))
	})

	t.Run("get", func(t *testing.T) {
		f.handle(http.MethodGet, "/users-properties/age/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"property_name":"age","value_type":"uint8","repeated":false}`)
		})
		property, err := c.GetUserProperty(context.Background(), "age")
		require.NoError(t, err)
		require.Equal(t, "uint8", property.ValueType)
	})

	t.Run("list", func(t *testing.T) {
		f.handle(http.MethodGet, "/users-properties/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"properties":[
				{"property_name":"age","value_type":"uint8","repeated":false},
				{"property_name":"tags","value_type":"S16","repeated":true}
			]}`)
		})
		result, err := c.ListAllUserProperties(context.Background())
		require.NoError(t, err)
		require.Len(t, result.Properties, 2)
		require.True(t, result.Properties[1].Repeated)
	})

	t.Run("delete", func(t *testing.T) {
		f.handle(http.MethodDelete, "/users-properties/age/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		require.NoError(t, c.DeleteUserProperty(context.Background(), "age"))
	})
}

func TestGetUser(t *testing.T) {
	f := newFakeAPI(t)
	c := f.newClient()
	loginIndividual(t, f, c)

	f.handle(http.MethodGet, "/users/user-1/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"user":{"user_id":"user-1","age":31,"subscriptions":["free","premium"]}}`)
	})

	user, err := c.GetUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.UserID())

	age, ok := user.Get("age")
	require.True(t, ok)
	require.Equal(t, json.Number("31"), age)
}

func TestCreateOrUpdateUser(t *testing.T) {
	t.Run("carries the id in the url, not the payload", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		loginIndividual(t, f, c)

		f.handle(http.MethodPut, "/users/user-1/", func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.JSONEq(t, `{"user":{"age":31}}`, string(raw))
			w.WriteHeader(http.StatusOK)
		})

		user := &models.User{}
		user.SetUserID("user-1")
		user.Set("age", 31)
		require.NoError(t, c.CreateOrUpdateUser(context.Background(), user))
	})

	t.Run("percent-encodes ids in the path", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		loginIndividual(t, f, c)

		f.handle(http.MethodPut, "/users/user%2F1/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		user := &models.User{}
		user.SetUserID("user/1")
		user.Set("age", 31)
		require.NoError(t, c.CreateOrUpdateUser(context.Background(), user))
	})

	t.Run("rejects a user without an id locally", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		loginIndividual(t, f, c)

		user := &models.User{}
		user.Set("age", 31)
		require.Error(t, c.CreateOrUpdateUser(context.Background(), user))
		require.Equal(t, 0, f.totalCalls())
	})
}

func TestListUsers(t *testing.T) {
	f := newFakeAPI(t)
	c := f.newClient()
	loginIndividual(t, f, c)

	t.Run("bulk pages by cursor", func(t *testing.T) {
		f.handle(http.MethodGet, "/users-bulk/", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "100", r.URL.Query().Get("amt"))
			require.Equal(t, "cursor-a", r.URL.Query().Get("cursor"))
			writeJSON(w, http.StatusOK, `{
				"users": [{"user_id":"user-1"},{"user_id":"user-2"}],
				"has_next": true, "next_cursor": "cursor-b"
			}`)
		})
		result, err := c.ListAllUsersBulk(context.Background(), utils.Ptr(100), "cursor-a")
		require.NoError(t, err)
		require.Len(t, result.Users, 2)
		require.Equal(t, "cursor-b", result.NextCursor)
	})

	t.Run("by ids", func(t *testing.T) {
		f.handle(http.MethodPost, "/users-bulk/list/", func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.JSONEq(t, `{"users_id":["user-1","user-404"]}`, string(raw))
			writeJSON(w, http.StatusOK, `{"users":[{"user_id":"user-1"}]}`)
		})
		result, err := c.ListUsersByIDs(context.Background(), []any{"user-1", "user-404"})
		require.NoError(t, err)
		require.Len(t, result.Users, 1, "missing users are absent, not padded")
	})
}
