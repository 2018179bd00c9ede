package client_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-reco-client/apierror"
	"github.com/jrsteele09/go-reco-client/client"
	"github.com/jrsteele09/go-reco-client/models"
)

func makeUsers(n int) []models.User {
	users := make([]models.User, n)
	for i := range users {
		users[i].SetUserID("user-" + strconv.Itoa(i))
		users[i].Set("age", 20+i)
	}
	return users
}

func TestCreateOrUpdateUsersBulk(t *testing.T) {
	t.Run("sends records in sequential chunks", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		loginIndividual(t, f, c)

		var chunkSizes []int
		f.handle(http.MethodPut, "/users-bulk/", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Users []models.User `json:"users"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			chunkSizes = append(chunkSizes, len(body.Users))
			w.WriteHeader(http.StatusOK)
		})

		require.NoError(t, c.CreateOrUpdateUsersBulk(context.Background(), makeUsers(100), 30))
		require.Equal(t, []int{30, 30, 30, 10}, chunkSizes)
	})

	t.Run("failure mid-way carries the last processed index", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		loginIndividual(t, f, c)

		attempt := 0
		f.handle(http.MethodPut, "/users-bulk/", func(w http.ResponseWriter, r *http.Request) {
			attempt++
			if attempt == 3 {
				writeAPIError(w, http.StatusBadRequest, apierror.CodeWrongData, "WRONG_DATA_TYPE")
				return
			}
			w.WriteHeader(http.StatusOK)
		})

		err := c.CreateOrUpdateUsersBulk(context.Background(), makeUsers(100), 25)
		require.True(t, apierror.IsKind(err, apierror.KindWrongData))

		var apiErr *apierror.Error
		require.ErrorAs(t, err, &apiErr)
		require.NotNil(t, apiErr.LastProcessedIndex)
		require.Equal(t, 49, *apiErr.LastProcessedIndex, "two chunks of 25 were sent")
		require.Equal(t, 3, f.callCount(http.MethodPut, "/users-bulk/"), "no chunk after the failure")
	})

	t.Run("failure on the first chunk reports index -1", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient()
		loginIndividual(t, f, c)

		f.handle(http.MethodPut, "/users-bulk/", func(w http.ResponseWriter, r *http.Request) {
			writeAPIError(w, http.StatusBadRequest, apierror.CodeWrongData, "WRONG_DATA_TYPE")
		})

		err := c.CreateOrUpdateUsersBulk(context.Background(), makeUsers(10), 25)
		var apiErr *apierror.Error
		require.ErrorAs(t, err, &apiErr)
		require.NotNil(t, apiErr.LastProcessedIndex)
		require.Equal(t, -1, *apiErr.LastProcessedIndex)
	})

	t.Run("zero chunk size uses the client default", func(t *testing.T) {
		f := newFakeAPI(t)
		c := f.newClient(client.WithChunkSize(40))
		loginIndividual(t, f, c)

		var chunkSizes []int
		f.handle(http.MethodPut, "/users-bulk/", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Users []models.User `json:"users"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			chunkSizes = append(chunkSizes, len(body.Users))
			w.WriteHeader(http.StatusOK)
		})

		require.NoError(t, c.CreateOrUpdateUsersBulk(context.Background(), makeUsers(100), 0))
		require.Equal(t, []int{40, 40, 20}, chunkSizes)
	})
}

func TestCreateOrUpdateRatingsBulk(t *testing.T) {
	f := newFakeAPI(t)
	c := f.newClient()
	loginIndividual(t, f, c)

	var received int
	f.handle(http.MethodPut, "/ratings-bulk/", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Ratings []models.UserItemRating `json:"ratings"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		received += len(body.Ratings)
		w.WriteHeader(http.StatusOK)
	})

	ratings := make([]models.UserItemRating, 50)
	for i := range ratings {
		ratings[i] = models.UserItemRating{
			UserID: "user-" + strconv.Itoa(i),
			ItemID: "item-1",
			Rating: 8,
		}
	}
	require.NoError(t, c.CreateOrUpdateRatingsBulk(context.Background(), ratings, 20))
	require.Equal(t, 50, received)
	require.Equal(t, 3, f.callCount(http.MethodPut, "/ratings-bulk/"))
}
