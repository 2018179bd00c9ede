package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-reco-client/models"
)

func TestUnixSeconds(t *testing.T) {
	moment := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	require.Equal(t, float64(1773480413), models.UnixSeconds(moment))
	require.True(t, models.TimeFromUnixSeconds(1773480413).Equal(moment))
}

func TestRatingTime(t *testing.T) {
	moment := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	rating := models.ItemRating{ItemID: "item-1", Rating: 8}
	rating.SetTime(moment)
	require.Equal(t, float64(1773480413), rating.Timestamp)
	require.True(t, rating.Time().Equal(moment))
}
