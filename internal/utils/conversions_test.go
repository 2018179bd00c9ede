package utils_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-reco-client/internal/utils"
)

func TestIDString(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	tests := []struct {
		name string
		id   any
		want string
	}{
		{name: "string", id: "user-1", want: "user-1"},
		{name: "int", id: 42, want: "42"},
		{name: "int64", id: int64(-7), want: "-7"},
		{name: "uint32", id: uint32(1001), want: "1001"},
		{name: "uuid", id: id, want: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := utils.IDString(tc.id)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("rejects nil, empty and unsupported ids", func(t *testing.T) {
		_, err := utils.IDString(nil)
		require.Error(t, err)
		_, err = utils.IDString("")
		require.Error(t, err)
		_, err = utils.IDString(3.14)
		require.Error(t, err)
	})
}

func TestIDPathSegment(t *testing.T) {
	segment, err := utils.IDPathSegment("user/1 x")
	require.NoError(t, err)
	require.Equal(t, "user%2F1%20x", segment)
}
