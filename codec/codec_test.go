package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-reco-client/codec"
	"github.com/jrsteele09/go-reco-client/models"
)

func TestDecode(t *testing.T) {
	t.Run("empty body is a no-op", func(t *testing.T) {
		var out map[string]any
		require.NoError(t, codec.Decode(nil, &out))
		require.Nil(t, out)
	})

	t.Run("nil target is a no-op", func(t *testing.T) {
		require.NoError(t, codec.Decode([]byte(`{"ignored":true}`), nil))
	})

	t.Run("malformed body fails", func(t *testing.T) {
		var out map[string]any
		require.Error(t, codec.Decode([]byte(`{`), &out))
	})
}

func TestEncodeDecodeUntyped(t *testing.T) {
	bag := &models.PropertyBag{}
	bag.Set("Name", "Ada")
	bag.Set("nested", map[string]string{"k": "v"})

	data, err := codec.Encode(bag)
	require.NoError(t, err)

	decoded, err := codec.DecodeUntyped(data)
	require.NoError(t, err)

	roundTripped, ok := decoded.(*models.PropertyBag)
	require.True(t, ok)
	require.Equal(t, []string{"Name", "nested"}, roundTripped.Keys())
}
