// Package codec (de)serializes request and response bodies. The wire format
// is JSON throughout.
package codec

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/jrsteele09/go-reco-client/models"
)

// Encode serializes a request body.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "codec.Encode")
	}
	return data, nil
}

// Decode deserializes a response body into out. A nil out or an empty body is
// a no-op, matching endpoints that return 204 or an empty object.
func Decode(data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "codec.Decode")
	}
	return nil
}

// DecodeUntyped deserializes free-form JSON preserving its shape: objects
// become ordered case-insensitive property bags, arrays []any, numbers
// json.Number.
func DecodeUntyped(data []byte) (any, error) {
	return models.DecodeUntyped(data)
}
