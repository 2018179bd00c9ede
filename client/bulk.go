package client

import (
	"context"
	"errors"

	"github.com/jrsteele09/go-reco-client/api"
	"github.com/jrsteele09/go-reco-client/apierror"
)

// sendChunked uploads records in sequential chunks of chunkSize, stopping at
// the first failure. The surfaced error is enriched with the index of the
// last record that was sent successfully, so callers can resume from the
// next one. A chunkSize of zero uses the client default.
func sendChunked[T any](ctx context.Context, c *Client, method, path, field string, records []T, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = c.chunkSize
	}

	for sent := 0; sent < len(records); sent += chunkSize {
		end := sent + chunkSize
		if end > len(records) {
			end = len(records)
		}

		err := c.send(ctx, api.Request{
			Method: method,
			Path:   path,
			Body:   map[string]any{field: records[sent:end]},
		}, nil)
		if err != nil {
			var apiErr *apierror.Error
			if errors.As(err, &apiErr) {
				return apiErr.WithLastProcessedIndex(sent - 1)
			}
			return err
		}
	}
	return nil
}
