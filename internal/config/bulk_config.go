package config

import "strconv"

const chunkSizeEnvVar = "RECO_API_CHUNK_SIZE"

type BulkConfig interface {
	GetChunkSize() int
}

type Bulk struct{}

var _ BulkConfig = Bulk{}

// GetChunkSize returns the number of records sent per request in bulk
// operations.
func (Bulk) GetChunkSize() int {
	if s, err := strconv.Atoi(GetEnv(chunkSizeEnvVar, "1024")); err == nil && s > 0 {
		return s
	}
	return 1024
}
