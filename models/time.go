package models

import "time"

// The API carries timestamps as Unix seconds in JSON numbers.

// UnixSeconds converts a time to its wire representation.
func UnixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// TimeFromUnixSeconds converts a wire timestamp back to a time.
func TimeFromUnixSeconds(seconds float64) time.Time {
	return time.Unix(0, int64(seconds*float64(time.Second)))
}
