package entities

import (
	"math"
	"time"
)

// Metrics captures per-call generation timing and throughput. Computed for
// every inference call, never persisted.
type Metrics struct {
	ResponseTimeMS int64   `json:"response_time_ms"`
	TokensPerSec   float64 `json:"tokens_per_sec"`
}

// ComputeMetrics derives call metrics from wall-clock bounds and the number of
// generated tokens. A non-positive elapsed time (clock skew, zero-duration
// call) yields zeroed metrics rather than an error or a division by zero.
func ComputeMetrics(start, end time.Time, tokens int) Metrics {
	elapsed := end.Sub(start).Seconds()
	if elapsed <= 0 {
		return Metrics{}
	}
	return Metrics{
		ResponseTimeMS: int64(math.Round(elapsed * 1000)),
		TokensPerSec:   math.Round(float64(tokens)/elapsed*100) / 100,
	}
}
