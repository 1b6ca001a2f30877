package stylist

import "time"

// Config wires runtime knobs for the recommendation pipeline.
type Config struct {
	// PrimaryModel serves the first attempt; FallbackModel serves later
	// attempts, trading capability for availability.
	PrimaryModel  string
	FallbackModel string
	Temperature   float32
	// MaxAttempts bounds the AI attempt loop; RetryBase is multiplied by the
	// attempt number to produce each backoff sleep.
	MaxAttempts int
	RetryBase   time.Duration
}
