package clients

import "time"

const (
	MAX_RETRIES    = 3
	RETRY_DELAY    = 250 * time.Millisecond
	PROCESSED_TTL  = 24 * time.Hour
	OPENAI_TIMEOUT = 120 * time.Second
)
