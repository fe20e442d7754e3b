package kafka_client

import "time"

const (
	KAFKA_TOPIC_TRANSCRIPT_REQUESTS = "transcript-requests" // transcripts waiting for analysis
	KAFKA_TOPIC_ANALYSIS_RESULTS    = "analysis-results"    // one report or error per request
)

const (
	MAX_RETRIES     = 5
	RETRY_DELAY     = 2 * time.Second
	FLUSH_TIMEOUT   = 5000
	PRODUCE_TIMEOUT = 10 * time.Second
)
