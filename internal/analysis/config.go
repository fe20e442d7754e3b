package analysis

const (
	DEFAULT_TOP_N          = 10
	POSITIVE_THRESHOLD     = 0.2
	NEGATIVE_THRESHOLD     = -0.2
	HEAVY_FILLER_THRESHOLD = 10
	FEEDBACK_KEYWORD_LIMIT = 5
)

var defaultFillerWords = []string{
	"um", "uh", "like", "you know", "basically", "actually",
	"so", "literally", "right", "well", "ok", "yeah", "hmm",
}

// Config holds the fixed vocabulary and thresholds the pipeline runs with.
// It is copied into the Analyzer at construction and never mutated after.
type Config struct {
	FillerWords          []string
	PositiveThreshold    float64
	NegativeThreshold    float64
	HeavyFillerThreshold int
	FeedbackKeywordLimit int
}

func DefaultConfig() Config {
	return Config{
		FillerWords:          append([]string(nil), defaultFillerWords...),
		PositiveThreshold:    POSITIVE_THRESHOLD,
		NegativeThreshold:    NEGATIVE_THRESHOLD,
		HeavyFillerThreshold: HEAVY_FILLER_THRESHOLD,
		FeedbackKeywordLimit: FEEDBACK_KEYWORD_LIMIT,
	}
}

func (c Config) clone() Config {
	c.FillerWords = append([]string(nil), c.FillerWords...)
	return c
}
