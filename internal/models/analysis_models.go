package models

const (
	SENTIMENT_POSITIVE = "Positive"
	SENTIMENT_NEUTRAL  = "Neutral"
	SENTIMENT_NEGATIVE = "Negative"
)

// FillerCounts maps every term of the filler vocabulary to its count.
// Terms that never occur are present with a zero count.
type FillerCounts map[string]int

func (fc FillerCounts) Total() int {
	total := 0
	for _, n := range fc {
		total += n
	}
	return total
}

type SentimentResult struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

type Keyword struct {
	Term      string `json:"term"`
	Frequency int    `json:"frequency"`
}

type AnalysisReport struct {
	FillerCounts FillerCounts    `json:"filler_counts"`
	TotalFillers int             `json:"total_fillers"`
	Sentiment    SentimentResult `json:"sentiment"`
	Keywords     []Keyword       `json:"keywords"`
	Feedback     string          `json:"feedback"`
}

// TopKeyword returns the highest ranked keyword, or "N/A" when there is none.
func (r AnalysisReport) TopKeyword() string {
	if len(r.Keywords) == 0 {
		return "N/A"
	}
	return r.Keywords[0].Term
}
