package analysis

import (
	"fmt"
	"strings"

	"github.com/spacesedan/interviewlens/internal/models"
)

const (
	TONE_POSITIVE = "The overall tone is positive and confident."
	TONE_NEGATIVE = "The tone appears negative or hesitant in some parts."
	TONE_NEUTRAL  = "The tone is fairly neutral."

	FILLER_HEAVY    = "You used %d filler words. Try to reduce these for smoother delivery."
	FILLER_MODERATE = "You used %d filler words. Good control, but there's room for improvement."
	FILLER_NONE     = "Excellent control — no filler words detected!"

	KEYWORDS_FOCUS = "Your top keywords show focus on: %s."
	KEYWORDS_NONE  = "No significant keywords detected. Try emphasizing important topics."
)

type FeedbackSynthesizer struct {
	cfg Config
}

func NewFeedbackSynthesizer(cfg Config) *FeedbackSynthesizer {
	return &FeedbackSynthesizer{cfg: cfg.clone()}
}

// Synthesize joins the tone, filler and keyword fragments with single spaces.
func (fs *FeedbackSynthesizer) Synthesize(sentiment models.SentimentResult, fillers models.FillerCounts, keywords []models.Keyword) string {
	return strings.Join([]string{
		fs.tone(sentiment.Score),
		fs.fillers(fillers.Total()),
		fs.keywords(keywords),
	}, " ")
}

func (fs *FeedbackSynthesizer) tone(score float64) string {
	switch {
	case score > fs.cfg.PositiveThreshold:
		return TONE_POSITIVE
	case score < fs.cfg.NegativeThreshold:
		return TONE_NEGATIVE
	default:
		return TONE_NEUTRAL
	}
}

func (fs *FeedbackSynthesizer) fillers(total int) string {
	switch {
	case total > fs.cfg.HeavyFillerThreshold:
		return fmt.Sprintf(FILLER_HEAVY, total)
	case total > 0:
		return fmt.Sprintf(FILLER_MODERATE, total)
	default:
		return FILLER_NONE
	}
}

func (fs *FeedbackSynthesizer) keywords(keywords []models.Keyword) string {
	if len(keywords) == 0 {
		return KEYWORDS_NONE
	}

	limit := len(keywords)
	if fs.cfg.FeedbackKeywordLimit > 0 && limit > fs.cfg.FeedbackKeywordLimit {
		limit = fs.cfg.FeedbackKeywordLimit
	}

	return fmt.Sprintf(KEYWORDS_FOCUS, FormatKeywords(keywords[:limit]))
}

// FormatKeywords renders keyword terms as a comma separated list.
func FormatKeywords(keywords []models.Keyword) string {
	terms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		terms = append(terms, kw.Term)
	}
	return strings.Join(terms, ", ")
}
