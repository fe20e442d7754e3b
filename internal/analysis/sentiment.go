package analysis

import (
	"fmt"
	"math"

	"github.com/spacesedan/interviewlens/internal/models"
)

// SentimentModel returns a polarity in [-1, 1] for a piece of text.
type SentimentModel interface {
	Polarity(text string) (float64, error)
}

type SentimentScorer struct {
	model             SentimentModel
	positiveThreshold float64
	negativeThreshold float64
}

func NewSentimentScorer(model SentimentModel, positive, negative float64) *SentimentScorer {
	return &SentimentScorer{
		model:             model,
		positiveThreshold: positive,
		negativeThreshold: negative,
	}
}

// Score expects normalized text. Empty text scores 0 without calling the model.
func (s *SentimentScorer) Score(text string) (models.SentimentResult, error) {
	if text == "" {
		return models.SentimentResult{Score: 0, Label: s.Label(0)}, nil
	}

	score, err := s.model.Polarity(text)
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("%w: sentiment model: %w", ErrCollaborator, err)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return models.SentimentResult{}, fmt.Errorf("%w: sentiment model returned %v", ErrCollaborator, score)
	}
	score = math.Max(-1, math.Min(1, score))

	return models.SentimentResult{Score: score, Label: s.Label(score)}, nil
}

// Label maps a score to Positive, Negative or Neutral. The thresholds are
// exclusive, so a score equal to either one is Neutral.
func (s *SentimentScorer) Label(score float64) string {
	switch {
	case score > s.positiveThreshold:
		return models.SENTIMENT_POSITIVE
	case score < s.negativeThreshold:
		return models.SENTIMENT_NEGATIVE
	default:
		return models.SENTIMENT_NEUTRAL
	}
}
