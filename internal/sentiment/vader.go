package sentiment

import (
	"github.com/jonreiter/govader"
)

// VaderModel scores polarity with VADER's compound score, which is already
// normalized to [-1, 1].
type VaderModel struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderModel() *VaderModel {
	return &VaderModel{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderModel) Polarity(text string) (float64, error) {
	if text == "" {
		return 0, nil
	}
	return v.analyzer.PolarityScores(text).Compound, nil
}
