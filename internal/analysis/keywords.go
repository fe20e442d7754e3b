package analysis

import (
	"fmt"
	"sort"

	"github.com/spacesedan/interviewlens/internal/models"
)

type Token struct {
	Text       string
	IsAlpha    bool
	IsStopword bool
}

// Tokenizer splits text into tokens and classifies them.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

type KeywordExtractor struct {
	tokenizer Tokenizer
}

func NewKeywordExtractor(tokenizer Tokenizer) *KeywordExtractor {
	return &KeywordExtractor{tokenizer: tokenizer}
}

// Extract ranks alphabetic non-stopword tokens by frequency and returns at
// most topN of them. Equal counts keep the order of first appearance.
func (ke *KeywordExtractor) Extract(text string, topN int) ([]models.Keyword, error) {
	if topN <= 0 {
		return []models.Keyword{}, nil
	}

	tokens, err := ke.tokenizer.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("%w: tokenizer: %w", ErrCollaborator, err)
	}

	index := make(map[string]int)
	ranked := make([]models.Keyword, 0)
	for _, tok := range tokens {
		if !tok.IsAlpha || tok.IsStopword {
			continue
		}
		if i, ok := index[tok.Text]; ok {
			ranked[i].Frequency++
			continue
		}
		index[tok.Text] = len(ranked)
		ranked = append(ranked, models.Keyword{Term: tok.Text, Frequency: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}
