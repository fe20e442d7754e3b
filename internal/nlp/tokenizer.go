package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/v2"

	"github.com/spacesedan/interviewlens/internal/analysis"
)

const STOPWORD_LANGUAGE = "en"

// Tokenizer splits English text with prose's Treebank-style tokenizer
// ("don't" -> "do", "n't") and flags stopwords against bbalet's English list.
type Tokenizer struct {
	language string
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{language: STOPWORD_LANGUAGE}
}

func (t *Tokenizer) Tokenize(text string) ([]analysis.Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("[Tokenizer] failed to tokenize: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]analysis.Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		word := strings.ToLower(tok.Text)
		tokens = append(tokens, analysis.Token{
			Text:       word,
			IsAlpha:    isAlpha(word),
			IsStopword: t.IsStopword(word),
		})
	}

	return tokens, nil
}

// IsStopword reports whether the stopword cleaner removes word entirely.
func (t *Tokenizer) IsStopword(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, t.language, false)) == ""
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
