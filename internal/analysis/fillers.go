package analysis

import (
	"regexp"
	"strings"

	"github.com/spacesedan/interviewlens/internal/models"
)

type phraseMatcher struct {
	phrase  string
	pattern *regexp.Regexp
}

// FillerDetector counts a fixed filler vocabulary. Single words are matched
// against whole tokens, phrases by a word-bounded search over the full text.
// Each term is counted on its own, so one span may count for several terms.
type FillerDetector struct {
	vocabulary []string
	words      map[string]struct{}
	phrases    []phraseMatcher
}

func NewFillerDetector(vocabulary []string) *FillerDetector {
	fd := &FillerDetector{
		vocabulary: append([]string(nil), vocabulary...),
		words:      make(map[string]struct{}),
	}

	for _, term := range vocabulary {
		if strings.Contains(term, " ") {
			fd.phrases = append(fd.phrases, phraseMatcher{
				phrase:  term,
				pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`),
			})
			continue
		}
		fd.words[term] = struct{}{}
	}

	return fd
}

// Vocabulary returns the terms in their configured order.
func (fd *FillerDetector) Vocabulary() []string {
	return append([]string(nil), fd.vocabulary...)
}

// Count expects normalized text.
func (fd *FillerDetector) Count(text string) (models.FillerCounts, int) {
	counts := make(models.FillerCounts, len(fd.vocabulary))
	for _, term := range fd.vocabulary {
		counts[term] = 0
	}

	for _, word := range strings.Fields(text) {
		if _, ok := fd.words[word]; ok {
			counts[word]++
		}
	}

	for _, pm := range fd.phrases {
		counts[pm.phrase] = len(pm.pattern.FindAllStringIndex(text, -1))
	}

	return counts, counts.Total()
}
