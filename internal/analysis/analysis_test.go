package analysis

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/interviewlens/internal/models"
)

type fixedModel struct {
	score float64
	err   error
	calls int
}

func (m *fixedModel) Polarity(string) (float64, error) {
	m.calls++
	return m.score, m.err
}

// splitTokenizer treats every field as alphabetic and uses a tiny stop list.
type splitTokenizer struct {
	err error
}

var testStopwords = map[string]bool{"i": true, "was": true, "the": true, "and": true, "but": true, "so": true}

func (s splitTokenizer) Tokenize(text string) ([]Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	var tokens []Token
	for _, f := range strings.Fields(text) {
		tokens = append(tokens, Token{Text: f, IsAlpha: !strings.Contains(f, "'"), IsStopword: testStopwords[f]})
	}
	return tokens, nil
}

type stubSource struct {
	text string
	err  error
}

func (s stubSource) Text(context.Context) (string, error) {
	return s.text, s.err
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"noise only", "123 !!! ...", ""},
		{"punctuation", "So, um, I think?", "so um i think"},
		{"apostrophes kept", "I'm  ready\t\nnow", "i'm ready now"},
		{"digits", "Top 3 goals", "top goals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got))
		})
	}
}

func TestFillerCountsCoverVocabulary(t *testing.T) {
	fd := NewFillerDetector(DefaultConfig().FillerWords)

	counts, total := fd.Count("")
	assert.Zero(t, total)
	for _, term := range DefaultConfig().FillerWords {
		n, ok := counts[term]
		assert.True(t, ok, term)
		assert.Zero(t, n)
	}
}

func TestFillerCountsExample(t *testing.T) {
	fd := NewFillerDetector(DefaultConfig().FillerWords)
	text := Normalize("So, um, I think I was like really prepared, you know? But, uh, I guess I was actually nervous.")

	counts, total := fd.Count(text)
	assert.Equal(t, 1, counts["um"])
	assert.Equal(t, 1, counts["like"])
	assert.Equal(t, 1, counts["you know"])
	assert.Equal(t, 1, counts["uh"])
	assert.Equal(t, 1, counts["actually"])
	assert.Equal(t, 1, counts["so"])
	assert.Equal(t, 6, total)
	assert.Equal(t, counts.Total(), total)
}

func TestFillerPhraseBoundaries(t *testing.T) {
	fd := NewFillerDetector([]string{"you know", "know"})

	counts, total := fd.Count("you know you knowing you know")
	assert.Equal(t, 2, counts["you know"])
	assert.Equal(t, 2, counts["know"])
	assert.Equal(t, 4, total)
}

func TestFillerWordsNeedWholeTokens(t *testing.T) {
	fd := NewFillerDetector([]string{"so", "um"})

	counts, _ := fd.Count("also umbrella so um")
	assert.Equal(t, 1, counts["so"])
	assert.Equal(t, 1, counts["um"])
}

func TestSentimentLabelThresholds(t *testing.T) {
	s := NewSentimentScorer(&fixedModel{}, POSITIVE_THRESHOLD, NEGATIVE_THRESHOLD)

	tests := []struct {
		score float64
		want  string
	}{
		{0.21, models.SENTIMENT_POSITIVE},
		{0.2, models.SENTIMENT_NEUTRAL},
		{0, models.SENTIMENT_NEUTRAL},
		{-0.2, models.SENTIMENT_NEUTRAL},
		{-0.21, models.SENTIMENT_NEGATIVE},
		{1, models.SENTIMENT_POSITIVE},
		{-1, models.SENTIMENT_NEGATIVE},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Label(tt.score), "score %v", tt.score)
	}
}

func TestSentimentScore(t *testing.T) {
	model := &fixedModel{score: 0.5}
	s := NewSentimentScorer(model, POSITIVE_THRESHOLD, NEGATIVE_THRESHOLD)

	res, err := s.Score("great answer")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentResult{Score: 0.5, Label: models.SENTIMENT_POSITIVE}, res)

	res, err = s.Score("")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentResult{Score: 0, Label: models.SENTIMENT_NEUTRAL}, res)
	assert.Equal(t, 1, model.calls)
}

func TestSentimentScoreClamped(t *testing.T) {
	s := NewSentimentScorer(&fixedModel{score: -3}, POSITIVE_THRESHOLD, NEGATIVE_THRESHOLD)

	res, err := s.Score("bad")
	require.NoError(t, err)
	assert.Equal(t, -1.0, res.Score)
}

func TestSentimentModelFailure(t *testing.T) {
	boom := errors.New("model offline")
	s := NewSentimentScorer(&fixedModel{err: boom}, POSITIVE_THRESHOLD, NEGATIVE_THRESHOLD)

	_, err := s.Score("text")
	assert.ErrorIs(t, err, ErrCollaborator)
	assert.ErrorIs(t, err, boom)
}

func TestSentimentRejectsNonFiniteScores(t *testing.T) {
	for _, score := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s := NewSentimentScorer(&fixedModel{score: score}, POSITIVE_THRESHOLD, NEGATIVE_THRESHOLD)

		_, err := s.Score("text")
		assert.ErrorIs(t, err, ErrCollaborator, "score %v", score)
	}
}

func TestExtractKeywords(t *testing.T) {
	ke := NewKeywordExtractor(splitTokenizer{})
	text := "teamwork leadership project teamwork the project i'm coding teamwork"

	got, err := ke.Extract(text, 3)
	require.NoError(t, err)
	assert.Equal(t, []models.Keyword{
		{Term: "teamwork", Frequency: 3},
		{Term: "project", Frequency: 2},
		{Term: "leadership", Frequency: 1},
	}, got)

	all, err := ke.Extract(text, 100)
	require.NoError(t, err)
	assert.Equal(t, []models.Keyword{
		{Term: "teamwork", Frequency: 3},
		{Term: "project", Frequency: 2},
		{Term: "leadership", Frequency: 1},
		{Term: "coding", Frequency: 1},
	}, all)
}

func TestExtractKeywordsNonPositiveTopN(t *testing.T) {
	ke := NewKeywordExtractor(splitTokenizer{err: errors.New("unused")})

	for _, n := range []int{0, -1} {
		got, err := ke.Extract("teamwork", n)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestExtractKeywordsTokenizerFailure(t *testing.T) {
	boom := errors.New("tokenizer crashed")
	_, err := NewKeywordExtractor(splitTokenizer{err: boom}).Extract("x", 5)
	assert.ErrorIs(t, err, ErrCollaborator)
	assert.ErrorIs(t, err, boom)
}

func TestFeedbackFragments(t *testing.T) {
	fs := NewFeedbackSynthesizer(DefaultConfig())
	kws := []models.Keyword{{Term: "a", Frequency: 6}, {Term: "b", Frequency: 5}, {Term: "c", Frequency: 4}, {Term: "d", Frequency: 3}, {Term: "e", Frequency: 2}, {Term: "f", Frequency: 1}}

	tests := []struct {
		name     string
		score    float64
		fillers  models.FillerCounts
		keywords []models.Keyword
		want     []string
	}{
		{
			name:     "positive heavy fillers",
			score:    0.35,
			fillers:  models.FillerCounts{"um": 8, "like": 3},
			keywords: kws,
			want: []string{
				TONE_POSITIVE,
				"You used 11 filler words. Try to reduce these for smoother delivery.",
				"Your top keywords show focus on: a, b, c, d, e.",
			},
		},
		{
			name:     "neutral at threshold moderate fillers",
			score:    0.2,
			fillers:  models.FillerCounts{"um": 10},
			keywords: kws[:2],
			want: []string{
				TONE_NEUTRAL,
				"You used 10 filler words. Good control, but there's room for improvement.",
				"Your top keywords show focus on: a, b.",
			},
		},
		{
			name:    "negative no fillers no keywords",
			score:   -0.5,
			fillers: models.FillerCounts{"um": 0},
			want: []string{
				TONE_NEGATIVE,
				FILLER_NONE,
				KEYWORDS_NONE,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fs.Synthesize(models.SentimentResult{Score: tt.score}, tt.fillers, tt.keywords)
			assert.Equal(t, strings.Join(tt.want, " "), got)
		})
	}
}

func TestAnalyzeExample(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), &fixedModel{score: 0.1}, splitTokenizer{})

	report, err := a.Analyze(context.Background(),
		"So, um, I think I was like really prepared, you know? But, uh, I guess I was actually nervous.", DEFAULT_TOP_N)
	require.NoError(t, err)

	assert.Equal(t, 6, report.TotalFillers)
	assert.Len(t, report.FillerCounts, len(DefaultConfig().FillerWords))
	assert.Equal(t, models.SENTIMENT_NEUTRAL, report.Sentiment.Label)
	assert.LessOrEqual(t, len(report.Keywords), DEFAULT_TOP_N)
	assert.Contains(t, report.Feedback,
		"You used 6 filler words. Good control, but there's room for improvement.")
	assert.True(t, strings.HasPrefix(report.Feedback, TONE_NEUTRAL+" "))
}

func TestAnalyzeNoFillers(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), &fixedModel{}, splitTokenizer{})

	report, err := a.Analyze(context.Background(), "xyz xyz xyz", DEFAULT_TOP_N)
	require.NoError(t, err)
	assert.Zero(t, report.TotalFillers)
	assert.Contains(t, report.Feedback, FILLER_NONE)
	assert.Equal(t, "xyz", report.TopKeyword())
}

func TestAnalyzeEmptyInput(t *testing.T) {
	model := &fixedModel{}
	a := NewAnalyzer(DefaultConfig(), model, splitTokenizer{})

	for _, in := range []string{"", "   ", "?!. 42"} {
		report, err := a.Analyze(context.Background(), in, DEFAULT_TOP_N)
		assert.ErrorIs(t, err, ErrNoContent)
		assert.Nil(t, report)
	}
	assert.Zero(t, model.calls)
}

func TestAnalyzeCollaboratorFailure(t *testing.T) {
	boom := errors.New("model offline")
	a := NewAnalyzer(DefaultConfig(), &fixedModel{err: boom}, splitTokenizer{})

	report, err := a.Analyze(context.Background(), "i was ready", DEFAULT_TOP_N)
	assert.ErrorIs(t, err, ErrCollaborator)
	assert.Nil(t, report)
}

func TestAnalyzeSource(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), &fixedModel{}, splitTokenizer{})

	report, err := a.AnalyzeSource(context.Background(), stubSource{text: "um teamwork"}, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, report.FillerCounts["um"])

	boom := errors.New("upload broken")
	report, err = a.AnalyzeSource(context.Background(), stubSource{err: boom}, 5)
	assert.ErrorIs(t, err, ErrAcquisition)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, report)
}

func TestAnalyzerConfigIsolated(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAnalyzer(cfg, &fixedModel{}, splitTokenizer{})
	cfg.FillerWords[0] = "changed"

	assert.Equal(t, "um", a.FillerVocabulary()[0])
}

func TestFormatKeywords(t *testing.T) {
	assert.Equal(t, "", FormatKeywords(nil))
	assert.Equal(t, "leadership, teamwork", FormatKeywords([]models.Keyword{{Term: "leadership", Frequency: 2}, {Term: "teamwork", Frequency: 1}}))
}
