package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spacesedan/interviewlens/internal/models"
)

// TextSource supplies the raw transcript, e.g. pasted text, an uploaded file
// or an audio transcription.
type TextSource interface {
	Text(ctx context.Context) (string, error)
}

type Analyzer struct {
	cfg       Config
	fillers   *FillerDetector
	sentiment *SentimentScorer
	keywords  *KeywordExtractor
	feedback  *FeedbackSynthesizer
}

func NewAnalyzer(cfg Config, model SentimentModel, tokenizer Tokenizer) *Analyzer {
	cfg = cfg.clone()
	return &Analyzer{
		cfg:       cfg,
		fillers:   NewFillerDetector(cfg.FillerWords),
		sentiment: NewSentimentScorer(model, cfg.PositiveThreshold, cfg.NegativeThreshold),
		keywords:  NewKeywordExtractor(tokenizer),
		feedback:  NewFeedbackSynthesizer(cfg),
	}
}

// FillerVocabulary returns the filler terms in display order.
func (a *Analyzer) FillerVocabulary() []string {
	return a.fillers.Vocabulary()
}

// AnalyzeSource reads text from src and analyzes it. A failing source is
// reported as ErrAcquisition and no report is produced.
func (a *Analyzer) AnalyzeSource(ctx context.Context, src TextSource, topN int) (*models.AnalysisReport, error) {
	raw, err := src.Text(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}
	return a.Analyze(ctx, raw, topN)
}

// Analyze runs the full pipeline over raw text. The filler, sentiment and
// keyword signals only read the normalized text and are computed concurrently.
func (a *Analyzer) Analyze(ctx context.Context, raw string, topN int) (*models.AnalysisReport, error) {
	start := time.Now()

	text := Normalize(raw)
	if text == "" {
		return nil, ErrNoContent
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		wg           sync.WaitGroup
		fillerCounts models.FillerCounts
		totalFillers int
		sentiment    models.SentimentResult
		sentimentErr error
		keywords     []models.Keyword
		keywordErr   error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		fillerCounts, totalFillers = a.fillers.Count(text)
	}()
	go func() {
		defer wg.Done()
		sentiment, sentimentErr = a.sentiment.Score(text)
	}()
	go func() {
		defer wg.Done()
		keywords, keywordErr = a.keywords.Extract(text, topN)
	}()
	wg.Wait()

	if sentimentErr != nil {
		return nil, sentimentErr
	}
	if keywordErr != nil {
		return nil, keywordErr
	}

	report := &models.AnalysisReport{
		FillerCounts: fillerCounts,
		TotalFillers: totalFillers,
		Sentiment:    sentiment,
		Keywords:     keywords,
		Feedback:     a.feedback.Synthesize(sentiment, fillerCounts, keywords),
	}

	slog.Debug("[Analyzer] Transcript analyzed",
		slog.Int("chars", len(text)),
		slog.Int("total_fillers", totalFillers),
		slog.String("sentiment", sentiment.Label),
		slog.Int("keywords", len(keywords)),
		slog.Duration("elapsed", time.Since(start)))

	return report, nil
}
