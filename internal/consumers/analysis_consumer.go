package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/interviewlens/internal/analysis"
	"github.com/spacesedan/interviewlens/internal/clients/kafka_client"
	"github.com/spacesedan/interviewlens/internal/models"
)

const (
	INITIAL_HANDLE_BACKOFF = 1 * time.Second
	MAX_HANDLE_BACKOFF     = 32 * time.Second
)

type Analyzer interface {
	Analyze(ctx context.Context, raw string, topN int) (*models.AnalysisReport, error)
}

type Publisher interface {
	PublishJSON(topic string, key string, value any) error
}

// ProcessedStore tracks request IDs that already have a published result.
type ProcessedStore interface {
	IsProcessed(ctx context.Context, requestID string) (bool, error)
	MarkProcessed(ctx context.Context, requestID string) error
}

type AnalysisConsumer struct {
	analyzer    Analyzer
	publisher   Publisher
	store       ProcessedStore
	resultTopic string
	defaultTopN int
	now         func() time.Time
	retryDelay  time.Duration
}

func NewAnalysisConsumer(analyzer Analyzer, publisher Publisher, store ProcessedStore, resultTopic string, defaultTopN int) *AnalysisConsumer {
	return &AnalysisConsumer{
		analyzer:    analyzer,
		publisher:   publisher,
		store:       store,
		resultTopic: resultTopic,
		defaultTopN: defaultTopN,
		now:         time.Now,
		retryDelay:  INITIAL_HANDLE_BACKOFF,
	}
}

type messageSource interface {
	Next() (*kafka.Message, error)
}

type offsetCommitter interface {
	Commit(msg *kafka.Message) error
}

// Start reads requests until ctx is done. An offset is committed only after
// the result for its request was published.
func (ac *AnalysisConsumer) Start(ctx context.Context, consumer *kafka.Consumer) {
	ac.consume(ctx,
		kafka_client.NewKafkaMessageIterator(ctx, consumer),
		kafka_client.NewCommitHandler(ctx, consumer))
}

func (ac *AnalysisConsumer) consume(ctx context.Context, source messageSource, committer offsetCommitter) {
	for {
		select {
		case <-ctx.Done():
			slog.Warn("[AnalysisConsumer] Consumer shutting down...")
			return
		default:
		}

		msg, err := source.Next()
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			slog.Error("[AnalysisConsumer] Kafka Consumer Error",
				slog.String("error", err.Error()))
			continue
		}

		if !ac.handleUntilDone(ctx, msg) {
			return
		}

		if err := committer.Commit(msg); err != nil {
			slog.Warn("[AnalysisConsumer] Failed to commit offset",
				slog.String("error", err.Error()))
		}
	}
}

// handleUntilDone retries msg with backoff so that a later commit never
// skips a request whose result was not published. It reports false when ctx
// ends first, leaving the offset uncommitted for redelivery.
func (ac *AnalysisConsumer) handleUntilDone(ctx context.Context, msg *kafka.Message) bool {
	backoff := ac.retryDelay
	for attempt := 1; ; attempt++ {
		err := ac.Handle(ctx, msg.Value)
		if err == nil {
			return true
		}

		slog.Error("[AnalysisConsumer] Failed to handle request, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > MAX_HANDLE_BACKOFF {
			backoff = MAX_HANDLE_BACKOFF
		}
	}
}

// Handle processes one raw request message. Malformed messages are dropped
// and reported as handled so they are not redelivered forever.
func (ac *AnalysisConsumer) Handle(ctx context.Context, value []byte) error {
	var req models.AnalysisRequest
	if err := json.Unmarshal(value, &req); err != nil {
		slog.Warn("[AnalysisConsumer] Dropping malformed request",
			slog.String("error", err.Error()))
		return nil
	}
	if req.RequestID == "" {
		slog.Warn("[AnalysisConsumer] Dropping request without request_id")
		return nil
	}

	done, err := ac.store.IsProcessed(ctx, req.RequestID)
	if err != nil {
		slog.Warn("[AnalysisConsumer] Could not check processed state, analyzing anyway",
			slog.String("request_id", req.RequestID),
			slog.String("error", err.Error()))
	}
	if done {
		slog.Info("[AnalysisConsumer] Request already processed, skipping",
			slog.String("request_id", req.RequestID))
		return nil
	}

	result := ac.analyze(ctx, req)

	if err := ac.publisher.PublishJSON(ac.resultTopic, req.RequestID, result); err != nil {
		return fmt.Errorf("[AnalysisConsumer] failed to publish result for %s: %w", req.RequestID, err)
	}

	if err := ac.store.MarkProcessed(ctx, req.RequestID); err != nil {
		slog.Warn("[AnalysisConsumer] Failed to mark request processed",
			slog.String("request_id", req.RequestID),
			slog.String("error", err.Error()))
	}

	return nil
}

func (ac *AnalysisConsumer) analyze(ctx context.Context, req models.AnalysisRequest) models.AnalysisResult {
	topN := req.TopN
	if topN == 0 {
		topN = ac.defaultTopN
	}

	result := models.AnalysisResult{
		RequestID:   req.RequestID,
		ProcessedAt: ac.now().UTC(),
	}

	report, err := ac.analyzer.Analyze(ctx, req.Text, topN)
	switch {
	case err == nil:
		result.Report = report
		slog.Info("[AnalysisConsumer] Request analyzed",
			slog.String("request_id", req.RequestID),
			slog.String("sentiment", report.Sentiment.Label),
			slog.Int("total_fillers", report.TotalFillers))
	case errors.Is(err, analysis.ErrNoContent):
		result.Error = err.Error()
		result.ErrorKind = models.ERROR_KIND_NO_CONTENT
		slog.Warn("[AnalysisConsumer] No analyzable content",
			slog.String("request_id", req.RequestID))
	default:
		result.Error = err.Error()
		result.ErrorKind = models.ERROR_KIND_ANALYSIS_FAILED
		slog.Error("[AnalysisConsumer] Analysis failed",
			slog.String("request_id", req.RequestID),
			slog.String("error", err.Error()))
	}

	return result
}
