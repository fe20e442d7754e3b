package kafka_client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

type KafkaCommitHandler struct {
	consumer *kafka.Consumer
	ctx      context.Context
}

func NewCommitHandler(ctx context.Context, consumer *kafka.Consumer) *KafkaCommitHandler {
	return &KafkaCommitHandler{
		consumer: consumer,
		ctx:      ctx,
	}
}

// Commit stores the offset after msg. Broker outages abort immediately;
// other failures are retried until MAX_RETRIES or ctx is done.
func (ch *KafkaCommitHandler) Commit(msg *kafka.Message) error {
	if ch.consumer == nil {
		return errors.New("[KafkaCommitHandler] Kafka consumer has not been initialized")
	}

	attrs := []any{
		slog.String("topic", topicName(msg)),
		slog.Int("partition", int(msg.TopicPartition.Partition)),
		slog.String("offset", msg.TopicPartition.Offset.String()),
	}

	var err error
	for i := 0; i < MAX_RETRIES; i++ {
		if _, err = ch.consumer.CommitMessage(msg); err == nil {
			slog.Debug("[KafkaCommitHandler] Committed offset", attrs...)
			return nil
		}

		var kafkaErr kafka.Error
		if errors.As(err, &kafkaErr) && kafkaErr.Code() == kafka.ErrAllBrokersDown {
			return fmt.Errorf("[KafkaCommitHandler] all brokers down: %w", err)
		}

		slog.Warn("[KafkaCommitHandler] Commit failed",
			append(attrs, slog.Int("attempt", i+1), slog.String("error", err.Error()))...)

		select {
		case <-ch.ctx.Done():
			return ch.ctx.Err()
		case <-time.After(RETRY_DELAY):
		}
	}

	return fmt.Errorf("[KafkaCommitHandler] commit failed after %d attempts: %w", MAX_RETRIES, err)
}

func topicName(msg *kafka.Message) string {
	if msg.TopicPartition.Topic == nil {
		return ""
	}
	return *msg.TopicPartition.Topic
}
