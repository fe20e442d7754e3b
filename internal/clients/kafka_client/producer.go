package kafka_client

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

const produceAttempts = 3

type Producer struct {
	producer *kafka.Producer
}

func NewProducer(cfg KafkaConfig) (*Producer, error) {
	slog.Info("[KafkaClient] Initializing Kafka Producer...")

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":                     cfg.Broker,
		"security.protocol":                     "PLAINTEXT",
		"api.version.request":                   "true",
		"enable.idempotence":                    true,
		"acks":                                  "all",
		"max.in.flight.requests.per.connection": 1,
	})
	if err != nil {
		return nil, fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	slog.Info("[KafkaClient] Kafka Producer initialized successfully")
	return &Producer{producer: p}, nil
}

func (p *Producer) Close() {
	slog.Info("[KafkaClient] Flushing Kafka producer before shutdown...")
	if remaining := p.producer.Flush(FLUSH_TIMEOUT); remaining > 0 {
		slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	p.producer.Close()
	slog.Info("[KafkaClient] Kafka producer shut down")
}

// PublishJSON serializes value and waits for the broker to acknowledge it.
func (p *Producer) PublishJSON(topic string, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to serialize message for %s: %w", topic, err)
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(key),
		Value:          data,
	}

	delivery := make(chan kafka.Event, 1)
	err = produceWithRetry(
		func() error { return p.producer.Produce(msg, delivery) },
		func(timeoutMs int) int { return p.producer.Flush(timeoutMs) },
		RETRY_DELAY,
	)
	if err != nil {
		return err
	}

	select {
	case ev := <-delivery:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("[KafkaClient] unexpected delivery event %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("[KafkaClient] delivery failed: %w", m.TopicPartition.Error)
		}
	case <-time.After(PRODUCE_TIMEOUT):
		return fmt.Errorf("[KafkaClient] delivery to %s timed out", topic)
	}

	slog.Info("[KafkaClient] Published message",
		slog.String("topic", topic),
		slog.String("key", key))
	return nil
}

// produceWithRetry waits between attempts. A full local queue is drained
// with flush instead of sleeping, since retrying immediately would fail again.
func produceWithRetry(produce func() error, flush func(timeoutMs int) int, delay time.Duration) error {
	var err error
	for i := 0; i < produceAttempts; i++ {
		if err = produce(); err == nil {
			return nil
		}

		slog.Warn("[KafkaClient] Failed to produce message, retrying...",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))

		if i == produceAttempts-1 {
			break
		}

		var kafkaErr kafka.Error
		if errors.As(err, &kafkaErr) && kafkaErr.Code() == kafka.ErrQueueFull {
			flush(int(delay.Milliseconds()))
			continue
		}
		time.Sleep(delay)
	}
	return fmt.Errorf("[KafkaClient] failed to produce message after %d attempts: %w", produceAttempts, err)
}
