package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/interviewlens/config"
	"github.com/spacesedan/interviewlens/internal/analysis"
	"github.com/spacesedan/interviewlens/internal/clients"
	"github.com/spacesedan/interviewlens/internal/clients/kafka_client"
	"github.com/spacesedan/interviewlens/internal/consumers"
	"github.com/spacesedan/interviewlens/internal/logging"
	"github.com/spacesedan/interviewlens/internal/nlp"
	"github.com/spacesedan/interviewlens/internal/sentiment"
)

func main() {
	config.LoadEnv(config.AppEnv())
	logging.InitLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := kafka_client.GetKafkaConfig()
	analysisCfg := config.GetAnalysisConfig()

	var producer *kafka_client.Producer
	for {
		p, err := kafka_client.NewProducer(cfg)
		if err == nil {
			producer = p
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
	defer producer.Close()

	store := clients.InitValkey()
	defer clients.CloseValkey()

	analyzer := analysis.NewAnalyzer(analysis.DefaultConfig(), sentiment.NewVaderModel(), nlp.NewTokenizer())
	consumer := consumers.NewAnalysisConsumer(analyzer, producer, store, cfg.ResultTopic, analysisCfg.TopN)

	if err := kafka_client.StartConsumer(ctx, cfg, consumer.Start); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
