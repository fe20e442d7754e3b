package config

import (
	"log/slog"
	"os"
	"strconv"
)

const DEFAULT_TOP_N = 10

type AnalysisConfig struct {
	TopN            int
	TranscribeModel string
}

func GetAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		TopN:            getEnvInt("ANALYSIS_TOP_N", DEFAULT_TOP_N),
		TranscribeModel: getEnv("OPENAI_TRANSCRIBE_MODEL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("[Config] Invalid integer, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return value
}
