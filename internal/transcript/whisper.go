package transcript

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var supportedAudio = map[string]bool{
	".mp3": true,
	".wav": true,
	".m4a": true,
}

// Transcriber is the OpenAI audio API used to turn speech into text.
type Transcriber interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// Audio transcribes a recording with Whisper before analysis.
type Audio struct {
	Client Transcriber
	Path   string
	Model  string
}

func (a Audio) Text(ctx context.Context) (string, error) {
	ext := strings.ToLower(filepath.Ext(a.Path))
	if !supportedAudio[ext] {
		return "", fmt.Errorf("[Transcript] unsupported audio format %q", ext)
	}

	model := a.Model
	if model == "" {
		model = openai.Whisper1
	}

	slog.Info("[Transcript] Transcribing audio, please wait...",
		slog.String("path", a.Path),
		slog.String("model", model))
	start := time.Now()

	resp, err := a.Client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    model,
		FilePath: a.Path,
		Language: "en",
	})
	if err != nil {
		return "", fmt.Errorf("[Transcript] audio transcription failed: %w", err)
	}

	slog.Info("[Transcript] Audio transcription complete",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("chars", len(resp.Text)))

	return resp.Text, nil
}
