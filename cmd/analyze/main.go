package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spacesedan/interviewlens/config"
	"github.com/spacesedan/interviewlens/internal/analysis"
	"github.com/spacesedan/interviewlens/internal/clients"
	"github.com/spacesedan/interviewlens/internal/logging"
	"github.com/spacesedan/interviewlens/internal/nlp"
	"github.com/spacesedan/interviewlens/internal/sentiment"
	"github.com/spacesedan/interviewlens/internal/transcript"
)

const (
	exitFailed    = 1
	exitNoContent = 2
)

type options struct {
	text     string
	file     string
	s3Bucket string
	s3Key    string
	audio    string
	topN     int
	asJSON   bool
}

func main() {
	config.LoadEnv(config.AppEnv())
	logging.InitLogger()

	cfg := config.GetAnalysisConfig()

	var opts options
	flag.StringVar(&opts.text, "text", "", "transcript text to analyze")
	flag.StringVar(&opts.file, "file", "", "path to a .txt or .md transcript")
	flag.StringVar(&opts.s3Bucket, "s3-bucket", "", "bucket holding an uploaded transcript")
	flag.StringVar(&opts.s3Key, "s3-key", "", "object key of an uploaded transcript")
	flag.StringVar(&opts.audio, "audio", "", "audio recording (.mp3, .wav, .m4a) to transcribe first")
	flag.IntVar(&opts.topN, "top", cfg.TopN, "number of keywords to report")
	flag.BoolVar(&opts.asJSON, "json", false, "print the report as JSON")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	os.Exit(run(ctx, opts, cfg, os.Stdout, os.Stderr))
}

func run(ctx context.Context, opts options, cfg config.AnalysisConfig, stdout, stderr io.Writer) int {
	src, err := sourceFor(opts, cfg)
	if err != nil {
		fmt.Fprintln(stderr, "No valid input provided. Pass -text, -file, -s3-bucket/-s3-key or -audio.")
		return exitNoContent
	}

	analyzer := analysis.NewAnalyzer(analysis.DefaultConfig(), sentiment.NewVaderModel(), nlp.NewTokenizer())

	report, err := analyzer.AnalyzeSource(ctx, src, opts.topN)
	switch {
	case errors.Is(err, analysis.ErrNoContent):
		fmt.Fprintln(stderr, "No valid input provided. The transcript has no analyzable text.")
		return exitNoContent
	case err != nil:
		slog.Error("[Analyze] Analysis failed", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "Analysis failed: %v\n", err)
		return exitFailed
	}

	if opts.asJSON {
		err = writeJSON(stdout, report)
	} else {
		err = writeText(stdout, report, analyzer.FillerVocabulary())
	}
	if err != nil {
		slog.Error("[Analyze] Failed to write report", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
		return exitFailed
	}
	return 0
}

// sourceFor builds sources lazily so credentials are only required for the
// source actually used.
func sourceFor(opts options, cfg config.AnalysisConfig) (transcript.Source, error) {
	var audio, file, text transcript.Source

	if opts.audio != "" {
		audio = transcript.Audio{
			Client: clients.GetOpenAIClient().Client,
			Path:   opts.audio,
			Model:  cfg.TranscribeModel,
		}
	}

	switch {
	case opts.file != "":
		file = transcript.File{Path: opts.file}
	case opts.s3Bucket != "" && opts.s3Key != "":
		file = transcript.S3Object{
			Client: clients.GetS3Client(),
			Bucket: opts.s3Bucket,
			Key:    opts.s3Key,
		}
	}

	if opts.text != "" {
		text = transcript.Inline(opts.text)
	}

	return transcript.Select(audio, file, text)
}
