package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/interviewlens/config"
	"github.com/spacesedan/interviewlens/internal/models"
)

func TestRun(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	tests := []struct {
		name       string
		opts       options
		wantCode   int
		wantStderr string
		wantStdout string
	}{
		{
			name:       "no input",
			opts:       options{topN: 5},
			wantCode:   exitNoContent,
			wantStderr: "Pass -text, -file, -s3-bucket/-s3-key or -audio.",
		},
		{
			name:       "punctuation only",
			opts:       options{text: "?! ...", topN: 5},
			wantCode:   exitNoContent,
			wantStderr: "The transcript has no analyzable text.",
		},
		{
			name:       "unreadable file",
			opts:       options{file: missing, topN: 5},
			wantCode:   exitFailed,
			wantStderr: "Analysis failed:",
		},
		{
			name:       "text report",
			opts:       options{text: "Um, I really enjoyed leading the platform migration.", topN: 5},
			wantCode:   0,
			wantStdout: "Overall Sentiment:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(context.Background(), tt.opts, config.AnalysisConfig{}, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
				assert.Empty(t, stdout.String())
			} else {
				assert.Empty(t, stderr.String())
			}
			if tt.wantStdout != "" {
				assert.Contains(t, stdout.String(), tt.wantStdout)
			}
		})
	}
}

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := options{text: "Um, the migration went well and the migration finished early.", topN: 3, asJSON: true}

	code := run(context.Background(), opts, config.AnalysisConfig{}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Empty(t, stderr.String())

	var report models.AnalysisReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, 1, report.FillerCounts["um"])
	assert.Equal(t, "migration", report.TopKeyword())
}
