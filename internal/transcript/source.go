package transcript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var ErrNoSource = errors.New("no transcript source provided")

// Source supplies raw transcript text to the analysis pipeline.
type Source interface {
	Text(ctx context.Context) (string, error)
}

// Inline is text pasted or sent directly by the caller.
type Inline string

func (i Inline) Text(context.Context) (string, error) {
	return string(i), nil
}

// File reads an uploaded .txt or .md transcript from disk.
type File struct {
	Path string
}

func (f File) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("[Transcript] failed to read %s: %w", f.Path, err)
	}

	return decode(f.Path, content)
}

func decode(name string, content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", fmt.Errorf("[Transcript] %s is not valid UTF-8", name)
	}
	text := string(content)
	if isMarkdown(name) {
		text = ConvertMarkdownToText(text)
	}
	return text, nil
}

// Select picks the first available source, in the order audio, uploaded
// file, pasted text. Nil sources are skipped.
func Select(sources ...Source) (Source, error) {
	for _, src := range sources {
		if src != nil {
			return src, nil
		}
	}
	return nil, ErrNoSource
}
