package analysis

import "errors"

var (
	// ErrNoContent means the input had nothing left to analyze after normalization.
	ErrNoContent = errors.New("no analyzable content")
	// ErrAcquisition wraps failures of the text source feeding the pipeline.
	ErrAcquisition = errors.New("text acquisition failed")
	// ErrCollaborator wraps failures of the sentiment model or the tokenizer.
	ErrCollaborator = errors.New("analysis collaborator failed")
)
