package assistant

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucasreb/aidebot/internal/intent"
)

// Construction precondition failures.
var (
	ErrBlankInput    = errors.New("input text must not be blank")
	ErrNoTimestamp   = errors.New("request timestamp is required")
	ErrBadConfidence = errors.New("confidence must be between 0 and 1")
)

// Request encapsulates one user request: the raw text, when it was made, and
// the inferred (or supplied) intent. The ID correlates log lines for a single
// request/response cycle.
type Request struct {
	ID        string
	Text      string
	Timestamp time.Time
	Intent    intent.Intent
}

// NewRequest validates the raw text and builds a request, inferring the
// intent from the text.
func NewRequest(text string, timestamp time.Time) (*Request, error) {
	return NewRequestWithIntent(text, timestamp, intent.Classify(text))
}

// NewRequestWithIntent builds a request with an explicitly supplied intent,
// bypassing classification.
func NewRequestWithIntent(text string, timestamp time.Time, in intent.Intent) (*Request, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrBlankInput
	}
	if timestamp.IsZero() {
		return nil, ErrNoTimestamp
	}

	return &Request{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: timestamp,
		Intent:    in,
	}, nil
}

// Response is the assistant's reply: a message, a static confidence score in
// [0, 1], and whether a concrete action was taken. All fields are set at
// construction and never mutated.
type Response struct {
	Message         string
	Confidence      float64
	ActionPerformed bool
}

// NewResponse validates the confidence range and builds a response.
func NewResponse(message string, confidence float64, actionPerformed bool) (Response, error) {
	if confidence < 0.0 || confidence > 1.0 {
		return Response{}, fmt.Errorf("%w: got %v", ErrBadConfidence, confidence)
	}

	return Response{
		Message:         message,
		Confidence:      confidence,
		ActionPerformed: actionPerformed,
	}, nil
}
