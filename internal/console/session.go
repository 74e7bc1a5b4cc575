// Package console implements the console driver: it replays a scripted set
// of user interactions against their assistants and prints the transcript.
// Console output is the application's only user-facing surface.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lucasreb/aidebot/internal/assistant"
)

const separatorWidth = 60

// Interaction pairs an assistant with the raw input text it will handle.
type Interaction struct {
	Assistant assistant.Assistant
	Input     string
}

// Session drives a sequence of interactions and writes the transcript to out.
type Session struct {
	logger *slog.Logger
	out    io.Writer

	greetingStyle  lipgloss.Style
	separatorStyle lipgloss.Style
}

// NewSession creates a console session writing to out.
func NewSession(logger *slog.Logger, out io.Writer) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		logger:         logger.With("component", "console"),
		out:            out,
		greetingStyle:  lipgloss.NewStyle().Bold(true),
		separatorStyle: lipgloss.NewStyle().Faint(true),
	}
}

// Run replays the interactions in order. For each one it prints the
// assistant's greeting, echoes the raw request, prints the handled response,
// and closes with a separator line.
func (s *Session) Run(ctx context.Context, interactions []Interaction) error {
	for _, it := range interactions {
		if err := ctx.Err(); err != nil {
			return err
		}

		greeting := it.Assistant.Greet()
		fmt.Fprintln(s.out, s.greetingStyle.Render(greeting.Message))

		fmt.Fprintf(s.out, "User request: '%s'\n", it.Input)

		req, err := assistant.NewRequest(it.Input, time.Now())
		if err != nil {
			return fmt.Errorf("invalid scripted input %q: %w", it.Input, err)
		}

		resp := it.Assistant.Handle(ctx, req)
		fmt.Fprintln(s.out, resp.Message)
		fmt.Fprintln(s.out, s.separatorStyle.Render(strings.Repeat("-", separatorWidth)))

		s.logger.InfoContext(ctx, "Handled interaction",
			"request_id", req.ID,
			"user", it.Assistant.Profile().Name,
			"intent", req.Intent.String(),
			"confidence", resp.Confidence,
			"action_performed", resp.ActionPerformed)
	}

	s.logger.Info("Console session finished", "interactions", len(interactions))
	return nil
}
