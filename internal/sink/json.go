// Package sink provides the outputs a fetch result can be emitted to.
package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/naka-gawa/github-repos/internal/domain"
	"github.com/naka-gawa/github-repos/internal/usecase"
)

// JSONSink writes one pretty-printed JSON document per emitted fetch result.
// It is safe for concurrent use.
type JSONSink struct {
	mu          sync.Mutex
	w           io.Writer
	withSummary bool
}

type userRepositories struct {
	User         string               `json:"user"`
	Repositories []*domain.Repository `json:"repositories"`
	Summary      *domain.StarSummary  `json:"summary,omitempty"`
}

// NewJSONSink creates a JSONSink writing to w. When withSummary is set each
// document also carries the star statistics of the listing.
func NewJSONSink(w io.Writer, withSummary bool) *JSONSink {
	return &JSONSink{w: w, withSummary: withSummary}
}

// Emit implements usecase.Sink.
func (s *JSONSink) Emit(username string, repos []*domain.Repository) error {
	if repos == nil {
		repos = []*domain.Repository{}
	}
	doc := userRepositories{User: username, Repositories: repos}
	if s.withSummary {
		summary := usecase.Summarize(repos)
		doc.Summary = &summary
	}

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repositories to JSON: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.w, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write repositories: %w", err)
	}
	return nil
}

var _ usecase.Sink = (*JSONSink)(nil)
