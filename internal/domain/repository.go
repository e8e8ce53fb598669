package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedRecord is returned when a repository record does not match the
// expected shape (a name string and an integer stargazers_count).
var ErrMalformedRecord = errors.New("malformed repository record")

// Repository is the part of a GitHub repository listing this application consumes.
// It is the core domain entity of this application.
type Repository struct {
	Name            string `json:"name"`
	StargazersCount int    `json:"stargazers_count"`
}

// Validate reports whether the record can be rendered as-is: a non-empty name
// and a non-negative star count.
func (r *Repository) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil record", ErrMalformedRecord)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: empty name", ErrMalformedRecord)
	}
	if r.StargazersCount < 0 {
		return fmt.Errorf("%w: negative stargazers_count %d for %q", ErrMalformedRecord, r.StargazersCount, r.Name)
	}
	return nil
}

// rawRepository keeps pointer fields so that absent keys can be told apart from zero values.
type rawRepository struct {
	Name            *string `json:"name"`
	StargazersCount *int    `json:"stargazers_count"`
}

// DecodeRepositories reads a JSON array of repository objects from r.
// Every element must carry both a name and a stargazers_count; unknown fields are ignored.
func DecodeRepositories(r io.Reader) ([]*Repository, error) {
	dec := json.NewDecoder(r)
	var raw []*rawRepository
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode repository list: %w", ErrMalformedRecord, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: repository list is null", ErrMalformedRecord)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after repository list", ErrMalformedRecord)
	}

	repos := make([]*Repository, 0, len(raw))
	for i, rec := range raw {
		switch {
		case rec == nil:
			return nil, fmt.Errorf("%w: element %d is null", ErrMalformedRecord, i)
		case rec.Name == nil:
			return nil, fmt.Errorf("%w: element %d has no name", ErrMalformedRecord, i)
		case rec.StargazersCount == nil:
			return nil, fmt.Errorf("%w: element %d has no stargazers_count", ErrMalformedRecord, i)
		}
		repo := &Repository{Name: *rec.Name, StargazersCount: *rec.StargazersCount}
		if err := repo.Validate(); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
