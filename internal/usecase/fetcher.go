// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"github.com/naka-gawa/github-repos/internal/domain"
	"github.com/naka-gawa/github-repos/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// Sink receives the result of every successful fetch.
type Sink interface {
	Emit(username string, repos []*domain.Repository) error
}

// RepositoryFetcher is the use case for fetching a user's repositories and
// handing them to a sink.
type RepositoryFetcher struct {
	fetcher gateway.Fetcher
	sink    Sink
	logger  *log.Logger
}

// NewRepositoryFetcher creates a new RepositoryFetcher instance.
func NewRepositoryFetcher(fetcher gateway.Fetcher, sink Sink, logger *log.Logger) *RepositoryFetcher {
	return &RepositoryFetcher{
		fetcher: fetcher,
		sink:    sink,
		logger:  logger,
	}
}

// Fetch fetches the repositories of a single user and emits them exactly once.
// Nothing is emitted when the fetch fails.
func (f *RepositoryFetcher) Fetch(ctx context.Context, username string) ([]*domain.Repository, error) {
	repos, err := f.fetcher.FetchRepositories(ctx, username)
	if err != nil {
		f.logger.Printf("Usecase: fetch for %s failed: %v\n", username, err)
		return nil, err
	}
	if err := f.sink.Emit(username, repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// FetchAll runs one independent Fetch per username concurrently.
// Results are emitted as each fetch completes, so no order between users is guaranteed.
// The first failure cancels the remaining fetches and is returned.
func (f *RepositoryFetcher) FetchAll(ctx context.Context, usernames []string) error {
	f.logger.Printf("Usecase: fetching repositories for %d user(s)...\n", len(usernames))

	eg, egCtx := errgroup.WithContext(ctx)
	for _, username := range usernames {
		username := username
		eg.Go(func() error {
			_, err := f.Fetch(egCtx, username)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	f.logger.Println("Usecase: all fetches completed.")
	return nil
}
