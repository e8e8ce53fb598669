// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/naka-gawa/github-repos/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching a user's repositories from GitHub.
type Fetcher interface {
	FetchRepositories(ctx context.Context, username string) ([]*domain.Repository, error)
}

// Options controls how the gateway talks to GitHub.
// The zero value issues plain unauthenticated requests against api.github.com.
type Options struct {
	// Token is sent as a bearer token when non-empty.
	Token string
	// BaseURL overrides the REST API root, e.g. for GitHub Enterprise.
	BaseURL string
	// GraphQLURL overrides the GraphQL endpoint.
	GraphQLURL string
	// GraphQL selects the GraphQL gateway instead of REST. It requires a Token.
	GraphQL bool
	// WaitRateLimit sleeps through secondary rate limits instead of failing.
	WaitRateLimit bool
}

// RESTGateway is the REST implementation of the Fetcher interface.
type RESTGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates the Fetcher selected by opts.
func NewGitHubGateway(opts Options, logger *log.Logger) (Fetcher, error) {
	httpClient, err := newHTTPClient(opts)
	if err != nil {
		return nil, err
	}

	if opts.GraphQL {
		if opts.Token == "" {
			return nil, fmt.Errorf("the GraphQL API requires a token")
		}
		return NewGraphQLGateway(httpClient, opts.GraphQLURL, logger), nil
	}
	return NewRESTGateway(httpClient, opts.BaseURL, logger)
}

func newHTTPClient(opts Options) (*http.Client, error) {
	var transport http.RoundTripper = http.DefaultTransport
	if opts.WaitRateLimit {
		rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
		}
		transport = rateLimitWaiter
	}
	if opts.Token != "" {
		transport = &oauth2.Transport{
			Base:   transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
		}
	}
	return &http.Client{Transport: transport}, nil
}

// NewRESTGateway creates a RESTGateway on top of httpClient.
// An empty baseURL keeps the public api.github.com endpoint.
func NewRESTGateway(httpClient *http.Client, baseURL string, logger *log.Logger) (*RESTGateway, error) {
	client := github.NewClient(httpClient)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}
	return &RESTGateway{
		restClient: client,
		logger:     logger,
	}, nil
}

// FetchRepositories issues a single GET users/{username}/repos request.
// The username is placed into the path as given, and no query parameters are sent,
// so only the first page GitHub returns by default is read.
func (g *RESTGateway) FetchRepositories(ctx context.Context, username string) ([]*domain.Repository, error) {
	g.logger.Printf("Fetching repositories for %s using REST API...\n", username)
	result, _, err := g.restClient.Repositories.ListByUser(ctx, username, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories with REST API: %w", classifyRESTError(err))
	}
	// go-github decodes "[]" into an empty slice, so nil means a null or empty body.
	if result == nil {
		return nil, fmt.Errorf("failed to list repositories with REST API: %w: body is not a JSON array", ErrMalformedResponse)
	}

	repos := make([]*domain.Repository, 0, len(result))
	for i, r := range result {
		repo, err := toDomainRepository(r)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrMalformedResponse, i, err)
		}
		repos = append(repos, repo)
	}
	g.logger.Printf("Completed fetching %d repositories for %s.\n", len(repos), username)
	return repos, nil
}

func toDomainRepository(r *github.Repository) (*domain.Repository, error) {
	switch {
	case r == nil:
		return nil, fmt.Errorf("%w: null record", domain.ErrMalformedRecord)
	case r.Name == nil:
		return nil, fmt.Errorf("%w: no name", domain.ErrMalformedRecord)
	case r.StargazersCount == nil:
		return nil, fmt.Errorf("%w: no stargazers_count", domain.ErrMalformedRecord)
	}
	repo := &domain.Repository{Name: r.GetName(), StargazersCount: r.GetStargazersCount()}
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	return repo, nil
}
