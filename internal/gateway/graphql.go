package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/naka-gawa/github-repos/internal/domain"
	"github.com/shurcooL/githubv4"
)

// GraphQLGateway is the GraphQL implementation of the Fetcher interface.
type GraphQLGateway struct {
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// ownerRepositoriesQuery mirrors the first page of the REST listing:
// thirty repositories the account owns, ordered by name. repositoryOwner
// resolves organizations as well as users, like users/{login}/repos does.
type ownerRepositoriesQuery struct {
	RepositoryOwner struct {
		Repositories struct {
			Nodes []struct {
				Name           string
				StargazerCount int
			}
		} `graphql:"repositories(first: 30, ownerAffiliations: [OWNER], orderBy: {field: NAME, direction: ASC})"`
	} `graphql:"repositoryOwner(login: $login)"`
}

// NewGraphQLGateway creates a GraphQLGateway. An empty endpoint uses api.github.com/graphql.
func NewGraphQLGateway(httpClient *http.Client, endpoint string, logger *log.Logger) *GraphQLGateway {
	client := githubv4.NewClient(httpClient)
	if endpoint != "" {
		client = githubv4.NewEnterpriseClient(endpoint, httpClient)
	}
	return &GraphQLGateway{
		graphqlClient: client,
		logger:        logger,
	}
}

// FetchRepositories fetches the user's repositories with a single GraphQL query.
func (g *GraphQLGateway) FetchRepositories(ctx context.Context, username string) ([]*domain.Repository, error) {
	g.logger.Printf("Fetching repositories for %s using GraphQL API...\n", username)
	variables := map[string]interface{}{"login": githubv4.String(username)}

	var q ownerRepositoriesQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for repositories: %w", classifyGraphQLError(err))
	}

	repos := make([]*domain.Repository, 0, len(q.RepositoryOwner.Repositories.Nodes))
	for i, node := range q.RepositoryOwner.Repositories.Nodes {
		repo := &domain.Repository{Name: node.Name, StargazersCount: node.StargazerCount}
		if err := repo.Validate(); err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrMalformedResponse, i, err)
		}
		repos = append(repos, repo)
	}
	g.logger.Printf("Completed fetching %d repositories for %s.\n", len(repos), username)
	return repos, nil
}
