package cmd

import (
	"fmt"

	"github.com/naka-gawa/github-repos/internal/config"
	"github.com/naka-gawa/github-repos/internal/gateway"
	"github.com/naka-gawa/github-repos/internal/sink"
	"github.com/naka-gawa/github-repos/internal/usecase"
	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch <username>...",
		Short: "Fetches the repositories of GitHub users and outputs them as JSON",
		Long: `Fetches the first page of public repositories of each given GitHub user with a
single GET /users/{username}/repos request and prints one JSON document per user.
Requests are unauthenticated unless GITHUB_TOKEN is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			envFile, _ := cmd.Flags().GetString("env-file")
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}

			useGraphQL, _ := cmd.Flags().GetBool("graphql")
			waitRateLimit, _ := cmd.Flags().GetBool("wait-rate-limit")
			withSummary, _ := cmd.Flags().GetBool("summary")

			// Inject dependencies and run the main business logic.
			githubGateway, err := gateway.NewGitHubGateway(gateway.Options{
				Token:         cfg.Token,
				BaseURL:       cfg.APIURL,
				GraphQLURL:    cfg.GraphQLURL,
				GraphQL:       useGraphQL,
				WaitRateLimit: waitRateLimit,
			}, logger)
			if err != nil {
				return fmt.Errorf("failed to create GitHub gateway: %w", err)
			}
			fetcher := usecase.NewRepositoryFetcher(githubGateway, sink.NewJSONSink(cmd.OutOrStdout(), withSummary), logger)

			if err := fetcher.FetchAll(cmd.Context(), args); err != nil {
				return fmt.Errorf("failed to fetch repositories: %w", err)
			}
			return nil
		},
	}

	fetchCmd.Flags().Bool("graphql", false, "Use the GraphQL API instead of REST (requires GITHUB_TOKEN)")
	fetchCmd.Flags().Bool("wait-rate-limit", false, "Sleep through secondary rate limits instead of failing")
	fetchCmd.Flags().Bool("summary", false, "Include star statistics in the output")
	return fetchCmd
}
