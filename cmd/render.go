package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/naka-gawa/github-repos/internal/domain"
	"github.com/naka-gawa/github-repos/internal/render"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Renders a JSON repository list into an HTML page",
		Long: `Reads a JSON array of repositories (each with "name" and "stargazers_count"),
replaces the children of the container element with one list item per repository
and writes the resulting page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			inputPath, _ := cmd.Flags().GetString("input")
			pagePath, _ := cmd.Flags().GetString("page")
			containerID, _ := cmd.Flags().GetString("container")
			outputPath, _ := cmd.Flags().GetString("output")

			var in io.Reader = cmd.InOrStdin()
			if inputPath != "" && inputPath != "-" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			repos, err := domain.DecodeRepositories(in)
			if err != nil {
				return err
			}
			logger.Printf("Read %d repositories.\n", len(repos))

			var page io.Reader = strings.NewReader(render.DefaultPage)
			if pagePath != "" {
				f, err := os.Open(pagePath)
				if err != nil {
					return fmt.Errorf("failed to open page: %w", err)
				}
				defer f.Close()
				page = f
			}
			doc, err := render.ParsePage(page)
			if err != nil {
				return err
			}

			if err := render.RenderByID(doc, containerID, repos); err != nil {
				return err
			}
			logger.Printf("Rendered %d items into #%s.\n", len(repos), containerID)

			if outputPath == "" || outputPath == "-" {
				return render.WritePage(cmd.OutOrStdout(), doc)
			}
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			if err := render.WritePage(f, doc); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close output: %w", err)
			}
			return nil
		},
	}

	renderCmd.Flags().StringP("input", "i", "", "JSON file with the repository list (default: stdin)")
	renderCmd.Flags().StringP("page", "p", "", "HTML page to render into (default: a minimal built-in page)")
	renderCmd.Flags().String("container", render.ContainerID, "id of the list element to fill")
	renderCmd.Flags().StringP("output", "o", "", "File to write the page to (default: stdout)")
	return renderCmd
}
