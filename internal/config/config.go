// Package config loads runtime settings from the environment and an optional dotenv file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when no other file is given. It may be absent.
const DefaultEnvFile = ".env"

// Config holds the settings shared by every command.
type Config struct {
	// Token is sent to GitHub when set. Unauthenticated requests are the default.
	Token string
	// APIURL overrides the REST API root.
	APIURL string
	// GraphQLURL overrides the GraphQL endpoint.
	GraphQLURL string
}

// Load reads envFile into the process environment (variables already set win)
// and then builds a Config from GITHUB_TOKEN, GITHUB_API_URL and GITHUB_GRAPHQL_URL.
// A missing envFile is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	return &Config{
		Token:      os.Getenv("GITHUB_TOKEN"),
		APIURL:     os.Getenv("GITHUB_API_URL"),
		GraphQLURL: os.Getenv("GITHUB_GRAPHQL_URL"),
	}, nil
}
