package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/expo-preview/pkg/domain/model"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token      string `masq:"secret"`
	Repository string
	APIURL     string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token used to compare commits",
			Destination: &c.Token,
			Sources:     cli.EnvVars("EXPO_PREVIEW_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-repository",
			Usage:       "Repository in owner/name form",
			Required:    true,
			Destination: &c.Repository,
			Sources:     cli.EnvVars("EXPO_PREVIEW_GITHUB_REPOSITORY", "GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Value:       "https://api.github.com/",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("EXPO_PREVIEW_GITHUB_API_URL", "GITHUB_API_URL"),
		},
	}
}

// Repo parses the configured repository
func (c *GitHub) Repo() (model.Repository, error) {
	return model.ParseRepository(c.Repository)
}
