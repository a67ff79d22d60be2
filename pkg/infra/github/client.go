package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/google/go-github/v75/github"
	"github.com/gregjones/httpcache"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/expo-preview/pkg/domain/interfaces"
	"github.com/m-mizutani/expo-preview/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

var _ interfaces.GitHubClient = (*client)(nil)

// NewClient creates a GitHub client authenticated with a token.
// Requests go through an ETag cache and the secondary rate limit middleware.
// An empty apiURL keeps the public api.github.com endpoint.
func NewClient(token, apiURL string) (interfaces.GitHubClient, error) {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)

	githubClient := github.NewClient(rateLimitClient)
	if token != "" {
		githubClient = githubClient.WithAuthToken(token)
	}

	if apiURL != "" {
		if err := setBaseURL(githubClient, apiURL); err != nil {
			return nil, err
		}
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// NewClientWithHTTPClient creates a client on top of httpClient without any
// middleware. It is used to point the client at a test server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (interfaces.GitHubClient, error) {
	githubClient := github.NewClient(httpClient)
	if err := setBaseURL(githubClient, baseURL); err != nil {
		return nil, err
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

func setBaseURL(githubClient *github.Client, baseURL string) error {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return goerr.Wrap(err, "failed to parse GitHub API URL", goerr.V("url", baseURL))
	}
	githubClient.BaseURL = u
	return nil
}

// CompareCommits compares base...head with a single request. The compare API
// pages commits only; the changed files (up to 300) all come with the first page.
func (c *client) CompareCommits(ctx context.Context, repo model.Repository, base, head string) (*model.Comparison, error) {
	logger := ctxlog.From(ctx)

	comparison, resp, err := c.githubClient.Repositories.CompareCommits(ctx, repo.Owner, repo.Name, base, head, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compare commits",
			goerr.V("repository", repo.FullName()),
			goerr.V("base", base),
			goerr.V("head", head),
		)
	}

	logger.Debug("GitHub API rate limit",
		"remaining", resp.Rate.Remaining,
		"limit", resp.Rate.Limit,
	)

	files := make([]string, 0, len(comparison.Files))
	for _, file := range comparison.Files {
		files = append(files, file.GetFilename())
	}

	return &model.Comparison{
		StatusCode: resp.StatusCode,
		Status:     model.ComparisonStatus(comparison.GetStatus()),
		Files:      files,
	}, nil
}
