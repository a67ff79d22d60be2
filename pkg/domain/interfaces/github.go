package interfaces

import (
	"context"

	"github.com/m-mizutani/expo-preview/pkg/domain/model"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// CompareCommits returns the files changed between base (exclusive) and head (inclusive)
	CompareCommits(ctx context.Context, repo model.Repository, base, head string) (*model.Comparison, error)
}
