package usecase

import (
	"context"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/expo-preview/pkg/domain/interfaces"
	"github.com/m-mizutani/expo-preview/pkg/domain/model"
	"github.com/m-mizutani/expo-preview/pkg/domain/types"
)

type nativeDetector struct {
	githubClient  interfaces.GitHubClient
	extraPatterns []string
}

// NativeDetectorOption configures nativeDetector
type NativeDetectorOption func(*nativeDetector)

// WithNativePatterns adds doublestar patterns treated as native files on top of the built-in table
func WithNativePatterns(patterns []string) NativeDetectorOption {
	return func(d *nativeDetector) {
		d.extraPatterns = append(d.extraPatterns, patterns...)
	}
}

// NewNativeDetector creates a new NativeDetectorUseCase instance
func NewNativeDetector(githubClient interfaces.GitHubClient, opts ...NativeDetectorOption) interfaces.NativeDetectorUseCase {
	d := &nativeDetector{
		githubClient: githubClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NeedsNativeBuild reports whether the triggering change touches native files.
// Expo Go projects never need a native build.
func (uc *nativeDetector) NeedsNativeBuild(ctx context.Context, input *model.NativeCheckInput) (*model.NativeBuildResult, error) {
	logger := ctxlog.From(ctx)

	event, err := ResolveTriggerEvent(input.EventName, input.EventPayload)
	if err != nil {
		return nil, err
	}

	result := &model.NativeBuildResult{
		Range:        event.Range(),
		ChangedFiles: []string{},
		NativeFiles:  []string{},
	}

	if input.Flavor == types.FlavorExpoGo {
		logger.Info("Expo Go project does not need a native build", "flavor", input.Flavor)
		return result, nil
	}

	logger.Info("Base commit", "sha", event.Base)
	logger.Info("Head commit", "sha", event.Head)

	changedFiles, err := uc.changedFiles(ctx, input.Repository, event)
	if err != nil {
		return nil, err
	}
	result.ChangedFiles = changedFiles

	result.NativeFiles = FilterNativeFiles(changedFiles, uc.extraPatterns)
	result.Required = len(result.NativeFiles) > 0

	logger.Info("Changed native files",
		"files", result.NativeFiles,
		"count", len(result.NativeFiles),
		"changed_count", len(changedFiles),
	)

	return result, nil
}

// changedFiles fails open: any error from the API call yields no changed files
// so that a flaky API never blocks the pipeline.
func (uc *nativeDetector) changedFiles(ctx context.Context, repo model.Repository, event *model.TriggerEvent) ([]string, error) {
	logger := ctxlog.From(ctx)

	comparison, err := uc.githubClient.CompareCommits(ctx, repo, event.Base, event.Head)
	if err != nil {
		logger.Warn("Failed to compare commits, assuming no changed files",
			"error", err,
			"repository", repo.FullName(),
			"range", event.Range(),
		)
		return []string{}, nil
	}

	if comparison.StatusCode != http.StatusOK {
		return nil, goerr.Wrap(&types.UpstreamStatusError{StatusCode: comparison.StatusCode},
			"GitHub compare API returned unexpected status",
			goerr.V("event_name", event.Name),
			goerr.V("status_code", comparison.StatusCode),
			goerr.V("expected", http.StatusOK),
		)
	}

	if !comparison.IsAhead() {
		logger.Warn("The head commit for this event is not ahead of the base commit",
			"event_name", event.Name,
			"status", comparison.Status,
		)
		logger.Warn("Skipping the changed file check")
		return []string{}, nil
	}

	if comparison.Files == nil {
		return []string{}, nil
	}
	return comparison.Files, nil
}
