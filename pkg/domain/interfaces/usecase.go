package interfaces

import (
	"context"

	"github.com/m-mizutani/expo-preview/pkg/domain/model"
)

// NativeDetectorUseCase decides whether a change needs a new development client build
type NativeDetectorUseCase interface {
	// NeedsNativeBuild resolves the commit range of the event and classifies the changed files
	NeedsNativeBuild(ctx context.Context, input *model.NativeCheckInput) (*model.NativeBuildResult, error)
}
