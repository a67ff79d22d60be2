package model

import "github.com/m-mizutani/expo-preview/pkg/domain/types"

// NativeCheckInput is the invocation context of a native build check
type NativeCheckInput struct {
	EventName    string
	EventPayload []byte
	Repository   Repository
	Flavor       types.ProjectFlavor
}

// NativeBuildResult reports whether a new development client build is required
type NativeBuildResult struct {
	Required     bool
	Range        string
	ChangedFiles []string
	NativeFiles  []string
}
