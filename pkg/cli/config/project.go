package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/expo-preview/pkg/domain/types"
)

// Project holds the Expo project settings
type Project struct {
	Flavor         string
	NativePatterns []string
}

// Flags returns CLI flags for project configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project-flavor",
			Usage:       "Project flavor (expo-go, development-client, bare)",
			Value:       string(types.FlavorDevelopmentClient),
			Destination: &c.Flavor,
			Sources:     cli.EnvVars("EXPO_PREVIEW_PROJECT_FLAVOR"),
		},
	}
}

// NativeFlags returns flags only used by the native change check
func (c *Project) NativeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "native-pattern",
			Usage:       "Additional glob pattern of native files (repeatable)",
			Destination: &c.NativePatterns,
			Sources:     cli.EnvVars("EXPO_PREVIEW_NATIVE_PATTERNS"),
		},
	}
}

// ProjectFlavor parses the configured flavor
func (c *Project) ProjectFlavor() (types.ProjectFlavor, error) {
	return types.ParseProjectFlavor(c.Flavor)
}

// Preview holds settings of the preview link
type Preview struct {
	ManifestURL string
	Scheme      string
}

// Flags returns CLI flags for preview configuration
func (c *Preview) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "manifest-url",
			Usage:       "Manifest URL of the update, inserted without encoding",
			Required:    true,
			Destination: &c.ManifestURL,
			Sources:     cli.EnvVars("EXPO_PREVIEW_MANIFEST_URL"),
		},
		&cli.StringFlag{
			Name:        "scheme",
			Usage:       "Custom URL scheme of the development client",
			Destination: &c.Scheme,
			Sources:     cli.EnvVars("EXPO_PREVIEW_SCHEME"),
		},
	}
}
