package config

import "github.com/urfave/cli/v3"

// Output holds where step outputs are written
type Output struct {
	Path string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-output",
			Usage:       "File receiving step outputs; outputs are only printed if empty",
			Destination: &c.Path,
			Sources:     cli.EnvVars("EXPO_PREVIEW_GITHUB_OUTPUT", "GITHUB_OUTPUT"),
		},
	}
}
