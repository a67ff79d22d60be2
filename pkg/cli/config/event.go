package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Event holds the triggering workflow event
type Event struct {
	Name string
	Path string
}

// Flags returns CLI flags for event configuration
func (c *Event) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "event-name",
			Usage:       "Name of the event that triggered the workflow",
			Required:    true,
			Destination: &c.Name,
			Sources:     cli.EnvVars("EXPO_PREVIEW_EVENT_NAME", "GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "event-path",
			Usage:       "Path of the file with the event payload",
			Required:    true,
			Destination: &c.Path,
			Sources:     cli.EnvVars("EXPO_PREVIEW_EVENT_PATH", "GITHUB_EVENT_PATH"),
		},
	}
}

// Payload reads the event payload file
func (c *Event) Payload() ([]byte, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read event payload", goerr.V("path", c.Path))
	}
	return data, nil
}
