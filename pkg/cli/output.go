package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type output struct {
	Name  string
	Value string
}

// newDelimiter returns a heredoc delimiter that a value cannot predict
var newDelimiter = func() string {
	return "ghadelimiter_" + uuid.NewString()
}

// writeOutputs appends step outputs to the GITHUB_OUTPUT file. Nothing is
// written when path is empty, e.g. outside of GitHub Actions.
func writeOutputs(path string, outputs ...output) error {
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o666)
	if err != nil {
		return goerr.Wrap(err, "failed to open output file", goerr.V("path", path))
	}
	defer f.Close()

	for _, o := range outputs {
		delimiter := newDelimiter()
		if strings.Contains(o.Value, delimiter) || strings.Contains(o.Name, delimiter) {
			return goerr.New("output collides with delimiter", goerr.V("name", o.Name))
		}
		if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", o.Name, delimiter, o.Value, delimiter); err != nil {
			return goerr.Wrap(err, "failed to write output", goerr.V("name", o.Name))
		}
	}
	return nil
}

func commandWriter(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
