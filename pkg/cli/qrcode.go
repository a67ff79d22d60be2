package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/expo-preview/pkg/cli/config"
	"github.com/m-mizutani/expo-preview/pkg/usecase"
)

func cmdQRCode() *cli.Command {
	var (
		projectCfg config.Project
		previewCfg config.Preview
		outputCfg  config.Output
	)

	var flags []cli.Flag
	flags = append(flags, projectCfg.Flags()...)
	flags = append(flags, previewCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)

	return &cli.Command{
		Name:    "qr-url",
		Aliases: []string{"q"},
		Usage:   "Build the QR code URL of an app preview",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			flavor, err := projectCfg.ProjectFlavor()
			if err != nil {
				return err
			}

			qrURL, err := usecase.BuildQRCodeURL(flavor, previewCfg.ManifestURL, previewCfg.Scheme)
			if err != nil {
				return goerr.Wrap(err, "failed to build QR code URL")
			}

			ctxlog.From(ctx).Info("Built QR code URL", "flavor", flavor, "url", qrURL)
			fmt.Fprintln(commandWriter(c), qrURL)

			return writeOutputs(outputCfg.Path, output{Name: "qr-code-url", Value: qrURL})
		},
	}
}
