package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/expo-preview/pkg/cli/config"
	"github.com/m-mizutani/expo-preview/pkg/domain/model"
	githubinfra "github.com/m-mizutani/expo-preview/pkg/infra/github"
	"github.com/m-mizutani/expo-preview/pkg/usecase"
)

func cmdCheckNative() *cli.Command {
	var (
		githubCfg  config.GitHub
		eventCfg   config.Event
		projectCfg config.Project
		outputCfg  config.Output
	)

	var flags []cli.Flag
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, eventCfg.Flags()...)
	flags = append(flags, projectCfg.Flags()...)
	flags = append(flags, projectCfg.NativeFlags()...)
	flags = append(flags, outputCfg.Flags()...)

	return &cli.Command{
		Name:    "check-native",
		Aliases: []string{"n"},
		Usage:   "Check whether the change needs a new development client build",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Debug("Starting native change check",
				slog.Any("github", githubCfg),
				slog.Any("event", eventCfg),
				slog.Any("project", projectCfg),
			)

			repo, err := githubCfg.Repo()
			if err != nil {
				return err
			}
			flavor, err := projectCfg.ProjectFlavor()
			if err != nil {
				return err
			}
			if pattern, ok := usecase.ValidatePatterns(projectCfg.NativePatterns); !ok {
				return goerr.New("invalid native file pattern", goerr.V("pattern", pattern))
			}

			payload, err := eventCfg.Payload()
			if err != nil {
				return err
			}

			githubClient, err := githubinfra.NewClient(githubCfg.Token, githubCfg.APIURL)
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			detector := usecase.NewNativeDetector(githubClient,
				usecase.WithNativePatterns(projectCfg.NativePatterns),
			)

			result, err := detector.NeedsNativeBuild(ctx, &model.NativeCheckInput{
				EventName:    eventCfg.Name,
				EventPayload: payload,
				Repository:   repo,
				Flavor:       flavor,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to check native changes")
			}

			printNativeResult(commandWriter(c), result)

			nativeFiles, err := json.Marshal(result.NativeFiles)
			if err != nil {
				return goerr.Wrap(err, "failed to marshal native files")
			}

			return writeOutputs(outputCfg.Path,
				output{Name: "need-native-build", Value: strconv.FormatBool(result.Required)},
				output{Name: "native-files", Value: string(nativeFiles)},
			)
		},
	}
}

func printNativeResult(w io.Writer, result *model.NativeBuildResult) {
	if !result.Required {
		color.New(color.FgGreen).Fprintf(w, "No native changes in %s\n", result.Range)
		return
	}

	color.New(color.FgYellow, color.Bold).Fprintf(w, "Native build required, %d native files changed in %s:\n",
		len(result.NativeFiles), result.Range)
	for _, file := range result.NativeFiles {
		fmt.Fprintf(w, " - %s\n", file)
	}
}
