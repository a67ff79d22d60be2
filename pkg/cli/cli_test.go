package cli_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/expo-preview/pkg/cli"
	"github.com/m-mizutani/expo-preview/pkg/domain/types"
)

// readOutputs parses name<<delimiter heredoc entries of a GITHUB_OUTPUT file
func readOutputs(t *testing.T, path string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	gt.NoError(t, err)

	outputs := map[string]string{}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i := 0; i < len(lines); i++ {
		name, delimiter, ok := strings.Cut(lines[i], "<<")
		if !ok {
			t.Fatalf("malformed output line: %q", lines[i])
		}
		gt.True(t, strings.HasPrefix(delimiter, "ghadelimiter_"))

		var value []string
		for i++; i < len(lines) && lines[i] != delimiter; i++ {
			value = append(value, lines[i])
		}
		if i == len(lines) {
			t.Fatalf("unterminated output %q", name)
		}
		outputs[name] = strings.Join(value, "\n")
	}
	return outputs
}

func TestQRCode(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "output")

	err := cli.Run(context.Background(), []string{
		"expo-preview",
		"--log-level", "warn",
		"qr-url",
		"--project-flavor", "development-client",
		"--manifest-url", "https://u.expo.dev/abc",
		"--scheme", "myapp",
		"--github-output", outputPath,
	})
	gt.NoError(t, err)

	gt.Equal(t, readOutputs(t, outputPath), map[string]string{
		"qr-code-url": "https://chart.googleapis.com/chart?cht=qr&chs=360x360&choe=UTF-8&chld=L|2&chl=myapp://expo-development-client/?url=https://u.expo.dev/abc",
	})
}

func TestQRCode_UnknownFlavor(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"expo-preview",
		"--log-level", "error",
		"qr-url",
		"--project-flavor", "bare",
		"--manifest-url", "u.expo.dev/abc",
		"--github-output", "",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrUnknownFlavor))
}

func TestInvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"expo-preview",
		"--log-level", "verbose",
		"qr-url",
		"--project-flavor", "expo-go",
		"--manifest-url", "u.expo.dev/abc",
		"--github-output", "",
	})
	gt.Error(t, err)
}

type checkNativeEnv struct {
	server     *httptest.Server
	eventPath  string
	outputPath string
	calls      atomic.Int32
}

func setupCheckNative(t *testing.T, status string, files ...string) *checkNativeEnv {
	t.Helper()
	env := &checkNativeEnv{}

	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.calls.Add(1)
		if r.URL.Path != "/repos/owner/app/compare/A...B" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		type file struct {
			Filename string `json:"filename"`
		}
		resp := struct {
			Status string `json:"status"`
			Files  []file `json:"files"`
		}{Status: status}
		for _, f := range files {
			resp.Files = append(resp.Files, file{Filename: f})
		}

		w.Header().Set("Content-Type", "application/json")
		gt.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(env.server.Close)

	dir := t.TempDir()
	env.eventPath = filepath.Join(dir, "event.json")
	env.outputPath = filepath.Join(dir, "output")
	gt.NoError(t, os.WriteFile(env.eventPath, []byte(`{"before":"A","after":"B"}`), 0o600))

	return env
}

func (e *checkNativeEnv) args(flavor string) []string {
	return []string{
		"expo-preview",
		"--log-level", "warn",
		"check-native",
		"--github-token", "test-token",
		"--github-repository", "owner/app",
		"--github-api-url", e.server.URL,
		"--event-name", "push",
		"--event-path", e.eventPath,
		"--project-flavor", flavor,
		"--github-output", e.outputPath,
	}
}

func TestCheckNative_Required(t *testing.T) {
	env := setupCheckNative(t, "ahead", "src/App.tsx", "ios/Podfile.lock")

	gt.NoError(t, cli.Run(context.Background(), env.args("development-client")))
	gt.Equal(t, env.calls.Load(), int32(1))
	gt.Equal(t, readOutputs(t, env.outputPath), map[string]string{
		"need-native-build": "true",
		"native-files":      `["ios/Podfile.lock"]`,
	})
}

func TestCheckNative_NotRequired(t *testing.T) {
	env := setupCheckNative(t, "ahead", "README.md", "docs/guide.md")

	gt.NoError(t, cli.Run(context.Background(), env.args("bare")))
	gt.Equal(t, readOutputs(t, env.outputPath), map[string]string{
		"need-native-build": "false",
		"native-files":      `[]`,
	})
}

func TestCheckNative_ExtraPattern(t *testing.T) {
	env := setupCheckNative(t, "ahead", "modules/camera/index.ts")

	args := append(env.args("development-client"), "--native-pattern", "modules/**")
	gt.NoError(t, cli.Run(context.Background(), args))
	gt.Equal(t, readOutputs(t, env.outputPath), map[string]string{
		"need-native-build": "true",
		"native-files":      `["modules/camera/index.ts"]`,
	})
}

func TestCheckNative_ExpoGo(t *testing.T) {
	env := setupCheckNative(t, "ahead", "ios/AppDelegate.swift")

	gt.NoError(t, cli.Run(context.Background(), env.args("expo-go")))
	gt.Equal(t, env.calls.Load(), int32(0))
	gt.Equal(t, readOutputs(t, env.outputPath), map[string]string{
		"need-native-build": "false",
		"native-files":      `[]`,
	})
}

func TestCheckNative_UnsupportedEvent(t *testing.T) {
	env := setupCheckNative(t, "ahead", "ios/AppDelegate.swift")

	args := env.args("development-client")
	for i, arg := range args {
		if arg == "push" {
			args[i] = "schedule"
		}
	}

	err := cli.Run(context.Background(), args)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrUnsupportedEventKind))
	gt.Equal(t, env.calls.Load(), int32(0))
}

func TestCheckNative_CommitPagesNotFetched(t *testing.T) {
	var requests atomic.Int32
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Link", `<`+server.URL+r.URL.Path+`?page=2>; rel="next"`)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ahead","files":[{"filename":"ios/Podfile.lock"}]}`))
	}))
	t.Cleanup(server.Close)

	env := setupCheckNative(t, "ahead")
	args := env.args("development-client")
	for i, arg := range args {
		if arg == env.server.URL {
			args[i] = server.URL
		}
	}

	gt.NoError(t, cli.Run(context.Background(), args))
	gt.Equal(t, requests.Load(), int32(1))
	gt.Equal(t, readOutputs(t, env.outputPath), map[string]string{
		"need-native-build": "true",
		"native-files":      `["ios/Podfile.lock"]`,
	})
}
