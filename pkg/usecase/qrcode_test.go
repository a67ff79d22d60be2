package usecase_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/expo-preview/pkg/domain/types"
	"github.com/m-mizutani/expo-preview/pkg/usecase"
)

func TestBuildQRCodeURL(t *testing.T) {
	t.Run("development client", func(t *testing.T) {
		got, err := usecase.BuildQRCodeURL(types.FlavorDevelopmentClient, "https://u.expo.dev/abc", "myapp")
		gt.NoError(t, err)
		gt.Equal(t, got, "https://chart.googleapis.com/chart?cht=qr&chs=360x360&choe=UTF-8&chld=L|2&chl=myapp://expo-development-client/?url=https://u.expo.dev/abc")
	})

	t.Run("expo go", func(t *testing.T) {
		got, err := usecase.BuildQRCodeURL(types.FlavorExpoGo, "u.expo.dev/abc", "myapp")
		gt.NoError(t, err)
		gt.Equal(t, got, "https://api.qrserver.com/v1/create-qr-code/?size=512x512&data=exp://exp.host/u.expo.dev/abc")
	})

	t.Run("manifest URL is not encoded", func(t *testing.T) {
		got, err := usecase.BuildQRCodeURL(types.FlavorExpoGo, "u.expo.dev/abc?x=1&y=2", "")
		gt.NoError(t, err)
		gt.Equal(t, got, "https://api.qrserver.com/v1/create-qr-code/?size=512x512&data=exp://exp.host/u.expo.dev/abc?x=1&y=2")
	})

	t.Run("unknown flavor", func(t *testing.T) {
		for _, flavor := range []types.ProjectFlavor{types.FlavorBare, "", "managed"} {
			got, err := usecase.BuildQRCodeURL(flavor, "u.expo.dev/abc", "myapp")
			gt.Error(t, err)
			gt.Equal(t, got, "")
			gt.True(t, errors.Is(err, types.ErrUnknownFlavor))
		}
	})
}
