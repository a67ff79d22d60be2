package usecase

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/expo-preview/pkg/domain/types"
)

const (
	qrCodeBaseURLForExpoGo            = "https://api.qrserver.com/v1/create-qr-code/?size=512x512&data=exp://exp.host"
	qrCodeBaseURLForDevelopmentClient = "https://chart.googleapis.com/chart?cht=qr&chs=360x360&choe=UTF-8&chld=L|2"
)

// BuildQRCodeURL returns the URL of a QR code image that opens manifestURL in the app.
// manifestURL is inserted as is; callers must encode reserved characters themselves.
func BuildQRCodeURL(flavor types.ProjectFlavor, manifestURL, scheme string) (string, error) {
	switch flavor {
	case types.FlavorDevelopmentClient:
		return qrCodeBaseURLForDevelopmentClient + "&chl=" + scheme + "://expo-development-client/?url=" + manifestURL, nil
	case types.FlavorExpoGo:
		return qrCodeBaseURLForExpoGo + "/" + manifestURL, nil
	default:
		return "", goerr.Wrap(types.ErrUnknownFlavor, "no QR code URL for project flavor", goerr.V("flavor", flavor))
	}
}
