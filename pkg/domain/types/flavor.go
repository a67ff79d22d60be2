package types

import "github.com/m-mizutani/goerr/v2"

// ProjectFlavor identifies how the mobile app is built and launched
type ProjectFlavor string

const (
	// FlavorExpoGo runs the JavaScript bundle inside the pre-built Expo Go client
	FlavorExpoGo ProjectFlavor = "expo-go"
	// FlavorDevelopmentClient runs the bundle inside a custom compiled development client
	FlavorDevelopmentClient ProjectFlavor = "development-client"
	// FlavorBare is a bare React Native project
	FlavorBare ProjectFlavor = "bare"
)

// String returns the flavor name
func (f ProjectFlavor) String() string {
	return string(f)
}

// ParseProjectFlavor converts a flavor name into ProjectFlavor
func ParseProjectFlavor(s string) (ProjectFlavor, error) {
	switch f := ProjectFlavor(s); f {
	case FlavorExpoGo, FlavorDevelopmentClient, FlavorBare:
		return f, nil
	default:
		return "", goerr.Wrap(ErrUnknownFlavor, "failed to parse project flavor", goerr.V("flavor", s))
	}
}
