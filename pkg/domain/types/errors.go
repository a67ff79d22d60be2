package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedEventKind is returned for triggers other than pull_request and push
	ErrUnsupportedEventKind = errors.New("unsupported event kind")

	// ErrMissingCommitRange is returned when the event payload lacks the base or head commit
	ErrMissingCommitRange = errors.New("missing commit range")

	// ErrUpstreamStatus is matched by UpstreamStatusError
	ErrUpstreamStatus = errors.New("unexpected upstream status")

	// ErrUnknownFlavor is returned for a project flavor the operation does not handle
	ErrUnknownFlavor = errors.New("unknown project flavor")
)

// UpstreamStatusError carries the HTTP status code of an unexpected GitHub API response
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUpstreamStatus.Error(), e.StatusCode)
}

// Is reports ErrUpstreamStatus as the error kind
func (e *UpstreamStatusError) Is(target error) bool {
	return target == ErrUpstreamStatus
}
