package usecase

import (
	"encoding/json"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/expo-preview/pkg/domain/model"
	"github.com/m-mizutani/expo-preview/pkg/domain/types"
)

// ResolveTriggerEvent extracts the commit range from a GitHub Actions event payload.
// pull_request uses base.sha...head.sha of the pull request. push uses
// base_ref (or before when base_ref is empty) as base and after as head.
func ResolveTriggerEvent(eventName string, payload []byte) (*model.TriggerEvent, error) {
	event := &model.TriggerEvent{Name: eventName}

	switch model.TriggerEventKind(eventName) {
	case model.TriggerEventPullRequest:
		var prEvent github.PullRequestEvent
		if err := json.Unmarshal(payload, &prEvent); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal pull_request event", goerr.V("event_name", eventName))
		}
		event.Kind = model.TriggerEventPullRequest
		event.Base = prEvent.GetPullRequest().GetBase().GetSHA()
		event.Head = prEvent.GetPullRequest().GetHead().GetSHA()

	case model.TriggerEventPush:
		var pushEvent github.PushEvent
		if err := json.Unmarshal(payload, &pushEvent); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal push event", goerr.V("event_name", eventName))
		}
		event.Kind = model.TriggerEventPush
		event.Base = pushEvent.GetBaseRef()
		if event.Base == "" {
			event.Base = pushEvent.GetBefore()
		}
		event.Head = pushEvent.GetAfter()

	default:
		return nil, goerr.Wrap(types.ErrUnsupportedEventKind,
			"only pull_request and push events are supported",
			goerr.V("event_name", eventName),
		)
	}

	if !event.HasCommitRange() {
		return nil, goerr.Wrap(types.ErrMissingCommitRange,
			"base and head commits are missing from the event payload",
			goerr.V("event_name", eventName),
			goerr.V("base", event.Base),
			goerr.V("head", event.Head),
		)
	}

	return event, nil
}
