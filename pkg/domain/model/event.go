package model

// TriggerEventKind represents the GitHub event that started the workflow run
type TriggerEventKind string

const (
	TriggerEventPullRequest TriggerEventKind = "pull_request"
	TriggerEventPush        TriggerEventKind = "push"
	TriggerEventOther       TriggerEventKind = "other"
)

// TriggerEvent holds the commit range of the triggering event
type TriggerEvent struct {
	Kind TriggerEventKind
	Name string // Raw event name as given by GITHUB_EVENT_NAME
	Base string
	Head string
}

// HasCommitRange returns true when both ends of the range are known
func (e *TriggerEvent) HasCommitRange() bool {
	return e.Base != "" && e.Head != ""
}

// Range returns the range in "base...head" form used by the compare API
func (e *TriggerEvent) Range() string {
	return e.Base + "..." + e.Head
}
