package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ActionStatus is the progress of an action planned for a practice
type ActionStatus string

const (
	ActionStatusPending    ActionStatus = "PENDING"
	ActionStatusInProgress ActionStatus = "IN_PROGRESS"
	ActionStatusCompleted  ActionStatus = "COMPLETED"
)

// AllActionStatuses returns every status in workflow order
func AllActionStatuses() []ActionStatus {
	return []ActionStatus{
		ActionStatusPending,
		ActionStatusInProgress,
		ActionStatusCompleted,
	}
}

func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending, ActionStatusInProgress, ActionStatusCompleted:
		return true
	}
	return false
}

// Done reports whether no further work is planned for the action
func (s ActionStatus) Done() bool {
	return s == ActionStatusCompleted
}

func (s ActionStatus) String() string {
	return string(s)
}

// ParseActionStatus accepts the status constant in any case, with either
// underscores or spaces ("in progress", "IN_PROGRESS").
func ParseActionStatus(s string) (ActionStatus, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
	status := ActionStatus(normalized)
	if !status.IsValid() {
		return "", goerr.New("invalid action status", goerr.V("status", s))
	}
	return status, nil
}
