package entity

import (
	"strings"

	"mutualaid/internal/errors"
)

// Status tracks how far a help request or offer has progressed through
// the matching lifecycle. Values are stored and transmitted lowercase.
type Status string

const (
	// StatusWaiting means the aggregate is open and collecting candidates.
	StatusWaiting Status = "waiting"
	// StatusOnGoing means a match has been made and help is in progress.
	StatusOnGoing Status = "on_going"
	// StatusHelperFinished means the helper confirmed completion, the owner has not.
	StatusHelperFinished Status = "helper_finished"
	// StatusOwnerFinished means the owner confirmed completion, the helper has not.
	StatusOwnerFinished Status = "owner_finished"
	// StatusFinished means both parties confirmed; terminal.
	StatusFinished Status = "finished"
)

// ErrUnknownStatus is returned when a string does not name a known status.
var ErrUnknownStatus = errors.New("unknown status")

// ParseStatus converts a wire value into a Status, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusWaiting:
		return StatusWaiting, nil
	case StatusOnGoing:
		return StatusOnGoing, nil
	case StatusHelperFinished:
		return StatusHelperFinished, nil
	case StatusOwnerFinished:
		return StatusOwnerFinished, nil
	case StatusFinished:
		return StatusFinished, nil
	default:
		return "", errors.Wrapf(ErrUnknownStatus, "status %q", raw)
	}
}

// ParseStatusList converts a list of wire values, failing on the first unknown one.
func ParseStatusList(raw []string) ([]Status, error) {
	statuses := make([]Status, 0, len(raw))
	for _, item := range raw {
		status, err := ParseStatus(item)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
