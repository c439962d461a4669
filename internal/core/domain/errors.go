package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoBillingAnchor is returned when no chosen campaign exists to query
	// the account balance with.
	ErrNoBillingAnchor = errors.New("cannot fetch balance")

	// ErrNotEchoed is returned when the platform accepted a resume/suspend
	// request but did not echo the campaign id back.
	ErrNotEchoed = errors.New("campaign id not echoed by platform")
)

// RemoteError is the single error type produced at the ad-platform
// boundary. It covers both logical failures reported by the platform
// (Payload set) and transport failures (Err set).
type RemoteError struct {
	Method  string
	Payload string
	Err     error
}

func (e *RemoteError) Error() string {
	var b strings.Builder
	b.WriteString("direct api")
	if e.Method != "" {
		b.WriteString(" ")
		b.WriteString(e.Method)
	}
	if e.Payload != "" {
		b.WriteString(": ")
		b.WriteString(e.Payload)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// ToggleError lists the campaigns of a domain that could not be switched.
type ToggleError struct {
	Domain    string
	On        bool
	FailedIDs []int64
}

func (e *ToggleError) Error() string {
	return fmt.Sprintf("domain %q: %d campaign(s) not turned %s: %v",
		e.Domain, len(e.FailedIDs), onOff(e.On), e.FailedIDs)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
