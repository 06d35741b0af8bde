// Package appstatus defines the status state machine for job applications
// and the policy that decides who may move an application between statuses.
//
// Status graph:
//
//	APPLIED ──► UNDER_REVIEW ──► INTERVIEWED ──► OFFERED ──► ACCEPTED
//	    │             │                │             │
//	    └─────────────┴────────────────┴─────────────┴──► REJECTED
//
// ACCEPTED and REJECTED are terminal states. The graph is advisory:
// which transitions are legal is decided by the authorization policy
// (CanTransition), not by a fixed edge set. The only structural rule the
// machine itself enforces is that terminal states have no outgoing
// transitions.
package appstatus

import "fmt"

// Status values mirror the application_status enum in PostgreSQL.
type Status string

const (
	StatusApplied     Status = "APPLIED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusInterviewed Status = "INTERVIEWED"
	StatusOffered     Status = "OFFERED"
	StatusAccepted    Status = "ACCEPTED"
	StatusRejected    Status = "REJECTED"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusApplied, StatusUnderReview, StatusInterviewed, StatusOffered, StatusAccepted, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTerminal returns true for statuses with no outgoing transitions.
func IsTerminal(s Status) bool {
	return s == StatusAccepted || s == StatusRejected
}
