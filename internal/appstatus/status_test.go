package appstatus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	valid := []string{"APPLIED", "UNDER_REVIEW", "INTERVIEWED", "OFFERED", "ACCEPTED", "REJECTED"}
	for _, s := range valid {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		require.Equal(t, s, string(got))
	}

	_, err := ParseStatus("UNKNOWN")
	require.Error(t, err)

	_, err = ParseStatus("")
	require.Error(t, err)
}

func TestIsTerminal(t *testing.T) {
	require.True(t, IsTerminal(StatusAccepted))
	require.True(t, IsTerminal(StatusRejected))

	for _, s := range []Status{StatusApplied, StatusUnderReview, StatusInterviewed, StatusOffered} {
		require.False(t, IsTerminal(s), "IsTerminal(%s) should be false", s)
	}
}

func TestCanTransition(t *testing.T) {
	app := Application{
		CandidateID: 7,
		PosterID:    3,
		Status:      StatusApplied,
	}

	allStatuses := []Status{
		StatusApplied, StatusUnderReview, StatusInterviewed,
		StatusOffered, StatusAccepted, StatusRejected,
	}

	testCases := []struct {
		name      string
		actor     Actor
		newStatus Status
		allowed   bool
	}{
		{
			name:      "AdminMayAccept",
			actor:     Actor{UserID: 99, Role: RoleAdmin},
			newStatus: StatusAccepted,
			allowed:   true,
		},
		{
			name:      "PosterMayOffer",
			actor:     Actor{UserID: 3, Role: RoleEmployer},
			newStatus: StatusOffered,
			allowed:   true,
		},
		{
			name:      "CandidateMayWithdraw",
			actor:     Actor{UserID: 7, Role: RoleCandidate},
			newStatus: StatusRejected,
			allowed:   true,
		},
		{
			name:      "CandidateMayNotAcceptOwnApplication",
			actor:     Actor{UserID: 7, Role: RoleCandidate},
			newStatus: StatusAccepted,
			allowed:   false,
		},
		{
			name:      "CandidateMayNotMoveToUnderReview",
			actor:     Actor{UserID: 7, Role: RoleCandidate},
			newStatus: StatusUnderReview,
			allowed:   false,
		},
		{
			name:      "OtherEmployerDenied",
			actor:     Actor{UserID: 4, Role: RoleEmployer},
			newStatus: StatusUnderReview,
			allowed:   false,
		},
		{
			name:      "OtherCandidateDenied",
			actor:     Actor{UserID: 8, Role: RoleCandidate},
			newStatus: StatusRejected,
			allowed:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.allowed, CanTransition(tc.actor, app, tc.newStatus))
		})
	}

	// admins and posters may request every status
	for _, s := range allStatuses {
		require.True(t, CanTransition(Actor{UserID: 99, Role: RoleAdmin}, app, s))
		require.True(t, CanTransition(Actor{UserID: 3, Role: RoleEmployer}, app, s))
	}

	// a stranger may request none
	for _, s := range allStatuses {
		require.False(t, CanTransition(Actor{UserID: 42, Role: RoleCandidate}, app, s))
	}
}
