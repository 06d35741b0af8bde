package appstatus

// Role of the actor requesting a status change.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEmployer  Role = "employer"
	RoleCandidate Role = "candidate"
)

// Actor is the authenticated user requesting a transition.
type Actor struct {
	UserID int32
	Role   Role
}

// Application carries the ownership facts the policy needs: who applied
// and who posted the referenced job.
type Application struct {
	CandidateID int32
	PosterID    int32
	Status      Status
}

// CanTransition decides whether the actor may move the application to
// newStatus:
//
//   - platform administrators may set any status
//   - the user who posted the referenced job may set any status
//   - the candidate who owns the application may only withdraw it
//     (set status to REJECTED)
//   - everyone else is denied
//
// Terminal states are checked separately; CanTransition answers only the
// authorization question.
func CanTransition(actor Actor, app Application, newStatus Status) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	if actor.UserID == app.PosterID {
		return true
	}
	if actor.UserID == app.CandidateID {
		return newStatus == StatusRejected
	}
	return false
}
