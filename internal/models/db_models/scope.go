package db_models

import "github.com/google/uuid"

// Scope discriminates general (trip level) ledger entries from individual
// (per member) ones. The constructors are the only way to build one, so a
// general scope can never carry a user and an individual scope always does.
type Scope struct {
	general bool
	userID  uuid.UUID
}

func GeneralScope() Scope {
	return Scope{general: true}
}

func IndividualScope(userID uuid.UUID) Scope {
	return Scope{userID: userID}
}

func (s Scope) IsGeneral() bool { return s.general }

// UserID returns the owning user for an individual scope. ok is false for
// the general scope.
func (s Scope) UserID() (uuid.UUID, bool) {
	if s.general {
		return uuid.Nil, false
	}
	return s.userID, true
}
