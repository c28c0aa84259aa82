package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewJoinCode produces a short code users type to self enroll in a trip.
// Uniqueness is the caller's problem; collide and call again.
func NewJoinCode() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
