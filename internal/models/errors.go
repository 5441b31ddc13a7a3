package model

import (
	"errors"
)

// Taxonomie d'erreurs du coeur métier. Les handlers les traduisent en
// statuts HTTP via utils.ErrorFrom : validation → 400, not found → 404,
// conflit → 409, état invalide → 400.
var (
	// Validation
	ErrValidation = errors.New("validation failed")

	// Not found
	ErrNotFound          = errors.New("resource not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrChallengeNotFound = errors.New("challenge not found")

	// Conflits
	ErrAlreadyInTeam = errors.New("user already belongs to a team")
	ErrTeamFull      = errors.New("team is already at maximum capacity")
	ErrNotAMember    = errors.New("user is not a member of this team")
	ErrDuplicate     = errors.New("resource already exists")

	// État
	ErrChallengeInactive = errors.New("challenge is not active")
	ErrNoTeam            = errors.New("user must be part of a team")
)

// IsNotFound vrai pour toutes les variantes not found
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTeamNotFound) ||
		errors.Is(err, ErrChallengeNotFound)
}

// IsConflict vrai pour les erreurs de contention/doublon
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyInTeam) ||
		errors.Is(err, ErrTeamFull) ||
		errors.Is(err, ErrNotAMember) ||
		errors.Is(err, ErrDuplicate)
}

// IsState vrai pour les opérations tentées dans un état invalide
func IsState(err error) bool {
	return errors.Is(err, ErrChallengeInactive) || errors.Is(err, ErrNoTeam)
}
