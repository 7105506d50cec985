// Package domain defines domain-level errors for the users feature.
package domain

// Kind classifies a business-rule failure so the transport layer can map it
// to a status code explicitly.
type Kind int

const (
	// KindValidation marks a request that failed a field constraint.
	KindValidation Kind = iota

	// KindConflict marks a violated uniqueness rule.
	KindConflict

	// KindNotFound marks a lookup for a record that does not exist.
	KindNotFound
)

// Error is a business-rule failure carrying a kind and the exact message
// returned to the client.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Domain errors for user operations. The message text is observable API
// behavior and must not be reworded.
var (
	// ErrUsernameTaken is returned when creating a user whose username is
	// already in use.
	ErrUsernameTaken = &Error{Kind: KindConflict, Message: "Username existed."}

	// ErrUserNotFound is returned when no user exists for the given ID.
	ErrUserNotFound = &Error{Kind: KindNotFound, Message: "User not found."}
)
