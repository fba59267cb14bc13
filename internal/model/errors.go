package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrorKind classifies every failure the user API can report.
// The set is closed: callers switch on it, never on message text.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindAlreadyExists
	KindInvalidInput
	KindDatabase
	KindConfig
)

// String returns the snake_case label used in logs and metrics
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidInput:
		return "invalid_input"
	case KindDatabase:
		return "database"
	case KindConfig:
		return "config"
	default:
		return "internal"
	}
}

// Error is the tagged error value returned by validation, the repository
// and the service. Only the fields relevant to Kind are populated.
type Error struct {
	Kind   ErrorKind
	ID     uuid.UUID // NotFound
	Email  string    // AlreadyExists
	Reason string    // InvalidInput, Database, Internal, Config
	Err    error
}

// Sentinels for errors.Is. A sentinel matches any *Error of the same kind.
var (
	ErrUserNotFound      = &Error{Kind: KindNotFound}
	ErrUserAlreadyExists = &Error{Kind: KindAlreadyExists}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
	ErrDatabase          = &Error{Kind: KindDatabase}
	ErrInternal          = &Error{Kind: KindInternal}
	ErrConfig            = &Error{Kind: KindConfig}
)

// NotFound reports that no user has the given id.
func NotFound(id uuid.UUID) *Error {
	return &Error{Kind: KindNotFound, ID: id}
}

// AlreadyExists reports that the email is held by another user.
func AlreadyExists(email string) *Error {
	return &Error{Kind: KindAlreadyExists, Email: email}
}

// InvalidInput reports a rejected request payload or query.
func InvalidInput(reason string) *Error {
	return &Error{Kind: KindInvalidInput, Reason: reason}
}

// Database reports a storage failure. Unused by the in-memory store.
func Database(reason string, err error) *Error {
	return &Error{Kind: KindDatabase, Reason: reason, Err: err}
}

// Internal reports an unexpected failure.
func Internal(reason string, err error) *Error {
	return &Error{Kind: KindInternal, Reason: reason, Err: err}
}

// Config reports a configuration failure.
func Config(reason string, err error) *Error {
	return &Error{Kind: KindConfig, Reason: reason, Err: err}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		if e.ID == uuid.Nil {
			return "user not found"
		}
		return fmt.Sprintf("User with id %s not found", e.ID)
	case KindAlreadyExists:
		if e.Email == "" {
			return "user already exists"
		}
		return fmt.Sprintf("User with email %s already exists", e.Email)
	case KindInvalidInput:
		return "Invalid input: " + e.Reason
	case KindDatabase:
		return "Database error: " + e.detail()
	case KindConfig:
		return "Configuration error: " + e.detail()
	default:
		return "Internal server error: " + e.detail()
	}
}

func (e *Error) detail() string {
	switch {
	case e.Reason != "" && e.Err != nil:
		return e.Reason + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Reason
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on kind so that errors.Is(err, ErrUserNotFound) holds for any
// not-found error regardless of the id it carries.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
