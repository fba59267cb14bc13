// Package model defines the user entity, request and response types, and the
// error taxonomy shared by every layer of the users API.
//
// # Domain Entity
//
//   - User: identity (UUID, assigned once), name, email (lowercase, unique), age
//
// Derived values such as IsAdult and the profile URL are computed when
// mapping to response types and are never stored.
//
// # Validation
//
// Request types validate themselves and fail fast: the first rule that does
// not hold is reported as an InvalidInput error.
//
//	if err := req.Validate(); err != nil {
//	    return model.UserResponse{}, err
//	}
//
// # Errors
//
// Error is a closed tagged variant. Use errors.Is with the sentinels
// (ErrUserNotFound, ErrUserAlreadyExists, ErrInvalidInput, ...) or KindOf to
// branch on the kind. HTTP status mapping lives in the handler package.
package model
