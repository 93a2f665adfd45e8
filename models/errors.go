package models

import "errors"

// Domain error kinds. Handlers turn any of these into an envelope error;
// everything else is treated as an internal fault.

type ValidationError struct{ Msg string }

type NotFoundError struct{ Msg string }

type DuplicateError struct{ Msg string }

type AuthenticationError struct{ Msg string }

type AuthorizationError struct{ Msg string }

type ConflictError struct{ Msg string }

func (e *ValidationError) Error() string     { return e.Msg }
func (e *NotFoundError) Error() string       { return e.Msg }
func (e *DuplicateError) Error() string      { return e.Msg }
func (e *AuthenticationError) Error() string { return e.Msg }
func (e *AuthorizationError) Error() string  { return e.Msg }
func (e *ConflictError) Error() string       { return e.Msg }

var (
	ErrEmptyPassword   = &ValidationError{Msg: "Password is empty"}
	ErrPasswordTooLong = &ValidationError{Msg: "Password is longer than 72 bytes"}
	ErrInvalidID       = &ValidationError{Msg: "Invalid id"}
	ErrInvalidRole     = &ValidationError{Msg: "Unknown role"}
	ErrEmptyComment    = &ValidationError{Msg: "Comment is empty"}
	ErrInvalidRequest  = &ValidationError{Msg: "Invalid request body"}
	ErrInvalidQuery    = &ValidationError{Msg: "Invalid query parameters"}

	ErrUserNotFound    = &NotFoundError{Msg: "User not found"}
	ErrPostNotFound    = &NotFoundError{Msg: "Post not found"}
	ErrCommentNotFound = &NotFoundError{Msg: "Comment not found"}

	ErrDuplicateLogin = &DuplicateError{Msg: "Login is already taken"}

	ErrInvalidPassword    = &AuthenticationError{Msg: "Invalid password"}
	ErrInvalidCredentials = &AuthenticationError{Msg: "Wrong login or password"}
	ErrTokenInvalid       = &AuthenticationError{Msg: "Invalid token"}
	ErrTokenExpired       = &AuthenticationError{Msg: "Token expired"}
	ErrUnauthenticated    = &AuthenticationError{Msg: "Unauthenticated"}

	ErrForbidden = &AuthorizationError{Msg: "Access denied"}
)

// IsDomainError reports whether err (or anything it wraps) is one of the
// expected domain error kinds.
func IsDomainError(err error) bool {
	var (
		validation *ValidationError
		notFound   *NotFoundError
		duplicate  *DuplicateError
		authn      *AuthenticationError
		authz      *AuthorizationError
		conflict   *ConflictError
	)
	return errors.As(err, &validation) ||
		errors.As(err, &notFound) ||
		errors.As(err, &duplicate) ||
		errors.As(err, &authn) ||
		errors.As(err, &authz) ||
		errors.As(err, &conflict)
}
