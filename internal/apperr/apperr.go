// Package apperr defines the error taxonomy shared by the repository,
// service, and handler layers, and the classification of raw postgres
// errors into it.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	Unknown Kind = iota
	Unauthenticated
	DuplicateName
	ValidationFailed
	ReferentialIntegrityViolation
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case DuplicateName:
		return "duplicate_name"
	case ValidationFailed:
		return "validation_failed"
	case ReferentialIntegrityViolation:
		return "referential_integrity_violation"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error carries a taxonomy kind plus the original message for display.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a taxonomy error with a fixed message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a taxonomy kind to an underlying error.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: err.Error(), cause: err}
}

// KindOf extracts the taxonomy kind from err, or Unknown.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Unknown
}

// Is lets errors.Is match against kind sentinels created with New.
func (e *Error) Is(target error) bool {
	var ae *Error
	if errors.As(target, &ae) {
		return e.Kind == ae.Kind
	}
	return false
}

// Postgres error codes the store can return for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// Classify maps a raw store error to the taxonomy. Unique-constraint hits
// become DuplicateName, foreign-key violations (a stale owner reference)
// become ReferentialIntegrityViolation, check/not-null and malformed-input
// codes become ValidationFailed. Anything unrecognized stays Unknown with
// its original message. Pure function of the error payload.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return Wrap(NotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return Wrap(DuplicateName, err)
		case pgErr.Code == pgForeignKeyViolation:
			return Wrap(ReferentialIntegrityViolation, err)
		case pgErr.Code == pgCheckViolation, pgErr.Code == pgNotNullViolation:
			return Wrap(ValidationFailed, err)
		case strings.HasPrefix(pgErr.Code, "22"): // data exception class
			return Wrap(ValidationFailed, err)
		}
	}

	msg := strings.ToLower(err.Error())
	for _, hint := range []string{"duplicate", "unique", "conflict", "already exists"} {
		if strings.Contains(msg, hint) {
			return Wrap(DuplicateName, err)
		}
	}
	if strings.Contains(msg, "foreign key") {
		return Wrap(ReferentialIntegrityViolation, err)
	}

	return Wrap(Unknown, err)
}

// FieldError reports a single invalid field for ValidationFailed responses.
func FieldError(field, reason string) *Error {
	return New(ValidationFailed, fmt.Sprintf("%s: %s", field, reason))
}
