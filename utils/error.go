package utils

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthenticated
	KindForbidden
	KindInvalidInput
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthenticated:
		return "Unauthenticated"
	case KindForbidden:
		return "Forbidden"
	case KindInvalidInput:
		return "InvalidInput"
	case KindNotFound:
		return "NotFound"
	default:
		return "Internal"
	}
}

// AppError carries a client-facing message and the kind used to pick the
// GraphQL error code / HTTP status.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *AppError) Unwrap() error { return e.Err }

var ErrorRecordNotFound = ErrNotFound("record not found")

func ErrUnauthenticated(msg string) error {
	return &AppError{Kind: KindUnauthenticated, Message: msg}
}

func ErrForbidden(msg string) error {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func ErrInvalidInput(msg string) error {
	return &AppError{Kind: KindInvalidInput, Message: msg}
}

func ErrInvalidInputf(format string, args ...any) error {
	return &AppError{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func ErrNotFound(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func ErrInternal(err error) error {
	if err == nil {
		return nil
	}
	return &AppError{Kind: KindInternal, Err: errors.WithStack(err)}
}

// WrapInternal annotates infrastructure failures with where they happened.
// Classified errors pass through untouched so their message reaches the client.
func WrapInternal(err error, format string, args ...any) error {
	if err == nil || KindOf(err) != KindInternal {
		return err
	}
	return errors.Wrapf(err, format, args...)
}

// KindOf classifies any error. Unknown errors are Internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindInternal
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KindNotFound
	}
	if IsDuplicateKey(err) {
		return KindInvalidInput
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// IsDuplicateKey reports a MySQL unique constraint violation (error 1062).
func IsDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// NotFoundOr maps gorm's not-found to a NotFound AppError with msg.
func NotFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound(msg)
	}
	return err
}
