package models

import (
	"errors"
	"fmt"
)

// ErrorKind tags every failure the API can report
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindAlreadyVoted ErrorKind = "already_voted"
	KindValidation   ErrorKind = "validation_error"
	KindDuplicateKey ErrorKind = "duplicate_key"
	KindUnknown      ErrorKind = "unknown"
)

// Error is a tagged error carrying a human-readable detail.
// Two errors match under errors.Is when the target has no detail
// and the kinds are equal, so the sentinels below match any detail.
type Error struct {
	Kind   ErrorKind
	Detail string
}

var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrAlreadyVoted = &Error{Kind: KindAlreadyVoted}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrDuplicateKey = &Error{Kind: KindDuplicateKey}
	ErrUnknown      = &Error{Kind: KindUnknown}
)

func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return e.Detail
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Detail == "" && t.Kind == e.Kind
}

// KindOf returns the tag of err, or KindUnknown for untagged errors
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ParseKind maps a wire value back to a known kind
func ParseKind(s string) (ErrorKind, bool) {
	switch k := ErrorKind(s); k {
	case KindNotFound, KindAlreadyVoted, KindValidation, KindDuplicateKey, KindUnknown:
		return k, true
	}
	return KindUnknown, false
}
