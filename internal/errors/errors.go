// Package errors defines the error taxonomy shared by the agents and the
// Notion client: input, auth, upstream and routing errors. Callers branch
// on the kind with the Is* predicates instead of string matching.
package errors

import (
	e "errors"
	"fmt"
)

type kind int

const (
	kindInput kind = iota + 1
	kindAuth
	kindUpstream
	kindRouting
)

// Error carries the taxonomy kind plus, for upstream failures, the HTTP
// status returned by the external service (0 when not applicable).
type Error struct {
	kind   kind
	msg    string
	cause  error
	Status int
}

func (x *Error) Error() string {
	if x.cause != nil {
		if x.msg == "" {
			return x.cause.Error()
		}
		return x.msg + ": " + x.cause.Error()
	}
	return x.msg
}

func (x *Error) Unwrap() error { return x.cause }

func NewInput(format string, args ...interface{}) error {
	return &Error{kind: kindInput, msg: fmt.Sprintf(format, args...)}
}

func NewAuth(format string, args ...interface{}) error {
	return &Error{kind: kindAuth, msg: fmt.Sprintf(format, args...)}
}

func NewRouting(format string, args ...interface{}) error {
	return &Error{kind: kindRouting, msg: fmt.Sprintf(format, args...)}
}

// NewUpstream reports a non-success response from Notion or the LLM,
// keeping the upstream status and message attached.
func NewUpstream(status int, format string, args ...interface{}) error {
	return &Error{kind: kindUpstream, msg: fmt.Sprintf(format, args...), Status: status}
}

// WrapUpstream marks a transport-level failure (timeout, connection
// refused) as upstream without losing the original cause.
func WrapUpstream(err error, msg string) error {
	return &Error{kind: kindUpstream, msg: msg, cause: err}
}

func IsInput(err error) bool    { return is(err, kindInput) }
func IsAuth(err error) bool     { return is(err, kindAuth) }
func IsUpstream(err error) bool { return is(err, kindUpstream) }
func IsRouting(err error) bool  { return is(err, kindRouting) }

// UpstreamStatus returns the HTTP status attached to an upstream error,
// 0 if the error is of another kind or carries none.
func UpstreamStatus(err error) int {
	var x *Error
	if e.As(err, &x) {
		return x.Status
	}
	return 0
}

func is(err error, k kind) bool {
	var x *Error
	if e.As(err, &x) {
		return x.kind == k
	}
	return false
}
