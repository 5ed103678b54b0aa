package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// InvalidInfoMessage is the single message shown for every failed command.
const InvalidInfoMessage = "Invalid info entered."

// AwaitingMessage is the result text shown before any command has run.
const AwaitingMessage = "Awaiting action..."

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidInput    = errors.New("invalid input")
	ErrRemoteRejected  = errors.New("remote rejected")
	ErrSessionNotFound = errors.New("session not found")
)

// FailureKind classifies why a dispatch failed. The zero value means no failure.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureUnauthorized
	FailureInvalidInput
	FailureRemoteRejected
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "success"
	case FailureUnauthorized:
		return "unauthorized"
	case FailureInvalidInput:
		return "invalid_input"
	case FailureRemoteRejected:
		return "remote_rejected"
	default:
		return "unknown"
	}
}

// Err returns the sentinel error for the kind, or nil for FailureNone.
func (k FailureKind) Err() error {
	switch k {
	case FailureUnauthorized:
		return ErrUnauthorized
	case FailureInvalidInput:
		return ErrInvalidInput
	case FailureRemoteRejected:
		return ErrRemoteRejected
	default:
		return nil
	}
}

// Result is the outcome of exactly one dispatch: either a payload passed
// through from the ledger, or a failure of a given kind.
type Result struct {
	Kind    CommandKind
	Payload json.RawMessage
	Failure FailureKind
	// Cause is the underlying error, kept for logs and session expiry handling.
	Cause error
}

// Success wraps a ledger payload.
func Success(kind CommandKind, payload json.RawMessage) Result {
	return Result{Kind: kind, Payload: payload}
}

// Failure builds a failed result.
func Failure(kind CommandKind, fk FailureKind, cause error) Result {
	return Result{Kind: kind, Failure: fk, Cause: cause}
}

// OK reports whether the result is a success.
func (r Result) OK() bool {
	return r.Failure == FailureNone
}

// Err returns nil on success, otherwise an error matching the failure sentinel
// and, when present, the cause.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	if r.Cause == nil {
		return r.Failure.Err()
	}
	return errors.Join(r.Failure.Err(), r.Cause)
}

// Render turns the result into the text block shown to the operator.
// Every failure collapses to InvalidInfoMessage.
func (r Result) Render() string {
	if !r.OK() {
		return InvalidInfoMessage
	}
	if len(r.Payload) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.Payload, "", "  "); err != nil {
		return string(r.Payload)
	}
	return buf.String()
}

// Classify maps an error back to the failure kind whose sentinel it wraps.
// Errors matching no sentinel are treated as remote rejections.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionNotFound):
		return FailureUnauthorized
	case errors.Is(err, ErrInvalidInput):
		return FailureInvalidInput
	default:
		return FailureRemoteRejected
	}
}
