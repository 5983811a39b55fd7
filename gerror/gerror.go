// Package gerror defines the shared outcome taxonomy for the libgenerics
// containers and the mapping from each kind to a display string.
//
// Containers declare their sentinel errors with New so that callers can
// match them two ways: by identity with errors.Is, or by kind with CodeOf.
package gerror

import (
	"errors"
	"fmt"
)

// Code classifies the outcome of a container operation.
type Code uint8

const (
	// OK is the success outcome. No error carries it; it is the code
	// reported by CodeOf for a nil error.
	OK Code = iota

	// NullStructure means the container handle itself was absent or
	// uninitialized.
	NullStructure

	// NullHead is reserved for a walk that detects a missing root in an
	// otherwise live structure. No operation produces it yet.
	NullHead

	// NullNode means a walk encountered a structurally invalid node
	// reference.
	NullNode

	// TryRemoveEmpty means a removal was attempted on a container known
	// to be empty.
	TryRemoveEmpty

	// TryAddEdgeNoVertex means node creation failed, e.g. an allocation
	// budget was exhausted.
	TryAddEdgeNoVertex

	// AccessOutOfBound means the requested key or index has no mapped
	// value.
	AccessOutOfBound

	numCodes
)

var codeText = [numCodes]string{
	OK:                 "no error",
	NullStructure:      "null structure",
	NullHead:           "null head",
	NullNode:           "null node",
	TryRemoveEmpty:     "try to remove from an empty structure",
	TryAddEdgeNoVertex: "try to add an edge with no vertex",
	AccessOutOfBound:   "access out of bound",
}

// String returns the display text for c, suitable for user-facing messages.
func (c Code) String() string {
	if c >= numCodes {
		return fmt.Sprintf("unknown error code %d", uint8(c))
	}
	return codeText[c]
}

// Error is an error carrying a Code. Values created by New are intended to
// be package-level sentinels matched with errors.Is.
type Error struct {
	code Code
	text string
}

// New returns an Error with the given code and message text.
func New(code Code, text string) *Error {
	return &Error{code: code, text: text}
}

func (e *Error) Error() string { return e.text }

// Code returns the taxonomy kind of e.
func (e *Error) Code() Code { return e.code }

// CodeOf reports the taxonomy code carried by err. A nil err reports
// (OK, true). Errors that do not carry a Code anywhere in their chain
// report ok=false.
func CodeOf(err error) (Code, bool) {
	if err == nil {
		return OK, true
	}
	var ge *Error
	if errors.As(err, &ge) {
		return ge.code, true
	}
	return 0, false
}
