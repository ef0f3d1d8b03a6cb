// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import "fmt"

// ParseError reports an input that could not be decoded into a device-bridge
// address family type. It is the only error kind this package ever returns:
// grammar violations, numeric overflow, missing separators, and hostname
// resolution failures all end up here, with the lower-level reason (if any)
// wrapped as the Cause.
type ParseError struct {
	Value      string // offending input, verbatim.
	SourceType string // name of the input representation, normally "string".
	TargetType string // name of the type that was to be constructed.
	Cause      error  // optional underlying reason.
}

// Error returns the failing input, the attempted source representation, and
// the target type, appended with the underlying cause's message, if any.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("failed when parsing `%s` from `%s` into `%s`",
		e.Value, e.SourceType, e.TargetType)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap makes the cause chain inspectable by [errors.Is] and [errors.As].
func (e *ParseError) Unwrap() error { return e.Cause }

// newParseError returns a ParseError for a string input failing to decode
// into the named target type, optionally wrapping an underlying cause.
func newParseError(value string, target string, cause error) *ParseError {
	return &ParseError{
		Value:      value,
		SourceType: "string",
		TargetType: target,
		Cause:      cause,
	}
}
