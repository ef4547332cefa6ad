/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errors provides reusable error types for dxlint enum-like types.
//
// This package defines common error types used across the dxlint packages
// (such as issue.Rule, issue.Severity and git.CleanupMode) when parsing,
// marshaling and unmarshaling strongly typed enum-like values. By
// centralizing these types, the package eliminates code duplication and
// provides a consistent error handling story across the whole module.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / unmarshaling code,
//   - easy to recognize via type assertions,
//   - and easy for users to understand when surfaced in diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails.
//     Use this when implementing ParseXxx helpers that accept textual input
//     (for example, rule names from `lintje:disable` directives or cleanup
//     mode names from Git configuration).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//     Use this in MarshalJSON / MarshalYAML implementations to reject
//     values that do not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into an enum-like type fails due to
//     invalid input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a model type fails.
//     Use this in Validate() methods to report constraint violations,
//     missing required fields, or invalid field values.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed
// enum-like value fails.
//
// Type identifies the logical type being parsed (for example, "Rule",
// "CleanupMode"), and Value contains the exact string that could not be
// interpreted. Callers MAY pattern-match on Type to provide type-specific
// guidance to users or to translate errors into friendlier messages.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Rule").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxlint: invalid {Type} value: {Value}"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "dxlint: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example,
// "Severity"), and Value contains the underlying numeric value that was
// deemed invalid. In most cases a MarshalError indicates a programming error
// (for example, a zero value that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxlint: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxlint: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload (typically a JSON fragment), and Reason provides a
// human-readable description of what went wrong. Callers MAY wrap
// UnmarshalError with additional context when propagating it further up the
// stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on size
	// considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "unknown value 'foo'") rather than repeating the type name; the type
	// name is already available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxlint: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose logs; callers can log it separately when
// appropriate.
func (e *UnmarshalError) Error() string {
	return "dxlint: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for
// example, "Issue", "Commit"), Field optionally identifies which field
// failed validation, Reason provides a human-readable explanation of the
// failure, and Value optionally contains the problematic value.
//
// This error is used by Validate() methods in model types to report
// constraint violations, missing required fields, or invalid field values.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxlint: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxlint: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxlint: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxlint: invalid " + e.Type + ": " + e.Reason
}
