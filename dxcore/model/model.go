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

// Package model defines the core contracts that dxlint domain model types
// implement to ensure consistency, type safety, and proper behavior across
// the linter.
//
// Domain types representing lint entities (such as Commit, Branch, Issue
// and the Rule and Severity enums) SHOULD implement the Model interface or
// its constituent parts (Validatable, Serializable, Loggable, Identifiable,
// ZeroCheckable). These interfaces establish a common contract for
// validation, serialization, logging, and identity that enables generic
// operations and guarantees safety at compile time.
//
// Unless explicitly documented otherwise, implementations are not
// thread-safe for concurrent mutation. Lint model types are designed as
// immutable value types: the rule engine never mutates a Commit or Branch
// after parsing, making them naturally safe for concurrent read access.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON and
// ToYAML. These helpers rely on the Model contract and will fail at compile
// time if applied to types that do not implement it.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxlint domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and full
// string representations; Identifiable supplies a canonical type name; and
// ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model MUST NOT mutate the receiver unless explicitly documented.
// Concurrent reads are safe; concurrent writes require external
// synchronization.
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure data integrity.
//
// The Validate method MUST check all required fields for non-empty or
// non-zero values, verify cross-field consistency (for example, that a
// Span's start offset lies before its end offset), recursively validate any
// nested objects, and return nil if and only if the instance is fully
// valid. When validation fails, the returned error MUST describe what is
// invalid in a way that helps callers diagnose the problem. Prefer specific
// messages like "Issue.Context must not be empty" over generic ones.
//
// Validate MUST be fast, deterministic and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects such as logging, and MUST NOT
// depend on external mutable state.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML formats. Model types support both formats
// to enable options files (YAML) and structured debugging output (JSON).
//
// Implementations MUST call Validate before marshaling to ensure that only
// valid instances are serialized, and after unmarshaling to ensure that
// deserialized data meets all invariants. A value serialized to either
// format and then deserialized MUST equal the original value.
//
// Implementations SHOULD use the "type alias" pattern to avoid infinite
// recursion: define a local type alias to the model type, cast the receiver
// to the alias, and delegate to the standard marshal or unmarshal function.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// String returns the full representation suitable for direct display.
// Redacted returns a form safe for diagnostics; for lint types, which hold
// no secrets, Redacted typically shortens rather than hides (for example,
// an Issue renders as its rule and position without the full context
// lines).
type Loggable interface {
	// String returns the complete human-readable representation.
	String() string

	// Redacted returns a concise representation suitable for logs.
	Redacted() string
}

// Identifiable supplies a canonical type name for error messages, logs and
// diagnostics. TypeName MUST return a stable, human-readable identifier
// such as "Commit" or "Issue", not a Go import path.
type Identifiable interface {
	// TypeName returns the name of this type for error messages and
	// debugging.
	TypeName() string
}

// ZeroCheckable detects empty or uninitialized instances. IsZero MUST
// report true if and only if the instance equals its type's zero value at
// the domain level (for example, a Commit with no subject, message or SHA).
type ZeroCheckable interface {
	// IsZero reports whether this instance is the zero value.
	IsZero() bool
}
