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

package model

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered during the batch validation process.
//
// The function iterates through each model in the provided slice and
// invokes its Validate method. When a model fails validation, the error is
// wrapped with contextual information including the model's position in the
// slice (zero-indexed) and its type name obtained from TypeName. If one or
// more models fail validation, ValidateAll returns a single combined error
// aggregating all individual failures via multierr. If all models pass, the
// function returns nil.
//
// The function never panics and always processes the entire slice even when
// early elements fail validation, ensuring complete error reporting. Empty
// slices are considered valid and return nil.
func ValidateAll[T Model](models []T) error {
	var combined error
	for i, m := range models {
		if err := m.Validate(); err != nil {
			combined = multierr.Append(combined,
				fmt.Errorf("model %d (%s) is invalid: %w", i, m.TypeName(), err))
		}
	}
	return combined
}

// FilterZero returns a new slice containing only the non-zero models from
// the input slice, preserving their relative order. The input slice is not
// modified. An empty or all-zero input yields an empty, non-nil slice.
func FilterZero[T Model](models []T) []T {
	filtered := make([]T, 0, len(models))
	for _, m := range models {
		if !m.IsZero() {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// ToJSON serializes a model to JSON after validating it. It returns an
// error if the model is invalid or if marshaling fails. The output is
// compact (no indentation); callers that want pretty output can re-indent.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot serialize invalid %s: %w", m.TypeName(), err)
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize %s to JSON: %w", m.TypeName(), err)
	}
	return data, nil
}

// ToYAML serializes a model to YAML after validating it. It returns an
// error if the model is invalid or if marshaling fails.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot serialize invalid %s: %w", m.TypeName(), err)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize %s to YAML: %w", m.TypeName(), err)
	}
	return data, nil
}

// SafeString returns the string representation of a model appropriate for
// the given verbosity. When verbose is true the full String form is
// returned; otherwise the Redacted form is used. Use this in logging paths
// where the `--debug` flag decides how much detail to emit.
func SafeString[T Model](m T, verbose bool) string {
	if verbose {
		return m.String()
	}
	return m.Redacted()
}
