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

package git

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/dxlint/dxcore/errors"
	"dirpx.dev/dxlint/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Branch is the currently checked-out branch. When HEAD points at no
// branch, Detached is true and every branch rule is skipped.
//
// This type implements the model.Model interface.
type Branch struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Detached bool   `json:"detached,omitempty" yaml:"detached,omitempty"`
}

// NewBranch builds a Branch for a checked-out branch name.
func NewBranch(name string) Branch {
	return Branch{Name: name}
}

// DetachedHead builds the Branch value for a detached HEAD.
func DetachedHead() Branch {
	return Branch{Detached: true}
}

// Compile-time assertion that Branch implements model.Model.
var _ model.Model = (*Branch)(nil)

// String returns the branch name, or "(detached HEAD)".
func (b Branch) String() string {
	if b.Detached {
		return "(detached HEAD)"
	}
	return b.Name
}

// Redacted returns a form of the Branch suitable for logging; identical to
// String, branch names are not sensitive.
func (b Branch) Redacted() string {
	return b.String()
}

// TypeName returns the name of this type for error messages and debugging.
func (b Branch) TypeName() string {
	return "Branch"
}

// IsZero reports whether this Branch is the zero value.
func (b Branch) IsZero() bool {
	return b.Name == "" && !b.Detached
}

// Validate checks that a detached Branch carries no name and an attached
// one carries a non-empty name.
func (b Branch) Validate() error {
	if b.Detached && b.Name != "" {
		return &errors.ValidationError{Type: "Branch", Field: "Name", Reason: "must be empty for a detached HEAD", Value: b.Name}
	}
	if !b.Detached && b.Name == "" {
		return &errors.ValidationError{Type: "Branch", Field: "Name", Reason: "must not be empty"}
	}
	return nil
}

// MarshalJSON serializes this Branch to JSON.
func (b Branch) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", b.TypeName(), err)
	}
	type alias Branch
	return json.Marshal(alias(b))
}

// UnmarshalJSON deserializes a Branch from JSON.
func (b *Branch) UnmarshalJSON(data []byte) error {
	type alias Branch
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &errors.UnmarshalError{Type: "Branch", Data: data, Reason: err.Error()}
	}
	*b = Branch(tmp)
	return b.Validate()
}

// MarshalYAML serializes this Branch to YAML.
func (b Branch) MarshalYAML() (interface{}, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", b.TypeName(), err)
	}
	type alias Branch
	return alias(b), nil
}

// UnmarshalYAML deserializes a Branch from YAML.
func (b *Branch) UnmarshalYAML(node *yaml.Node) error {
	type alias Branch
	var tmp alias
	if err := node.Decode(&tmp); err != nil {
		return &errors.UnmarshalError{Type: "Branch", Reason: err.Error()}
	}
	*b = Branch(tmp)
	return b.Validate()
}
