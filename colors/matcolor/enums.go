// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"fmt"
	"strings"
)

// SemanticRole is one of the fixed-meaning color families
// that accompany a scheme, such as links and status colors.
type SemanticRole int32

const (
	// Link is used for hyperlinks.
	Link SemanticRole = iota

	// Visited is used for hyperlinks that have been visited.
	Visited

	// Negative indicates errors and destructive states.
	Negative

	// Neutral indicates warnings and attention states.
	Neutral

	// Positive indicates success states.
	Positive

	SemanticRoleN
)

var _SemanticRoleNames = []string{"link", "visited", "negative", "neutral", "positive"}

var _SemanticRoleDescs = []string{
	"Link is used for hyperlinks.",
	"Visited is used for hyperlinks that have been visited.",
	"Negative indicates errors and destructive states.",
	"Neutral indicates warnings and attention states.",
	"Positive indicates success states.",
}

// String returns the string representation of this SemanticRole value.
func (i SemanticRole) String() string {
	if i < 0 || i >= SemanticRoleN {
		return fmt.Sprintf("SemanticRole(%d)", int32(i))
	}
	return _SemanticRoleNames[i]
}

// SetString sets the SemanticRole value from its string representation,
// and returns an error if the string is invalid.
func (i *SemanticRole) SetString(s string) error {
	for j, n := range _SemanticRoleNames {
		if strings.EqualFold(n, s) {
			*i = SemanticRole(j)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type SemanticRole", s)
}

// Int64 returns the SemanticRole value as an int64.
func (i SemanticRole) Int64() int64 { return int64(i) }

// Desc returns the description of the SemanticRole value.
func (i SemanticRole) Desc() string {
	if i < 0 || i >= SemanticRoleN {
		return i.String()
	}
	return _SemanticRoleDescs[i]
}

// Values returns all possible values for the type SemanticRole.
func (i SemanticRole) Values() []SemanticRole {
	return []SemanticRole{Link, Visited, Negative, Neutral, Positive}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i SemanticRole) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *SemanticRole) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
