// SPDX-License-Identifier: MIT

package kind

import "errors"

var (
	// ErrUnsupportedKindCombination is returned by Join when the two kinds have
	// no defined join (string against numeric, or an undefined kind).
	// Promote panics with it: reaching Promote with such a pair is a bug.
	ErrUnsupportedKindCombination = errors.New("kind: unsupported kind combination")

	// ErrUnknownKind signals a name or code outside the registry.
	ErrUnknownKind = errors.New("kind: unknown kind")
)
