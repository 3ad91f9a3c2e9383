// SPDX-License-Identifier: MIT
// Package numutil: sentinel error set.

package numutil

import "errors"

// ErrEmptyInput is returned by aggregate helpers given no values.
var ErrEmptyInput = errors.New("numutil: empty input")
