// SPDX-License-Identifier: MIT

package cmd

import "errors"

var (
	errAccuracyRange = errors.New("lvnum: accuracy must be in [0, 15]")
	errArgCount      = errors.New("lvnum: wrong number of arguments")
)
