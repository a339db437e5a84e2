// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus

import "github.com/pkg/errors"

// Configuration errors. Errors returned by this package wrap one of these
// with additional context; use errors.Cause to get to the sentinel value.
//
var (
	ErrOverflow      = errors.New("invalid value -- overflow")
	ErrUnderflow     = errors.New("invalid value -- underflow")
	ErrWidthMismatch = errors.New("mismatched signal widths")
	ErrPinInNet      = errors.New("pin already in net")
	ErrUnknownSignal = errors.New("unknown signal")
	ErrDuplicate     = errors.New("component already added")
	ErrSyntax        = errors.New("syntax error")
)
