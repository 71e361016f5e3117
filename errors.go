// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"fmt"

	"github.com/covercash2/fast-qr/coding"
)

var (
	// ErrCapacity is matched by every CapacityError.
	ErrCapacity = errors.New("qr: data too long")

	// ErrVersionHint is matched by a CapacityError for a version
	// given by the caller.
	ErrVersionHint = errors.New("qr: data too long for version")

	ErrLevel    = coding.ErrLevel
	ErrVersion  = coding.ErrVersion
	ErrInternal = coding.ErrInternal
)

// SegmentError reports data not encodable in a forced mode.
type SegmentError = coding.SegmentError

// ModeError reports an invalid mode.
type ModeError = coding.ModeError

// CapacityError reports data longer than the capacity of a version.
type CapacityError struct {
	Mode    Mode    // encoding mode
	Level   Level   // error correction level
	Version Version // largest version tried
	Len     int     // data length in characters
	Max     int     // capacity of Version
	Hint    bool    // Version was given by the caller
}

func (e *CapacityError) Error() string {
	if e.Hint {
		return fmt.Sprintf("qr: %d %s characters do not fit in version %s-%s (max %d)",
			e.Len, e.Mode, e.Version, e.Level, e.Max)
	}
	return fmt.Sprintf("qr: %d %s characters too long to encode at level %s (max %d)",
		e.Len, e.Mode, e.Level, e.Max)
}

// Is reports whether target is ErrCapacity, or ErrVersionHint for an
// error caused by a caller's version.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity || e.Hint && target == ErrVersionHint
}
