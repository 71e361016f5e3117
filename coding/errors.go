// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

var (
	ErrLevel     = errors.New("qr: invalid level")
	ErrVersion   = errors.New("qr: invalid version")
	ErrMask      = errors.New("qr: invalid mask")
	ErrBitWidth  = errors.New("qr: value too wide")
	ErrFinalized = errors.New("qr: bit stream finalized")
	ErrFraction  = errors.New("qr: fractional byte")
	ErrOverflow  = errors.New("qr: too much data")

	// ErrInternal reports a mismatch between the static tables and
	// the data being laid out.  It never depends on the input.
	ErrInternal = errors.New("qr: internal error")
)

// SegmentError represents a Segment with data not encodable in its
// mode.
type SegmentError Segment

func (e SegmentError) Error() string {
	if e.Mode.IsValid() {
		return fmt.Sprintf("qr: non-%s data %#q", e.Mode, e.Data)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// ModeError represents an invalid Mode number.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %s", Mode(e))
}
