// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"github.com/covercash2/fast-qr/gf256"
)

// AddCheckBytes splits the data codewords into error correction blocks
// for version v and level l, computes the check bytes of each block
// and returns all codewords in transmission order.  Blocks one byte
// longer than the rest come last.
func AddCheckBytes(data []byte, v Version, l Level) ([]byte, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	nd := v.DataBytes(l)
	if len(data) != nd {
		return nil, fmt.Errorf("%w: %d data codewords in version %s-%s, want %d",
			ErrInternal, len(data), v, l, nd)
	}
	nblock, check := v.Blocks(l)
	if nblock < 1 || nd < nblock || nd+nblock*check != v.Codewords() {
		return nil, fmt.Errorf("%w: bad block table for version %s-%s",
			ErrInternal, v, l)
	}
	rs := gf256.NewRSEncoder(Field, check)
	if rs == nil {
		return nil, fmt.Errorf("%w: %d check bytes per block",
			ErrInternal, check)
	}

	ecc := make([]byte, nblock*check)
	db := nd / nblock
	normal := nblock - nd%nblock
	for i, src, dst := 0, data, ecc; i < nblock; i++ {
		if i == normal {
			db++
		}
		rs.ECC(src[:db], dst[:check])
		src, dst = src[db:], dst[check:]
	}

	out := make([]byte, v.Codewords())
	interleave(out[:nd], data, nblock)
	interleave(out[nd:], ecc, nblock)
	return out, nil
}

// interleave interleaves nblock blocks from src to dst, which must be
// of equal length.  The last len(src)%nblock blocks are one byte
// longer than the others.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	extra := dst[db*nblock:]
	dst = dst[:db*nblock]
	normal := nblock - len(extra)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= normal {
			extra[i-normal] = src[0]
			src = src[1:]
		}
	}
}
