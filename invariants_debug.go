// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

//go:build roaring_debug

package roaring

import (
	"fmt"
	"math/bits"
)

// checkInvariants walks the active representation and panics on the first
// violation. Only compiled under -tags roaring_debug.
func (c *container) checkInvariants() {
	switch c.Type {
	case typeArray:
		for i := 1; i < len(c.Data); i++ {
			if c.Data[i-1] >= c.Data[i] {
				panic(fmt.Sprintf("roaring: array container not strictly increasing at %d: %d >= %d", i, c.Data[i-1], c.Data[i]))
			}
		}
		if uint32(len(c.Data)) != c.Size {
			panic(fmt.Sprintf("roaring: array container size mismatch: len=%d Size=%d", len(c.Data), c.Size))
		}

	case typeBitmap:
		words := c.bmp()
		count := uint32(0)
		for _, w := range words {
			count += uint32(bits.OnesCount64(w))
		}
		if count != c.Size {
			panic(fmt.Sprintf("roaring: bitmap container cardinality mismatch: popcount=%d Size=%d", count, c.Size))
		}

	case typeRun:
		n := len(c.Data) / 2
		total := uint32(0)
		for i := 0; i < n; i++ {
			start, end := c.Data[i*2], c.Data[i*2+1]
			if start > end {
				panic(fmt.Sprintf("roaring: run container has start > end at run %d: %d > %d", i, start, end))
			}
			if i+1 < n && uint32(end)+1 >= uint32(c.Data[(i+1)*2]) {
				panic(fmt.Sprintf("roaring: run container has adjacent or overlapping runs at %d and %d", i, i+1))
			}
			total += uint32(end) - uint32(start) + 1
		}
		if total != c.Size {
			panic(fmt.Sprintf("roaring: run container cardinality mismatch: sum=%d Size=%d", total, c.Size))
		}
	}
}
