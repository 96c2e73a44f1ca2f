// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "sort"

// arrSet sets a value in an array container.
func (c *container) arrSet(value uint16) bool {
	idx, exists := find16(c.Data, value)
	if exists {
		return false // Already exists
	}

	// Move elements to the right using bulk copy
	oldLen := len(c.Data)
	c.Data = append(c.Data, 0)
	if idx < oldLen {
		copy(c.Data[idx+1:], c.Data[idx:])
	}

	c.Data[idx] = value
	c.Size++
	return true
}

// arrDel removes a value from an array container.
func (c *container) arrDel(value uint16) bool {
	idx, exists := find16(c.Data, value)
	if !exists {
		return false
	}

	copy(c.Data[idx:], c.Data[idx+1:])
	c.Data = c.Data[:len(c.Data)-1]
	c.Size--
	return true
}

// arrHas checks if a value exists in an array container.
func (c *container) arrHas(value uint16) bool {
	_, exists := find16(c.Data, value)
	return exists
}

// arrHasRange checks if every value in [lo, hi) is present.
func (c *container) arrHasRange(lo, hi uint32) bool {
	if hi-lo > uint32(len(c.Data)) {
		return false
	}

	idx, exists := find16(c.Data, uint16(lo))
	if !exists {
		return false
	}
	want := hi - lo
	if idx+int(want) > len(c.Data) {
		return false
	}
	for i := uint32(0); i < want; i++ {
		if c.Data[idx+int(i)] != uint16(lo+i) {
			return false
		}
	}
	return true
}

// arrAddRange inserts {lo, ..., hi-1} into the array container.
func (c *container) arrAddRange(lo, hi uint32) {
	for v := lo; v < hi; v++ {
		c.arrSet(uint16(v))
	}
}

// arrRemoveRange removes every value in [lo, hi) from the array container.
func (c *container) arrRemoveRange(lo, hi uint32) {
	start := sort.Search(len(c.Data), func(i int) bool { return uint32(c.Data[i]) >= lo })
	end := sort.Search(len(c.Data), func(i int) bool { return uint32(c.Data[i]) >= hi })
	if start >= end {
		return
	}

	removed := end - start
	copy(c.Data[start:], c.Data[end:])
	c.Data = c.Data[:len(c.Data)-removed]
	c.Size -= uint32(removed)
}

// arrNumRuns counts the maximal contiguous runs in the sorted array; used by
// the canonical-representation rule without converting.
func (c *container) arrNumRuns() int {
	if len(c.Data) == 0 {
		return 0
	}

	runs := 1
	for i := 1; i < len(c.Data); i++ {
		if c.Data[i] != c.Data[i-1]+1 {
			runs++
		}
	}
	return runs
}

// arrToRun converts this container from array to run.
func (c *container) arrToRun() {
	if len(c.Data) == 0 {
		c.Type = typeRun
		return
	}

	runs := make([]uint16, 0, c.arrNumRuns()*2)
	start, end := c.Data[0], c.Data[0]
	for i := 1; i < len(c.Data); i++ {
		if c.Data[i] == end+1 {
			end = c.Data[i]
			continue
		}
		runs = append(runs, start, end)
		start, end = c.Data[i], c.Data[i]
	}
	runs = append(runs, start, end)

	c.Data = runs
	c.Type = typeRun
}

// arrToBmp converts this container from array to bitmap.
func (c *container) arrToBmp() {
	src := c.Data
	dst := borrowBitmap()
	for _, value := range src {
		dst.Set(uint32(value))
	}

	c.Data = asUint16s(dst)
	c.Type = typeBitmap
}

// arrMin returns the smallest value in an array container.
func (c *container) arrMin() (uint16, bool) {
	if len(c.Data) == 0 {
		return 0, false
	}
	return c.Data[0], true
}

// arrMax returns the largest value in an array container.
func (c *container) arrMax() (uint16, bool) {
	if len(c.Data) == 0 {
		return 0, false
	}
	return c.Data[len(c.Data)-1], true
}

// arrRank returns the count of values <= v.
func (c *container) arrRank(v uint16) int {
	idx, exists := find16(c.Data, v)
	if exists {
		return idx + 1
	}
	return idx
}

// arrSelect returns the value at the given 0-based rank.
func (c *container) arrSelect(rank uint32) (uint16, bool) {
	if rank >= uint32(len(c.Data)) {
		return 0, false
	}
	return c.Data[rank], true
}
