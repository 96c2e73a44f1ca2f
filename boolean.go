// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// IsSubsetOf returns true if every value in rb is also present in other.
func (rb *Bitmap) IsSubsetOf(other *Bitmap) bool {
	if other == nil {
		return len(rb.containers) == 0
	}

	for i := range rb.containers {
		idx, exists := find16(other.index, rb.index[i])
		if !exists {
			if rb.containers[i].isEmpty() {
				continue
			}
			return false
		}
		if !ctrIsSubset(&rb.containers[i], &other.containers[idx]) {
			return false
		}
	}
	return true
}

// Equals returns true if rb and other contain exactly the same values.
func (rb *Bitmap) Equals(other *Bitmap) bool {
	if other == nil {
		return len(rb.containers) == 0
	}
	if rb.Count() != other.Count() {
		return false
	}
	return rb.IsSubsetOf(other)
}

// ctrIsSubset checks if every value held by c1 is also held by c2. Same-type
// pairs take a merge-style walk; mixed-type pairs enumerate the smaller
// container's values against the larger's membership test.
func ctrIsSubset(c1, c2 *container) bool {
	if c1.Size > c2.Size {
		return false
	}

	switch {
	case c1.Type == typeArray && c2.Type == typeArray:
		return subsetSortedArr(c1.Data, c2.Data)
	case c1.Type == typeRun && c2.Type == typeRun:
		return subsetSortedRun(c1.Data, c2.Data)
	case c1.Type == typeBitmap && c2.Type == typeBitmap:
		return subsetBmpBmp(c1, c2)
	default:
		return subsetGeneric(c1, c2)
	}
}

// subsetSortedArr checks a ⊆ b for two sorted arrays via a merge walk.
func subsetSortedArr(a, b []uint16) bool {
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j >= len(b) || b[j] != v {
			return false
		}
	}
	return true
}

// subsetSortedRun checks a ⊆ b for two run-encoded containers.
func subsetSortedRun(a, b []uint16) bool {
	na, nb := len(a)/2, len(b)/2
	j := 0
	for i := 0; i < na; i++ {
		s1, e1 := a[i*2], a[i*2+1]
		for j < nb && b[j*2+1] < s1 {
			j++
		}
		if j >= nb || b[j*2] > s1 || b[j*2+1] < e1 {
			return false
		}
	}
	return true
}

// subsetBmpBmp checks a ⊆ b for two bitmap containers, word by word.
func subsetBmpBmp(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.bmp()
	for i := range a {
		if a[i]&^b[i] != 0 {
			return false
		}
	}
	return true
}

// subsetGeneric checks c1 ⊆ c2 for any mixed representation pair.
func subsetGeneric(c1, c2 *container) bool {
	ok := true
	walkContainer(c1, func(v uint16) bool {
		if !c2.contains(v) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// walkContainer calls fn for each value held by c, in increasing order,
// stopping early if fn returns false.
func walkContainer(c *container, fn func(v uint16) bool) {
	switch c.Type {
	case typeArray:
		for _, v := range c.Data {
			if !fn(v) {
				return
			}
		}
	case typeBitmap:
		c.bmpRange(func(v uint32) bool {
			return fn(uint16(v))
		})
	case typeRun:
		n := len(c.Data) / 2
		for i := 0; i < n; i++ {
			start, end := c.Data[i*2], c.Data[i*2+1]
			for v := start; ; v++ {
				if !fn(v) {
					return
				}
				if v == end {
					break
				}
			}
		}
	}
}
