// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Stats summarizes the internal representation of a bitmap: how many
// containers use each representation, and the estimated serialized size.
type Stats struct {
	Containers     int
	ArrayCount     int
	BitmapCount    int
	RunCount       int
	Cardinality    uint64
	SerializedSize uint64
}

// Stats computes a snapshot of the bitmap's current container mix.
func (rb *Bitmap) Stats() Stats {
	var s Stats
	s.Containers = len(rb.containers)

	for i := range rb.containers {
		c := &rb.containers[i]
		s.Cardinality += uint64(c.Size)
		s.SerializedSize += uint64(c.serializedBytes())

		switch c.Type {
		case typeArray:
			s.ArrayCount++
		case typeBitmap:
			s.BitmapCount++
		case typeRun:
			s.RunCount++
		}
	}
	return s
}
