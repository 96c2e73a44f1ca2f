// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

//go:build !roaring_debug

package roaring

// checkInvariants is a no-op in release builds; see invariants_debug.go.
func (c *container) checkInvariants() {}
