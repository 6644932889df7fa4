/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import (
	"fmt"
)

const (
	MinPackedBitSize = 1
	MaxPackedBitSize = 64
)

// PackedArrayHandler reads and writes fixed-width unsigned integers packed into a byte slice.
//
// Element i occupies bits [i*bitSize, (i+1)*bitSize) of the slice, interpreted as a
// little-endian bit stream. Elements may straddle up to nine bytes.
type PackedArrayHandler interface {
	// Create returns a zeroed slice large enough for length elements.
	Create(length int) []byte

	// Get returns the element at the given index.
	Get(array []byte, index int) uint64

	// Set stores the low bitSize bits of value at the given index.
	Set(array []byte, index int, value uint64)

	// NumBytes returns the size in bytes of an array of length elements.
	NumBytes(length int) int

	// BitSize returns the width of a single element.
	BitSize() int
}

type packedArrayHandler struct {
	bitSize uint64
	mask    uint64
}

var packedArrayHandlers = func() [MaxPackedBitSize + 1]*packedArrayHandler {
	var handlers [MaxPackedBitSize + 1]*packedArrayHandler
	for b := MinPackedBitSize; b <= MaxPackedBitSize; b++ {
		handlers[b] = &packedArrayHandler{
			bitSize: uint64(b),
			mask:    ^uint64(0) >> (MaxPackedBitSize - b),
		}
	}
	return handlers
}()

// GetPackedArrayHandler returns the handler for elements of the given bit size.
func GetPackedArrayHandler(bitSize int) (PackedArrayHandler, error) {
	if !InRange(bitSize, MinPackedBitSize, MaxPackedBitSize) {
		return nil, fmt.Errorf("bit size must be between %d and %d, inclusive: %d",
			MinPackedBitSize, MaxPackedBitSize, bitSize)
	}
	return packedArrayHandlers[bitSize], nil
}

func (h *packedArrayHandler) BitSize() int {
	return int(h.bitSize)
}

func (h *packedArrayHandler) NumBytes(length int) int {
	return int(WholeBytesToHoldBits(uint64(length) * h.bitSize))
}

func (h *packedArrayHandler) Create(length int) []byte {
	return make([]byte, h.NumBytes(length))
}

// locate returns the first byte touched by the element, the bit shift inside that
// byte and the number of bytes touched.
func (h *packedArrayHandler) locate(index int) (int, uint64, int) {
	startBit := uint64(index) * h.bitSize
	shift := startBit & 0x7
	numBytes := int((shift + h.bitSize + 7) >> 3)
	return int(startBit >> 3), shift, numBytes
}

func (h *packedArrayHandler) Get(array []byte, index int) uint64 {
	byteIdx, shift, numBytes := h.locate(index)
	var word uint64
	for i := 0; i < numBytes && i < 8; i++ {
		word |= uint64(array[byteIdx+i]) << (8 * i)
	}
	word >>= shift
	if numBytes == 9 {
		word |= uint64(array[byteIdx+8]) << (64 - shift)
	}
	return word & h.mask
}

func (h *packedArrayHandler) Set(array []byte, index int, value uint64) {
	byteIdx, shift, numBytes := h.locate(index)
	value &= h.mask
	lowBytes := min(numBytes, 8)
	var word uint64
	for i := 0; i < lowBytes; i++ {
		word |= uint64(array[byteIdx+i]) << (8 * i)
	}
	word = (word &^ (h.mask << shift)) | (value << shift)
	for i := 0; i < lowBytes; i++ {
		array[byteIdx+i] = byte(word >> (8 * i))
	}
	if numBytes == 9 {
		hiMask := byte(h.mask >> (64 - shift))
		array[byteIdx+8] = (array[byteIdx+8] &^ hiMask) | byte(value>>(64-shift))
	}
}
