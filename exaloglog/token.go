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

package exaloglog

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/distinctcount/exaloglog-go/internal"
)

const (
	minTokenParameter = 1
	maxTokenParameter = tokenParameter

	tokenRelativeErrorLimit = 1e-6
)

// A token packs the lowest v bits of a 64-bit hash together with the number of
// leading zeros of the remaining bits (capped at 64-v) into the low 6+v bits of a
// uint32. Tokens with v = 26 carry all the information any sketch of this package
// needs, so collecting distinct tokens is a lossless sparse representation.

// ComputeToken returns the 32-bit token of the given 64-bit hash.
func ComputeToken(hash uint64) uint32 {
	return computeToken(hash, tokenParameter)
}

// computeToken assumes 1 <= v <= 26.
func computeToken(hash uint64, v int) uint32 {
	mask := ^(^uint64(0) << v)
	nlz := uint64(bits.LeadingZeros64(hash | mask))
	return uint32(((hash & mask) << 6) | nlz)
}

// reconstructHash returns a 64-bit hash that produces the same token and therefore
// also the same update of a sketch as the hash the token was computed from.
//
// The leading zeros are restored, the bits following them are set to one.
func reconstructHash(token uint32, v int) uint64 {
	nlz := uint64(token & 0x3F)
	return ((^uint64(0) >> v >> nlz) << v) | uint64(token>>6)
}

func isValidToken(token uint32, v int) bool {
	nlz := int(token & 0x3F)
	return ((token>>6)>>v) == 0 && nlz <= 64-v
}

// TokenIterator iterates over tokens. Next must be called before the first Token.
type TokenIterator interface {
	Next() bool
	Token() uint32
}

type sliceTokenIterator struct {
	tokens []uint32
	pos    int
}

func (it *sliceTokenIterator) Next() bool {
	if it.pos >= len(it.tokens) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceTokenIterator) Token() uint32 {
	return it.tokens[it.pos-1]
}

// NewSliceTokenIterator returns an iterator over the given tokens.
func NewSliceTokenIterator(tokens []uint32) TokenIterator {
	return &sliceTokenIterator{tokens: tokens}
}

// EstimateDistinctCountFromTokens estimates the number of distinct hashes from
// their tokens computed with parameter v.
//
// Tokens must be ordered such that equal token indices (the bits above the leading
// zero count) are contiguous, for example in ascending order. Duplicates are
// allowed and invalid tokens are ignored.
func EstimateDistinctCountFromTokens(it TokenIterator, v int) (float64, error) {
	if it == nil {
		return 0, fmt.Errorf("%w: token iterator", ErrNilArgument)
	}
	if !internal.InRange(v, minTokenParameter, maxTokenParameter) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTokenParameter, v)
	}
	b := make([]int, 64-v)
	currentIdx := uint32(math.MaxUint32)
	var currentFlags uint64
	for it.Next() {
		token := it.Token()
		if !isValidToken(token, v) {
			continue
		}
		idx := token >> 6
		if idx != currentIdx {
			currentIdx = idx
			currentFlags = 0
		}
		nlz := int(token & 0x3F)
		flag := uint64(1) << nlz
		if currentFlags&flag == 0 {
			currentFlags |= flag
			b[min(nlz, 63-v)]++
		}
	}
	a := internal.Pow2(v + 1)
	maxNonZero := 0
	for i, c := range b {
		if c != 0 {
			a -= float64(c) * internal.Pow2(-i)
			maxNonZero = i
		}
	}
	return internal.Pow2(v+1) * solveMaximumLikelihoodEquation(a, b, maxNonZero, tokenRelativeErrorLimit), nil
}

// EstimateDistinctCountFromSortedTokens estimates the number of distinct hashes
// from their sorted 32-bit tokens as returned by ComputeToken.
func EstimateDistinctCountFromSortedTokens(tokens []uint32) float64 {
	estimate, _ := EstimateDistinctCountFromTokens(NewSliceTokenIterator(tokens), tokenParameter)
	return estimate
}
