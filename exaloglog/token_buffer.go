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
	"slices"

	"github.com/kamstrup/intmap"
)

const defaultTokenBufferCapacity = 64

// TokenBuffer is a sparse alternative to a sketch for small distinct counts. It
// keeps the distinct 32-bit tokens of all added hashes, 4 bytes each, and can be
// turned into a sketch of any configuration at any time without loss.
type TokenBuffer struct {
	set    *intmap.Map[uint32, struct{}]
	tokens []uint32
	sorted bool
}

// NewTokenBuffer creates an empty buffer with room for capacity tokens before it
// needs to grow.
func NewTokenBuffer(capacity int) *TokenBuffer {
	capacity = max(capacity, 0)
	return &TokenBuffer{
		set:    intmap.New[uint32, struct{}](capacity),
		tokens: make([]uint32, 0, capacity),
		sorted: true,
	}
}

// NewTokenBufferWithDefault creates an empty buffer with a small default capacity.
func NewTokenBufferWithDefault() *TokenBuffer {
	return NewTokenBuffer(defaultTokenBufferCapacity)
}

// Add inserts the token of the given hash and returns true if it was not present.
func (tb *TokenBuffer) Add(hash uint64) bool {
	return tb.AddToken(ComputeToken(hash))
}

// AddToken inserts the given token and returns true if it was not present. Invalid
// tokens are ignored.
func (tb *TokenBuffer) AddToken(token uint32) bool {
	if !isValidToken(token, tokenParameter) || tb.set.Has(token) {
		return false
	}
	tb.set.Put(token, struct{}{})
	if n := len(tb.tokens); n > 0 && tb.tokens[n-1] > token {
		tb.sorted = false
	}
	tb.tokens = append(tb.tokens, token)
	return true
}

// Len returns the number of distinct tokens.
func (tb *TokenBuffer) Len() int {
	return len(tb.tokens)
}

// GetSortedTokens returns the distinct tokens in ascending order. The slice is owned
// by the buffer and valid until the next modification.
func (tb *TokenBuffer) GetSortedTokens() []uint32 {
	if !tb.sorted {
		slices.Sort(tb.tokens)
		tb.sorted = true
	}
	return tb.tokens
}

// GetDistinctCountEstimate estimates the number of distinct hashes directly from
// the tokens.
func (tb *TokenBuffer) GetDistinctCountEstimate() float64 {
	return EstimateDistinctCountFromSortedTokens(tb.GetSortedTokens())
}

// AddTo adds all tokens to the given sketch.
func (tb *TokenBuffer) AddTo(sketch *ExaLogLog) {
	for _, token := range tb.tokens {
		sketch.AddToken(token)
	}
}

// ToSketch creates a sketch with the given parameters holding all tokens. Its state
// is the same as if all hashes had been added to it directly.
func (tb *TokenBuffer) ToSketch(t, d, p int) (*ExaLogLog, error) {
	sketch, err := NewExaLogLog(t, d, p)
	if err != nil {
		return nil, err
	}
	tb.AddTo(sketch)
	return sketch, nil
}

// Reset removes all tokens.
func (tb *TokenBuffer) Reset() {
	tb.set = intmap.New[uint32, struct{}](cap(tb.tokens))
	tb.tokens = tb.tokens[:0]
	tb.sorted = true
}
