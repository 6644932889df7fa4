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
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rangeTokenIterator struct {
	next uint64
	end  uint64
}

func (it *rangeTokenIterator) Next() bool {
	if it.next >= it.end {
		return false
	}
	it.next++
	return true
}

func (it *rangeTokenIterator) Token() uint32 {
	return uint32(it.next - 1)
}

func getMaxValidToken(v int) uint64 {
	return ((^uint64(0) >> (64 - v)) << 6) + 64 - uint64(v)
}

func TestIsValidToken(t *testing.T) {
	assert.True(t, isValidToken(0, 7))
	assert.False(t, isValidToken(10000, 1))
	assert.False(t, isValidToken(0xFFFFFFFF, 1))
	assert.False(t, isValidToken(0x3F, 2))
	for v := minTokenParameter; v <= maxTokenParameter; v++ {
		assert.True(t, isValidToken(uint32(getMaxValidToken(v)), v))
		assert.False(t, isValidToken(uint32(getMaxValidToken(v)+1), v))
	}
}

func TestComputeToken(t *testing.T) {
	assert.Equal(t, uint32(38), ComputeToken(0))
	assert.Equal(t, uint32(0xFFFFFFC0), ComputeToken(^uint64(0)))
	assert.Equal(t, uint32(5<<6|1), ComputeToken(1<<62|5))
	assert.Equal(t, uint32(0x3F<<6|38), computeToken(0x3F, 26))
	assert.Equal(t, uint32(1<<6|63), computeToken(1, 1))
}

func TestReconstructHash(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x026680003f978228))
	for v := minTokenParameter; v <= maxTokenParameter; v++ {
		for i := 0; i < 1000; i++ {
			hash := rnd.Uint64() >> rnd.Intn(64)
			token := computeToken(hash, v)
			require.True(t, isValidToken(token, v))
			reconstructed := reconstructHash(token, v)
			assert.Equal(t, hash|((^uint64(0)>>v>>(token&0x3F))<<v), reconstructed)
			assert.Equal(t, token, computeToken(reconstructed, v))
		}
	}
}

func TestEstimationFromZeroTokens(t *testing.T) {
	for v := minTokenParameter; v <= maxTokenParameter; v++ {
		estimate, err := EstimateDistinctCountFromTokens(&rangeTokenIterator{}, v)
		assert.NoError(t, err)
		assert.Zero(t, estimate)
	}
	assert.Zero(t, EstimateDistinctCountFromSortedTokens(nil))
}

func TestEstimationFromAllTokens(t *testing.T) {
	for v := minTokenParameter; v <= 20; v++ {
		estimate, err := EstimateDistinctCountFromTokens(&rangeTokenIterator{end: getMaxValidToken(v) + 1}, v)
		assert.NoError(t, err)
		assert.True(t, math.IsInf(estimate, 1), "v=%d", v)

		estimate, err = EstimateDistinctCountFromTokens(&rangeTokenIterator{end: getMaxValidToken(v)}, v)
		assert.NoError(t, err)
		assert.False(t, math.IsInf(estimate, 0), "v=%d", v)
		assert.Greater(t, estimate, 1e19, "v=%d", v)
	}
}

func TestEstimationFromTokens(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for _, tc := range []struct {
		v      int
		maxErr float64
	}{
		{v: 12, maxErr: 0.05},
		{v: 15, maxErr: 0.02},
		{v: 18, maxErr: 0.01},
		{v: 22, maxErr: 0.01},
		{v: 26, maxErr: 0.01},
	} {
		for _, n := range []int{1, 2, 3, 5, 10, 100, 1000, 10000, 100000} {
			for i := 0; i < 3; i++ {
				tokens := make([]uint32, n)
				for c := range tokens {
					tokens[c] = computeToken(rnd.Uint64(), tc.v)
				}
				slices.Sort(tokens)
				estimate, err := EstimateDistinctCountFromTokens(NewSliceTokenIterator(tokens), tc.v)
				assert.NoError(t, err)
				assert.InEpsilon(t, float64(n), estimate, tc.maxErr, "v=%d n=%d", tc.v, n)
			}
		}
	}
}

func TestEstimationFromTokensIgnoresDuplicatesAndInvalid(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	tokens := make([]uint32, 1000)
	for i := range tokens {
		tokens[i] = ComputeToken(rnd.Uint64())
	}
	slices.Sort(tokens)
	expected := EstimateDistinctCountFromSortedTokens(tokens)

	withNoise := make([]uint32, 0, 3*len(tokens))
	for _, token := range tokens {
		withNoise = append(withNoise, token, token, token|0x3F)
	}
	assert.Equal(t, expected, EstimateDistinctCountFromSortedTokens(withNoise))
}

func TestEstimationFromTokensErrors(t *testing.T) {
	_, err := EstimateDistinctCountFromTokens(nil, 26)
	assert.ErrorIs(t, err, ErrNilArgument)
	for _, v := range []int{0, 27, -1} {
		_, err = EstimateDistinctCountFromTokens(NewSliceTokenIterator(nil), v)
		assert.ErrorIs(t, err, ErrInvalidTokenParameter)
	}
}
