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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func maxLevel(t, p int) uint64 {
	return uint64(65-t-p) << t
}

// levelProbabilityScaled returns the probability, scaled by 2^64, that a random
// hash hits a given register with the given level.
func levelProbabilityScaled(level uint64, t, p int) uint64 {
	nlz := int((level - 1) >> t)
	if nlz == 64-t-p {
		return 1
	}
	return uint64(1) << (63 - p - t - nlz)
}

func randomRegister(rnd *rand.Rand, t, d, p, numUpdates int) uint64 {
	var r uint64
	for i := 0; i < numUpdates; i++ {
		_, level := encodeUpdate(rnd.Uint64(), t, p)
		r = applyUpdate(r, level, d)
	}
	return r
}

func TestEncodeUpdate(t *testing.T) {
	for _, tc := range []struct {
		t, p  int
		hash  uint64
		idx   int
		level uint64
	}{
		{t: 0, p: 2, hash: 0, idx: 0, level: 63},
		{t: 0, p: 2, hash: ^uint64(0), idx: 3, level: 1},
		{t: 0, p: 2, hash: 1 << 60, idx: 0, level: 4},
		{t: 2, p: 4, hash: 0x3F, idx: 15, level: (58 << 2) + 4},
		{t: 2, p: 4, hash: 0x3D, idx: 15, level: (58 << 2) + 2},
		{t: 2, p: 4, hash: (1 << 63) | 0x11, idx: 4, level: 2},
	} {
		idx, level := encodeUpdate(tc.hash, tc.t, tc.p)
		assert.Equal(t, tc.idx, idx, "hash %x", tc.hash)
		assert.Equal(t, tc.level, level, "hash %x", tc.hash)
	}
}

func TestEncodeUpdateRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for tt := 0; tt <= 4; tt++ {
		for p := minP; p <= 8; p++ {
			for i := 0; i < 1000; i++ {
				idx, level := encodeUpdate(rnd.Uint64()>>rnd.Intn(64), tt, p)
				assert.Less(t, idx, 1<<p)
				assert.GreaterOrEqual(t, level, uint64(1))
				assert.LessOrEqual(t, level, maxLevel(tt, p))
			}
		}
	}
}

func TestApplyUpdate(t *testing.T) {
	d := 4
	r := applyUpdate(0, 5, d)
	assert.Equal(t, uint64(5<<4), r)
	// lower level goes into the history
	r = applyUpdate(r, 3, d)
	assert.Equal(t, uint64(5<<4|0b0100), r)
	// same level again is a no-op
	assert.Equal(t, r, applyUpdate(r, 5, d))
	assert.Equal(t, r, applyUpdate(r, 3, d))
	assert.Equal(t, uint64(5<<4|0b0101), applyUpdate(r, 1, d))
	// the history is shifted when the maximum grows
	r = applyUpdate(r, 6, d)
	assert.Equal(t, uint64(6<<4|0b1010), r)
	// the history drops out of the window
	r = applyUpdate(r, 10, d)
	assert.Equal(t, uint64(10<<4|0b0001), r)
	// too far below the maximum
	assert.Equal(t, r, applyUpdate(r, 5, d))
	r = applyUpdate(r, 30, d)
	assert.Equal(t, uint64(30<<4), r)

	// no history at all
	assert.Equal(t, uint64(7), applyUpdate(3, 7, 0))
	assert.Equal(t, uint64(7), applyUpdate(7, 3, 0))
}

func TestMergeRegister(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, cfg := range [][2]int{{0, 0}, {0, 2}, {1, 9}, {2, 20}, {2, 24}, {6, 30}, {0, 58}} {
		tt, d := cfg[0], cfg[1]
		p := 4
		for i := 0; i < 2000; i++ {
			var r1, r2, r12 uint64
			n1, n2 := rnd.Intn(20), rnd.Intn(20)
			for j := 0; j < n1+n2; j++ {
				_, level := encodeUpdate(rnd.Uint64(), tt, p)
				if j < n1 {
					r1 = applyUpdate(r1, level, d)
				} else {
					r2 = applyUpdate(r2, level, d)
				}
				r12 = applyUpdate(r12, level, d)
			}
			assert.Equal(t, r12, mergeRegister(r1, r2, d), "t=%d d=%d", tt, d)
			assert.Equal(t, r12, mergeRegister(r2, r1, d), "t=%d d=%d", tt, d)
			assert.Equal(t, r1, mergeRegister(r1, r1, d))
			assert.Equal(t, r1, mergeRegister(r1, 0, d))
		}
	}
}

func TestDownsizeRegisterHistory(t *testing.T) {
	// without precision change only the oldest history bits are dropped
	r := uint64(9<<6 | 0b101101)
	thr := downsizeThreshold(0, 4)
	assert.Equal(t, uint64(9<<2|0b10), downsizeRegister(r, 0, 6, 2, 4, 4, 0, thr))
	assert.Equal(t, r, downsizeRegister(r, 0, 6, 6, 4, 4, 0, thr))
	assert.Equal(t, uint64(0), downsizeRegister(0, 0, 6, 2, 4, 3, 1, thr))
}

func TestDownsizeThreshold(t *testing.T) {
	assert.Equal(t, uint64(61), downsizeThreshold(0, 4))
	assert.Equal(t, uint64((58<<2)+1), downsizeThreshold(2, 4))
}

func TestContributeEmptyRegister(t *testing.T) {
	for tt := 0; tt <= 6; tt++ {
		for p := minP; p <= 10; p++ {
			b := make([]int, 64)
			assert.Equal(t, uint64(1)<<(64-p), contribute(0, b, tt, 5, p))
			assert.Equal(t, make([]int, 64), b)
		}
	}
}

func TestContributeEqualsChangeProbability(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for _, cfg := range [][3]int{{0, 0, 2}, {0, 3, 4}, {1, 9, 5}, {2, 16, 6}, {2, 20, 4}, {3, 7, 3}, {5, 30, 2}, {6, 12, 4}, {8, 40, 3}} {
		tt, d, p := cfg[0], cfg[1], cfg[2]
		for i := 0; i < 50; i++ {
			r := randomRegister(rnd, tt, d, p, rnd.Intn(200))
			var expected uint64
			for level := uint64(1); level <= maxLevel(tt, p); level++ {
				if applyUpdate(r, level, d) != r {
					expected += levelProbabilityScaled(level, tt, p)
				}
			}
			assert.Equal(t, expected, contribute(r, nil, tt, d, p), "t=%d d=%d p=%d r=%x", tt, d, p, r)
		}
	}
}

func TestContributeHistogram(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for _, cfg := range [][3]int{{0, 0, 2}, {0, 3, 4}, {1, 9, 5}, {2, 20, 4}, {6, 12, 4}, {8, 40, 3}} {
		tt, d, p := cfg[0], cfg[1], cfg[2]
		q := 63 - tt - p
		for i := 0; i < 50; i++ {
			r := randomRegister(rnd, tt, d, p, 1+rnd.Intn(200))
			// every observed level within the window is counted in the level group
			// of its leading zero count
			expected := make([]int, 64)
			u := r >> d
			for level := uint64(1); level <= maxLevel(tt, p); level++ {
				if level > u || u-level > uint64(d) {
					continue
				}
				if level == u || r&(uint64(1)<<(uint64(d)-(u-level))) != 0 {
					expected[min(int((level-1)>>tt), q)]++
				}
			}
			b := make([]int, 64)
			contribute(r, b, tt, d, p)
			assert.Equal(t, expected, b, "t=%d d=%d p=%d r=%x", tt, d, p, r)
		}
	}
}
