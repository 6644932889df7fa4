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
	"math/bits"
)

// A register of a sketch with parameters t and d holds 6+t+d bits. The upper 6+t
// bits store the maximum update level u seen so far, where 0 means that the
// register was never updated. The lower d bits are a history: bit d-j is set if
// level u-j has also been observed, for 1 <= j <= d.

// encodeUpdate maps a 64-bit hash to the register index and the update level.
//
// The lowest t bits of the hash are the sub-level, the following p bits the
// register index, and the number of leading zeros of the remaining bits (capped at
// 64-t-p) selects the level group. The level is in [1, (65-t-p) << t].
func encodeUpdate(hash uint64, t, p int) (int, uint64) {
	mask := (uint64(1) << (t + p)) - 1
	idx := int((hash & mask) >> t)
	nlz := uint64(bits.LeadingZeros64(hash | mask))
	level := (nlz << t) + (hash & ((uint64(1) << t) - 1)) + 1
	return idx, level
}

// applyUpdate returns the register resulting from observing the given level.
func applyUpdate(r, level uint64, d int) uint64 {
	u := r >> d
	if level > u {
		delta := level - u
		rNew := level << d
		if delta <= uint64(d) {
			rNew |= ((uint64(1) << d) | (r & ((uint64(1) << d) - 1))) >> delta
		}
		return rNew
	}
	delta := u - level
	if delta > 0 && delta <= uint64(d) {
		return r | (uint64(1) << (uint64(d) - delta))
	}
	return r
}

// mergeRegister returns the register describing the union of the levels observed
// by r1 and r2. Levels dropping out of the history window are discarded.
func mergeRegister(r1, r2 uint64, d int) uint64 {
	u1 := r1 >> d
	u2 := r2 >> d
	historyMask := (uint64(1) << d) - 1
	if u1 > u2 && u2 > 0 {
		return r1 | (((uint64(1) << d) | (r2 & historyMask)) >> (u1 - u2))
	} else if u2 > u1 && u1 > 0 {
		return r2 | (((uint64(1) << d) | (r1 & historyMask)) >> (u2 - u1))
	}
	return r1 | r2
}

// downsizeThreshold returns the smallest level of a sketch with precision fromP
// for which the leading zero count has been capped.
func downsizeThreshold(t, fromP int) uint64 {
	return (uint64(64-t-fromP) << t) + 1
}

// downsizeRegister reduces the history of r from fromD to toD bits and maps it
// from precision fromP to toP. subIdx is the index of the register relative to
// the registers that collapse into the same coarser register, that is the index
// bits dropped by the reduction of the precision.
//
// Levels at or above the threshold were capped by the finer precision. When the
// dropped index bits contain leading zeros these levels are shifted upwards, as
// if the zeros had been counted in the first place.
func downsizeRegister(r uint64, t, fromD, toD, fromP, toP int, subIdx uint64, threshold uint64) uint64 {
	u := r >> fromD
	r >>= fromD - toD
	if u < threshold {
		return r
	}
	shift := ((fromP - toP) - bits.Len64(subIdx)) << t
	if shift <= 0 {
		return r
	}
	numBitsToShift := int64(toD) + int64(threshold) - int64(u)
	if numBitsToShift > 0 {
		mask := ^uint64(0) << numBitsToShift
		r = (mask & r) | ((r &^ mask) >> shift)
	}
	return r + (uint64(shift) << toD)
}

// contribute adds the contribution of register r to the histogram b of the
// maximum-likelihood equation, if b is not nil, and returns the contribution to
// its coefficient a, scaled by 2^64. The latter also equals the probability, again
// scaled by 2^64, that the next distinct element changes the register.
//
// An untouched register contributes 2^(64-p). All arithmetic wraps modulo 2^64.
func contribute(r uint64, b []int, t, d, p int) uint64 {
	u := int(r >> d)
	if u == 0 {
		return uint64(1) << (64 - p)
	}
	q := 63 - t - p
	i := min(q, (u-1)>>t)
	rInv := ^r
	numBits := (u - 1) - (i << t)
	mask := ^uint64(0) << max(0, d-numBits)
	windowMask := mask & ((uint64(1) << d) - 1)
	a := uint64(((i+2)<<t)-u+bits.OnesCount64(rInv&windowMask)) << (q - i)
	if b != nil {
		b[i] += 1 + bits.OnesCount64(r&windowMask)
	}
	if t <= 5 {
		// the history covers several level groups of 2^t levels each
		shift := 1 << t
		mask ^= uint64(int64(mask) >> shift)
		for i > 0 && mask != 0 {
			i--
			a += uint64(bits.OnesCount64(mask&rInv)) << (q - i)
			if b != nil {
				b[i] += bits.OnesCount64(mask & r)
			}
			mask >>= shift
		}
	} else if i > 0 {
		mask = ^mask
		i--
		a += uint64(bits.OnesCount64(mask&rInv)) << (q - i)
		if b != nil {
			b[i] += bits.OnesCount64(mask & r)
		}
	}
	return a
}
