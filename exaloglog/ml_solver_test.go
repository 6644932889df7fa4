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
)

// solveByBisection finds the root of the maximum-likelihood equation by bisection
// in the logarithmic domain.
func solveByBisection(a float64, b []int) float64 {
	f := func(x float64) float64 {
		sum := -a
		for k, c := range b {
			if c > 0 {
				sum += float64(c) * math.Ldexp(1, -k) / math.Expm1(math.Min(math.Ldexp(x, -k), 700))
			}
		}
		return sum
	}
	lo, hi := 1e-300, 1e300
	for i := 0; i < 5000 && lo < hi; i++ {
		var mid float64
		if hi > 4*lo {
			mid = math.Sqrt(lo) * math.Sqrt(hi)
		} else {
			mid = lo + (hi-lo)/2
		}
		if mid <= lo || mid >= hi {
			break
		}
		if f(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

func TestSolverSpecialCases(t *testing.T) {
	assert.Equal(t, math.Inf(1), solveMaximumLikelihoodEquation(0, []int{1, 2, 3}, 2, 0))
	assert.Equal(t, math.Inf(1), solveMaximumLikelihoodEquation(0, []int{0, 0, 0}, 2, 0))
	assert.Equal(t, 0.0, solveMaximumLikelihoodEquation(1, []int{0, 0, 0}, 2, 0))
	assert.Equal(t, 0.0, solveMaximumLikelihoodEquation(1, []int{}, -1, 0))
	// entries above n are ignored
	assert.Equal(t, 0.0, solveMaximumLikelihoodEquation(1, []int{0, 0, 5}, 1, 0))
}

func TestSolverSingleLevel(t *testing.T) {
	for k := 0; k < 64; k++ {
		for _, c := range []int{1, 2, 7, 1000} {
			for _, a := range []float64{1e-3, 0.5, 1, 3, 1e6} {
				b := make([]int, 64)
				b[k] = c
				stats := &solverStatistics{}
				x := solveMaximumLikelihoodEquationWithStatistics(a, b, 63, 0, stats)
				expected := math.Log1p(float64(c)*math.Ldexp(1, -k)/a) * math.Ldexp(1, k)
				assert.InEpsilon(t, expected, x, 1e-14, "k=%d c=%d a=%v", k, c, a)
				assert.Equal(t, 0, stats.iterations)
			}
		}
	}
}

func TestSolverKnownRoots(t *testing.T) {
	b := make([]int, 64)
	b[0] = 1
	b[63] = 1
	assert.InEpsilon(t, 1.4455749111515481, solveMaximumLikelihoodEquation(1, b, 63, 0), 1e-12)

	// e^(x/2) = 3 solves 2/(e^x - 1) + 3/2/(e^(x/2) - 1) = 1
	assert.InEpsilon(t, math.Log(9), solveMaximumLikelihoodEquation(1, []int{2, 3}, 1, 0), 1e-12)

	assert.InEpsilon(t, 4.177847152844514, solveMaximumLikelihoodEquation(3, []int{6, 7, 2, 1, 4, 5}, 5, 0), 1e-12)
	assert.InEpsilon(t, 3.0518927571316654, solveMaximumLikelihoodEquation(7, []int{0, 0, 6, 7, 2, 1, 4, 5, 0, 0, 0, 0}, 11, 0), 1e-12)
}

func TestSolverIterations(t *testing.T) {
	stats := &solverStatistics{}
	x := solveMaximumLikelihoodEquationWithStatistics(3.5, []int{1, 2, 3, 4, 5, 6}, 5, 0, stats)
	assert.Equal(t, 4, stats.iterations)
	assert.InEpsilon(t, 4.352545533370981, x, 1e-12)

	stats = &solverStatistics{}
	solveMaximumLikelihoodEquationWithStatistics(3.5, []int{1, 2, 3, 4, 5, 6}, 5, 1e-2, stats)
	assert.Equal(t, 3, stats.iterations)
}

func TestSolverCoarseErrorLimit(t *testing.T) {
	cases := []struct {
		a float64
		b []int
	}{
		{0.12274207925281233, []int{574, 580}},
		{1, []int{2, 3}},
		{3, []int{2, 1, 4, 5}},
		{3, []int{6, 7, 2, 1, 4, 5}},
		{7, []int{0, 0, 6, 7, 0, 0, 4, 5, 0, 0, 0, 0}},
		{0.1991679290502678, []int{1, 1, 1}},
		{0.20711847986587495, []int{1, 1, 1}},
	}
	for _, limit := range []struct {
		relativeErrorLimit float64
		maxRelativeError   float64
	}{
		{1e-2, 5e-6},
		{1e-4, 2e-10},
		{1e-6, 5e-13},
	} {
		for _, tc := range cases {
			expected := solveByBisection(tc.a, tc.b)
			actual := solveMaximumLikelihoodEquation(tc.a, tc.b, len(tc.b)-1, limit.relativeErrorLimit)
			assert.InEpsilon(t, expected, actual, limit.maxRelativeError, "limit=%v a=%v b=%v", limit.relativeErrorLimit, tc.a, tc.b)
		}
	}
	assert.InEpsilon(t, 15.537619489139223, solveMaximumLikelihoodEquation(0.12274207925281233, []int{574, 580}, 1, 1e-2), 5e-6)
}

func TestSolverInvalidErrorLimit(t *testing.T) {
	b := []int{6, 7, 2, 1, 4, 5}
	expected := solveMaximumLikelihoodEquation(3, b, 5, 0)
	assert.Equal(t, expected, solveMaximumLikelihoodEquation(3, b, 5, -1))
	assert.Equal(t, expected, solveMaximumLikelihoodEquation(3, b, 5, math.NaN()))
}

func TestSolverAgainstBisection(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 200; i++ {
		n := 1 + rnd.Intn(63)
		b := make([]int, 64)
		for k := 0; k <= n; k++ {
			if rnd.Intn(3) > 0 {
				b[k] = rnd.Intn(100)
			}
		}
		a := math.Ldexp(rnd.Float64()+1e-3, rnd.Intn(20)-10)
		actual := solveMaximumLikelihoodEquation(a, b, n, 0)
		if slices.Max(b) == 0 {
			assert.Equal(t, 0.0, actual)
			continue
		}
		expected := solveByBisection(a, b[:n+1])
		assert.InEpsilon(t, expected, actual, 1e-9, "a=%v b=%v", a, b[:n+1])
	}
}
