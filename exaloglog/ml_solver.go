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
)

// Taylor coefficients of h(y) = 1 - y/(e^y - 1) expressed in z = y/2, so that
// h(y) = z + z^2 * (C0 + z^2 * (C1 - z^2 * C2)) + O(z^8), used for z < 2^-5.
const (
	taylorC0 = -1.0 / 3.0
	taylorC1 = 1.0 / 45.0
	taylorC2 = 1.0 / 472.5
)

type solverStatistics struct {
	iterations int
}

// solveMaximumLikelihoodEquation returns the root x of
//
//	a - sum_{k=0}^{n} b[k] * 2^-k / (e^(x/2^k) - 1) = 0
//
// which is the maximum-likelihood estimate up to a constant factor. The root is
// found by Newton iteration. Once the relative step size falls below
// relativeErrorLimit one more step is taken, which reduces the remaining error to
// about the square of the limit. The iteration also stops when it makes no more
// progress. An invalid limit is treated as zero.
//
// Returns +Inf if a is zero and 0 if all of b[0..n] are zero.
func solveMaximumLikelihoodEquation(a float64, b []int, n int, relativeErrorLimit float64) float64 {
	return solveMaximumLikelihoodEquationWithStatistics(a, b, n, relativeErrorLimit, nil)
}

func solveMaximumLikelihoodEquationWithStatistics(a float64, b []int, n int, relativeErrorLimit float64, stats *solverStatistics) float64 {
	if a == 0 {
		return math.Inf(1)
	}
	kMax := n
	for kMax >= 0 && b[kMax] == 0 {
		kMax--
	}
	if kMax < 0 {
		return 0
	}
	kMin := kMax
	s1 := int64(b[kMax])
	s2 := math.Ldexp(float64(b[kMax]), -kMax)
	for k := kMax - 1; k >= 0; k-- {
		if b[k] > 0 {
			s1 += int64(b[k])
			s2 += math.Ldexp(float64(b[k]), -k)
			kMin = k
		}
	}

	// Multiplying by x gives g(x) = sum_k b[k] * h(x/2^k) + a*x - s1 = 0, where g is
	// concave and increasing. Jensen's inequality yields the lower bound below,
	// which is the exact root if only a single level is occupied. Newton iterates
	// started left of the root of a concave function increase monotonically, so a
	// non-positive step can only be caused by rounding.
	x := math.Log1p(s2/a) * (float64(s1) / s2)
	if kMin == kMax {
		return x
	}
	if !(relativeErrorLimit > 0) {
		relativeErrorLimit = 0
	}

	final := false
	for {
		if stats != nil {
			stats.iterations++
		}
		_, exp := math.Frexp(x)
		kappa := exp + 4 // x/2^(kappa+1) is in [2^-6, 2^-5)
		xp := math.Ldexp(x, -(max(kMax, kappa) + 1))
		xp2 := xp * xp
		h := xp + xp2*(taylorC0+xp2*(taylorC1-xp2*taylorC2))
		// h(4z) = (z + h(2z)*(1 - h(2z))) / (z + 1 - h(2z)), h holds h(2*xp)
		for k := kappa - 1; k >= kMax; k-- {
			hp := 1 - h
			h = (xp + h*hp) / (xp + hp)
			xp += xp
		}
		g := 0.0
		dg := 0.0
		for k := kMax; ; k-- {
			if b[k] > 0 {
				hp := 1 - h
				g += float64(b[k]) * h
				dg += float64(b[k]) * hp * (2*xp - h)
			}
			if k == kMin {
				break
			}
			hp := 1 - h
			h = (xp + h*hp) / (xp + hp)
			xp += xp
		}
		g += a*x - float64(s1)
		dg += a * x
		step := -x * g / dg
		prevX := x
		x += step
		if !(step > x*relativeErrorLimit) || x == prevX {
			if final || !(step > 0) || x == prevX {
				break
			}
			final = true
		}
	}
	return x
}
