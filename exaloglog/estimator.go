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

// Estimator computes a distinct count estimate from the state of a sketch.
type Estimator interface {
	Estimate(sketch *ExaLogLog) float64
	// RelativeStandardError returns the asymptotic relative standard error of the
	// estimate for the given configuration.
	RelativeStandardError(t, d, p int) float64
}

type maximumLikelihoodEstimator struct{}

// MaximumLikelihoodEstimator is the default estimator. Unlike the martingale
// estimator it only depends on the state of the sketch and also works for merged or
// downsized sketches.
var MaximumLikelihoodEstimator Estimator = maximumLikelihoodEstimator{}

func (maximumLikelihoodEstimator) Estimate(sketch *ExaLogLog) float64 {
	t, d, p := sketch.t, sketch.d, sketch.p
	m := sketch.registerCount()
	b := make([]int, 64)
	var agg uint64
	for idx := 0; idx < m; idx++ {
		agg += contribute(sketch.handler.Get(sketch.state, idx), b, t, d, p)
	}
	if agg == 0 {
		// the contributions of an empty sketch sum up to 2^64, otherwise a zero sum
		// means that every register is saturated
		if b[63-t-p] == 0 {
			return 0
		}
		return math.Inf(1)
	}
	factor := float64(m << (t + 1))
	a := float64(agg) * 0x1p-64 * factor
	bias := mlBiasCorrectionConstants[t][d]
	return factor * solveMaximumLikelihoodEquation(a, b, 63-p-t, 0) / (1 + bias/float64(m))
}

func (maximumLikelihoodEstimator) RelativeStandardError(t, d, p int) float64 {
	return mlRelativeStandardErrorConstants[t][d] / math.Sqrt(float64(uint64(1)<<p))
}

func lowerBound(estimate, relErr float64) float64 {
	return estimate / (1 + relErr)
}

func upperBound(estimate, relErr float64) float64 {
	if relErr >= 1 {
		return math.Inf(1)
	}
	return estimate / (1 - relErr)
}
