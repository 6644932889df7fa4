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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantTableShapes(t *testing.T) {
	for _, table := range [][][]float64{
		mlBiasCorrectionConstants,
		mlRelativeStandardErrorConstants,
		martingaleRelativeStandardErrorConstants,
	} {
		assert.Len(t, table, GetMaxT()+1)
		for tt, row := range table {
			maxD, _ := GetMaxD(tt)
			assert.Len(t, row, maxD+1, "t=%d", tt)
			for _, c := range row {
				assert.Positive(t, c)
			}
		}
	}
}

func TestConstantValues(t *testing.T) {
	assert.Equal(t, 0.1055382430717344, mlBiasCorrectionConstants[2][20])
	assert.Equal(t, 0.3621978749344187, mlRelativeStandardErrorConstants[2][20])
	assert.Equal(t, 0.3177320794241199, martingaleRelativeStandardErrorConstants[2][20])
	// HyperLogLog
	assert.Equal(t, 1.0367047097785012, mlRelativeStandardErrorConstants[0][0])
	assert.Equal(t, 0.8325546111576977, martingaleRelativeStandardErrorConstants[0][0])

	// with long histories the Hurwitz zeta values approach zeta(2) and zeta(3)
	zeta2 := math.Pi * math.Pi / 6
	zeta3 := 1.2020569031595942
	for tt := 0; tt <= 1; tt++ {
		maxD, _ := GetMaxD(tt)
		lnb := math.Ln2 * math.Ldexp(1, -tt)
		assert.InEpsilon(t, math.Sqrt(lnb/zeta2), mlRelativeStandardErrorConstants[tt][maxD], 1e-7)
		assert.InEpsilon(t, lnb*zeta3/(zeta2*zeta2), mlBiasCorrectionConstants[tt][maxD], 1e-7)
	}
}

func TestMartingaleConstants(t *testing.T) {
	for tt, row := range martingaleRelativeStandardErrorConstants {
		lnb := math.Ln2 * math.Ldexp(1, -tt)
		for d, c := range row {
			x := math.Exp(-lnb*float64(d)) / math.Expm1(lnb)
			assert.InEpsilon(t, math.Sqrt(lnb/2*(1+x)), c, 1e-12, "t=%d d=%d", tt, d)
		}
	}
}

func TestRelativeStandardErrorDecreasesWithHistory(t *testing.T) {
	for _, table := range [][][]float64{mlRelativeStandardErrorConstants, martingaleRelativeStandardErrorConstants} {
		for tt, row := range table {
			for d := 1; d < len(row); d++ {
				assert.LessOrEqual(t, row[d], row[d-1], "t=%d d=%d", tt, d)
			}
		}
	}
	// the martingale estimator is always more efficient
	for tt, row := range mlRelativeStandardErrorConstants {
		for d, c := range row {
			assert.Less(t, martingaleRelativeStandardErrorConstants[tt][d], c, "t=%d d=%d", tt, d)
		}
	}
}

func TestRelativeStandardError(t *testing.T) {
	assert.InDelta(t, 0.3621978749344187/64, MaximumLikelihoodEstimator.RelativeStandardError(2, 20, 12), 1e-15)
	assert.InDelta(t, 1.0367047097785012/2, MaximumLikelihoodEstimator.RelativeStandardError(0, 0, 2), 1e-15)
}

func TestBoundHelpers(t *testing.T) {
	assert.InDelta(t, 100.0, lowerBound(110, 0.1), 1e-9)
	assert.InDelta(t, 1000.0/0.9, upperBound(1000, 0.1), 1e-9)
	assert.True(t, math.IsInf(upperBound(1000, 1), 1))
	assert.Zero(t, lowerBound(0, 0.5))
	assert.Zero(t, upperBound(0, 0.5))
}
