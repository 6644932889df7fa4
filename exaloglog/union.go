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
)

// Union accumulates sketches with the same t-parameter but possibly different d-
// and p-parameters. The result is reduced to the smallest d- and p-parameters of
// all absorbed sketches, bounded by those the union was created with.
type Union struct {
	maxD   int
	maxP   int
	gadget *ExaLogLog
}

// NewUnion creates an empty union for sketches with the given t-parameter. The d-
// and p-parameters limit the resolution of the result.
func NewUnion(t, d, p int) (*Union, error) {
	sk, err := NewExaLogLog(t, d, p)
	if err != nil {
		return nil, err
	}
	return &Union{
		maxD:   d,
		maxP:   p,
		gadget: sk,
	}, nil
}

// NewUnionWithDefault creates an empty union with t=2, d=20 and p=12.
func NewUnionWithDefault() (*Union, error) {
	return NewUnion(defaultT, defaultD, defaultP)
}

// UpdateSketch merges the given sketch into the union. The sketch is not modified.
func (u *Union) UpdateSketch(sketch *ExaLogLog) error {
	if sketch == nil {
		return fmt.Errorf("%w: sketch", ErrNilArgument)
	}
	if sketch.t != u.gadget.t {
		return fmt.Errorf("%w: %d != %d", ErrIncompatibleT, u.gadget.t, sketch.t)
	}
	if sketch.d >= u.gadget.d && sketch.p >= u.gadget.p {
		return u.gadget.AddSketch(sketch)
	}
	merged, err := Merge(u.gadget, sketch)
	if err != nil {
		return err
	}
	u.gadget = merged
	return nil
}

// Add inserts a single 64-bit hash.
func (u *Union) Add(hash uint64) {
	u.gadget.Add(hash)
}

// GetResult returns a copy of the accumulated sketch.
func (u *Union) GetResult() *ExaLogLog {
	return u.gadget.Copy()
}

// GetDistinctCountEstimate returns the estimate of the accumulated sketch.
func (u *Union) GetDistinctCountEstimate() float64 {
	return u.gadget.GetDistinctCountEstimate()
}

func (u *Union) GetLowerBound(numStdDev int) (float64, error) {
	return u.gadget.GetLowerBound(numStdDev)
}

func (u *Union) GetUpperBound(numStdDev int) (float64, error) {
	return u.gadget.GetUpperBound(numStdDev)
}

// IsEmpty returns true if nothing but empty sketches has been absorbed.
func (u *Union) IsEmpty() bool {
	return u.gadget.IsEmpty()
}

// Reset empties the union and restores the d- and p-parameters it was created
// with.
func (u *Union) Reset() {
	if u.gadget.d == u.maxD && u.gadget.p == u.maxP {
		u.gadget.Reset()
		return
	}
	u.gadget = newExaLogLog(u.gadget.t, u.maxD, u.maxP)
}

func (u *Union) GetT() int {
	return u.gadget.t
}

// GetD returns the current d-parameter of the result.
func (u *Union) GetD() int {
	return u.gadget.d
}

// GetP returns the current precision of the result.
func (u *Union) GetP() int {
	return u.gadget.p
}
