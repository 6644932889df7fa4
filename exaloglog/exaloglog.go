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

// Package exaloglog is dedicated to the estimation of the number of distinct
// elements of a stream of 64-bit hashes.
//
// ExaLogLog is a register based sketch. Each register holds the maximum update level
// seen so far together with a d-bit history of the levels just below it. Sketches
// with equal t-parameter can be merged and reduced to smaller d- and
// p-parameters. The state is kept as a packed byte slice, so it can be persisted or
// transported as is and restored with WrapExaLogLog.
//
// Estimates are computed by the maximum-likelihood method, or, for sketches that
// are only ever updated with elements, by an attached MartingaleEstimator. The
// relative standard error is approximately RSE(t, d) / sqrt(2^p); the default
// configuration t=2, d=20, p=12 needs 14 KiB and achieves about 0.57 %.
package exaloglog

import (
	"bytes"
	"fmt"
	"math/bits"

	"github.com/distinctcount/exaloglog-go/internal"
)

// ExaLogLog is a distinct count sketch. It is not safe for concurrent use.
type ExaLogLog struct {
	t       int
	d       int
	p       int
	state   []byte
	handler internal.PackedArrayHandler
}

// NewExaLogLog creates an empty sketch.
//
//   - t, the number of hash bits used to refine the update level, in [0, 24].
//   - d, the number of history bits per register, in [0, 58-t].
//   - p, the precision, the sketch has 2^p registers, in [2, 26-t].
func NewExaLogLog(t, d, p int) (*ExaLogLog, error) {
	if err := checkParameters(t, d, p); err != nil {
		return nil, err
	}
	return newExaLogLog(t, d, p), nil
}

// NewExaLogLogWithDefault creates an empty sketch with t=2, d=20 and p=12.
func NewExaLogLogWithDefault() (*ExaLogLog, error) {
	return NewExaLogLog(defaultT, defaultD, defaultP)
}

// newExaLogLog assumes valid parameters.
func newExaLogLog(t, d, p int) *ExaLogLog {
	handler, _ := internal.GetPackedArrayHandler(registerBitSize(t, d))
	return &ExaLogLog{
		t:       t,
		d:       d,
		p:       p,
		state:   handler.Create(1 << p),
		handler: handler,
	}
}

// WrapExaLogLog creates a sketch backed by the given state, without copying it.
// The precision is derived from the length of the state, which must match a valid
// configuration exactly.
//
//   - state, a slice previously returned by GetState of a sketch with the same t and d.
func WrapExaLogLog(t, d int, state []byte) (*ExaLogLog, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: state", ErrNilArgument)
	}
	if err := checkT(t); err != nil {
		return nil, err
	}
	if err := checkD(t, d); err != nil {
		return nil, err
	}
	regBits := registerBitSize(t, d)
	m := (uint64(len(state)) * 8) / uint64(regBits)
	p := bits.Len64(m) - 1
	if p < minP || p > tokenParameter-t || stateSizeBytes(t, d, p) != len(state) {
		return nil, fmt.Errorf("%w: %d bytes for t=%d, d=%d", ErrInvalidStateLength, len(state), t, d)
	}
	handler, _ := internal.GetPackedArrayHandler(regBits)
	return &ExaLogLog{
		t:       t,
		d:       d,
		p:       p,
		state:   state,
		handler: handler,
	}, nil
}

// Merge returns a new sketch representing the union of both sketches. The result
// has the smaller d- and p-parameters of the two. Both sketches must have the same
// t-parameter and are not modified.
func Merge(sketch1, sketch2 *ExaLogLog) (*ExaLogLog, error) {
	if sketch1 == nil || sketch2 == nil {
		return nil, fmt.Errorf("%w: sketch", ErrNilArgument)
	}
	if sketch1.t != sketch2.t {
		return nil, fmt.Errorf("%w: %d != %d", ErrIncompatibleT, sketch1.t, sketch2.t)
	}
	if sketch1.p > sketch2.p {
		sketch1, sketch2 = sketch2, sketch1
	}
	var result *ExaLogLog
	if sketch1.d <= sketch2.d {
		result = sketch1.Copy()
	} else {
		result = sketch1.downsize(sketch2.d, sketch1.p)
	}
	if err := result.AddSketch(sketch2); err != nil {
		return nil, err
	}
	return result, nil
}

// Add inserts the given 64-bit hash. The hash must be of good quality, see the
// hash helpers of Updater.
func (s *ExaLogLog) Add(hash uint64) *ExaLogLog {
	return s.AddWithObserver(hash, nil)
}

// AddWithObserver inserts the given 64-bit hash and notifies the observer, if not
// nil, in case the state changed.
func (s *ExaLogLog) AddWithObserver(hash uint64, observer StateChangeObserver) *ExaLogLog {
	idx, level := encodeUpdate(hash, s.t, s.p)
	rOld := s.handler.Get(s.state, idx)
	rNew := applyUpdate(rOld, level, s.d)
	if rNew == rOld {
		return s
	}
	s.handler.Set(s.state, idx, rNew)
	if observer != nil {
		var decrement float64
		if level > rOld>>s.d {
			decrement = float64(contribute(rOld, nil, s.t, s.d, s.p)-contribute(rNew, nil, s.t, s.d, s.p)) * 0x1p-64
		} else {
			// only a history bit was set, its probability depends only on the level
			nlz := int((level - 1) >> s.t)
			decrement = internal.Pow2(max(63-s.t-s.p-nlz, 0) - 64)
		}
		observer.StateChanged(decrement)
	}
	return s
}

// AddToken inserts an element given by its 32-bit token as returned by
// ComputeToken. The resulting state equals that after adding the hash the token
// was computed from.
func (s *ExaLogLog) AddToken(token uint32) *ExaLogLog {
	return s.AddTokenWithObserver(token, nil)
}

// AddTokenWithObserver is AddToken with state change notification, see
// AddWithObserver.
func (s *ExaLogLog) AddTokenWithObserver(token uint32, observer StateChangeObserver) *ExaLogLog {
	return s.AddWithObserver(reconstructHash(token, tokenParameter), observer)
}

// AddSketch merges the other sketch into this one. The other sketch must have the
// same t-parameter and d- and p-parameters not smaller than those of this sketch.
// Otherwise an error is returned and this sketch is left unchanged.
func (s *ExaLogLog) AddSketch(other *ExaLogLog) error {
	if other == nil {
		return fmt.Errorf("%w: sketch", ErrNilArgument)
	}
	if other.t != s.t {
		return fmt.Errorf("%w: %d != %d", ErrIncompatibleT, s.t, other.t)
	}
	if other.d < s.d || other.p < s.p {
		return fmt.Errorf("%w: (d=%d, p=%d) < (d=%d, p=%d)", ErrOperandTooCoarse, other.d, other.p, s.d, s.p)
	}
	m := s.registerCount()
	if other.d == s.d && other.p == s.p {
		for idx := 0; idx < m; idx++ {
			r1 := s.handler.Get(s.state, idx)
			r2 := other.handler.Get(other.state, idx)
			if merged := mergeRegister(r1, r2, s.d); merged != r1 {
				s.handler.Set(s.state, idx, merged)
			}
		}
		return nil
	}
	threshold := downsizeThreshold(s.t, other.p)
	numSubRegisters := 1 << (other.p - s.p)
	for idx := 0; idx < m; idx++ {
		merged := downsizeRegister(other.handler.Get(other.state, idx), s.t, other.d, s.d, other.p, s.p, 0, threshold)
		for subIdx := 1; subIdx < numSubRegisters; subIdx++ {
			r := other.handler.Get(other.state, idx+(subIdx<<s.p))
			merged = mergeRegister(merged, downsizeRegister(r, s.t, other.d, s.d, other.p, s.p, uint64(subIdx), threshold), s.d)
		}
		if merged != 0 {
			r := s.handler.Get(s.state, idx)
			s.handler.Set(s.state, idx, mergeRegister(r, merged, s.d))
		}
	}
	return nil
}

// Downsize returns a copy reduced to the given d- and p-parameters. Parameters
// larger than the current ones keep the current ones, so the result never has a
// higher resolution than this sketch.
func (s *ExaLogLog) Downsize(d, p int) (*ExaLogLog, error) {
	if err := checkD(s.t, d); err != nil {
		return nil, err
	}
	if err := checkP(s.t, p); err != nil {
		return nil, err
	}
	return s.downsize(d, p), nil
}

func (s *ExaLogLog) downsize(d, p int) *ExaLogLog {
	d = min(d, s.d)
	p = min(p, s.p)
	if d == s.d && p == s.p {
		return s.Copy()
	}
	result := newExaLogLog(s.t, d, p)
	_ = result.AddSketch(s)
	return result
}

// GetDistinctCountEstimate returns the maximum-likelihood estimate of the number of
// distinct elements added.
func (s *ExaLogLog) GetDistinctCountEstimate() float64 {
	return MaximumLikelihoodEstimator.Estimate(s)
}

// GetDistinctCountEstimateWith returns the estimate computed by the given estimator.
func (s *ExaLogLog) GetDistinctCountEstimateWith(estimator Estimator) float64 {
	return estimator.Estimate(s)
}

// GetStateChangeProbability returns the probability that adding a new distinct
// element changes the state of the sketch.
func (s *ExaLogLog) GetStateChangeProbability() float64 {
	first := contribute(s.handler.Get(s.state, 0), nil, s.t, s.d, s.p)
	sum := first
	for idx := 1; idx < s.registerCount(); idx++ {
		sum += contribute(s.handler.Get(s.state, idx), nil, s.t, s.d, s.p)
	}
	// a zero sum means that all registers are saturated, unless they are all empty
	// and 2^p contributions of 2^(64-p) wrapped around
	if sum == 0 && first != 0 {
		return 1
	}
	return float64(sum) * 0x1p-64
}

// GetLowerBound returns the approximate lower error bound of the estimate given the
// specified number of standard deviations.
//
//   - numStdDev, this must be an integer between 1 and 3, inclusive.
func (s *ExaLogLog) GetLowerBound(numStdDev int) (float64, error) {
	relErr, err := s.mlRelErr(numStdDev)
	if err != nil {
		return 0, err
	}
	return lowerBound(s.GetDistinctCountEstimate(), relErr), nil
}

// GetUpperBound returns the approximate upper error bound of the estimate given the
// specified number of standard deviations.
//
//   - numStdDev, this must be an integer between 1 and 3, inclusive.
func (s *ExaLogLog) GetUpperBound(numStdDev int) (float64, error) {
	relErr, err := s.mlRelErr(numStdDev)
	if err != nil {
		return 0, err
	}
	return upperBound(s.GetDistinctCountEstimate(), relErr), nil
}

func (s *ExaLogLog) mlRelErr(numStdDev int) (float64, error) {
	if err := checkNumStdDev(numStdDev); err != nil {
		return 0, err
	}
	return float64(numStdDev) * MaximumLikelihoodEstimator.RelativeStandardError(s.t, s.d, s.p), nil
}

// Copy returns a deep copy of this sketch.
func (s *ExaLogLog) Copy() *ExaLogLog {
	return &ExaLogLog{
		t:       s.t,
		d:       s.d,
		p:       s.p,
		state:   bytes.Clone(s.state),
		handler: s.handler,
	}
}

// Reset clears all registers, the configuration is kept.
func (s *ExaLogLog) Reset() *ExaLogLog {
	clear(s.state)
	return s
}

// IsEmpty returns true if no element has been added.
func (s *ExaLogLog) IsEmpty() bool {
	for _, b := range s.state {
		if b != 0 {
			return false
		}
	}
	return true
}

// GetState returns the state of the sketch. The slice is not a copy, modifying it
// modifies the sketch.
func (s *ExaLogLog) GetState() []byte {
	return s.state
}

func (s *ExaLogLog) GetT() int {
	return s.t
}

func (s *ExaLogLog) GetD() int {
	return s.d
}

func (s *ExaLogLog) GetP() int {
	return s.p
}

func (s *ExaLogLog) registerCount() int {
	return 1 << s.p
}

func (s *ExaLogLog) String() string {
	return fmt.Sprintf("ExaLogLog{t=%d, d=%d, p=%d}", s.t, s.d, s.p)
}
