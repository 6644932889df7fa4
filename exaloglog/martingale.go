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
	"math"
)

// StateChangeObserver is notified whenever an update changes the state of a sketch.
type StateChangeObserver interface {
	// StateChanged is called with the amount by which the state change probability of
	// the sketch decreased. It is called only if the state changed.
	StateChanged(probabilityDecrement float64)
}

// MartingaleEstimator tracks the distinct count of a single sketch that is only
// ever updated with elements, never merged or downsized, by observing its state
// changes. Its estimate is more accurate than the maximum-likelihood estimate.
//
// The estimator must observe every update of the sketch from the moment the sketch
// was created or reset.
type MartingaleEstimator struct {
	distinctCountEstimate  float64
	stateChangeProbability float64
}

// NewMartingaleEstimator returns an estimator for an empty sketch.
func NewMartingaleEstimator() *MartingaleEstimator {
	m := &MartingaleEstimator{}
	m.Reset()
	return m
}

// NewMartingaleEstimatorWithState returns an estimator initialized with the given
// estimate and state change probability.
func NewMartingaleEstimatorWithState(distinctCountEstimate, stateChangeProbability float64) (*MartingaleEstimator, error) {
	m := &MartingaleEstimator{}
	if err := m.Set(distinctCountEstimate, stateChangeProbability); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset puts the estimator back into the state matching an empty sketch.
func (m *MartingaleEstimator) Reset() {
	m.distinctCountEstimate = 0
	m.stateChangeProbability = 1
}

// Set overwrites the state of the estimator. The estimate must be non-negative and
// the probability must be in [0, 1]. On error the estimator is not modified.
func (m *MartingaleEstimator) Set(distinctCountEstimate, stateChangeProbability float64) error {
	if !(distinctCountEstimate >= 0) {
		return fmt.Errorf("%w: distinct count estimate must be non-negative: %v", ErrInvalidArgument, distinctCountEstimate)
	}
	if !(stateChangeProbability >= 0 && stateChangeProbability <= 1) {
		return fmt.Errorf("%w: state change probability must be in [0, 1]: %v", ErrInvalidArgument, stateChangeProbability)
	}
	m.distinctCountEstimate = distinctCountEstimate
	// -0 would yield a negative infinite estimate on the next state change
	if stateChangeProbability <= 0 {
		stateChangeProbability = 0
	}
	m.stateChangeProbability = stateChangeProbability
	return nil
}

// GetDistinctCountEstimate returns the current estimate.
func (m *MartingaleEstimator) GetDistinctCountEstimate() float64 {
	return m.distinctCountEstimate
}

// GetStateChangeProbability returns the probability that the next distinct element
// changes the state of the observed sketch.
func (m *MartingaleEstimator) GetStateChangeProbability() float64 {
	return m.stateChangeProbability
}

func (m *MartingaleEstimator) StateChanged(probabilityDecrement float64) {
	m.distinctCountEstimate += 1 / m.stateChangeProbability
	m.stateChangeProbability -= probabilityDecrement
	// rounding errors can make it negative, the next change then yields +Inf
	if m.stateChangeProbability <= 0 {
		m.stateChangeProbability = 0
	}
}

// GetLowerBound returns the approximate lower error bound of the estimate given the
// specified number of standard deviations, for the configuration of the observed
// sketch.
//
//   - numStdDev, this must be an integer between 1 and 3, inclusive.
func (m *MartingaleEstimator) GetLowerBound(sketch *ExaLogLog, numStdDev int) (float64, error) {
	relErr, err := martingaleRelErr(sketch, numStdDev)
	if err != nil {
		return 0, err
	}
	return lowerBound(m.distinctCountEstimate, relErr), nil
}

// GetUpperBound returns the approximate upper error bound of the estimate given the
// specified number of standard deviations, for the configuration of the observed
// sketch.
//
//   - numStdDev, this must be an integer between 1 and 3, inclusive.
func (m *MartingaleEstimator) GetUpperBound(sketch *ExaLogLog, numStdDev int) (float64, error) {
	relErr, err := martingaleRelErr(sketch, numStdDev)
	if err != nil {
		return 0, err
	}
	return upperBound(m.distinctCountEstimate, relErr), nil
}

func martingaleRelErr(sketch *ExaLogLog, numStdDev int) (float64, error) {
	if sketch == nil {
		return 0, fmt.Errorf("%w: sketch", ErrNilArgument)
	}
	if err := checkNumStdDev(numStdDev); err != nil {
		return 0, err
	}
	rse := martingaleRelativeStandardErrorConstants[sketch.t][sketch.d]
	return float64(numStdDev) * rse / math.Sqrt(float64(sketch.registerCount())), nil
}

func (m *MartingaleEstimator) String() string {
	return fmt.Sprintf("MartingaleEstimator{distinctCountEstimate=%v, stateChangeProbability=%v}",
		m.distinctCountEstimate, m.stateChangeProbability)
}
