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

	"github.com/distinctcount/exaloglog-go/internal"
)

const (
	// tokenParameter is the number of hash bits kept by a 32-bit token besides the
	// 6-bit leading zero count.
	tokenParameter = 26

	minP = 2
	maxT = tokenParameter - minP

	defaultT = 2
	defaultD = 20
	defaultP = 12
)

// GetMinP returns the smallest admissible precision parameter.
func GetMinP() int {
	return minP
}

// GetMaxT returns the largest admissible t-parameter.
func GetMaxT() int {
	return maxT
}

// GetMaxP returns the largest admissible precision parameter for the given t.
func GetMaxP(t int) (int, error) {
	if err := checkT(t); err != nil {
		return 0, err
	}
	return tokenParameter - t, nil
}

// GetMaxD returns the largest admissible d-parameter for the given t, such that a
// register fits into 64 bits.
func GetMaxD(t int) (int, error) {
	if err := checkT(t); err != nil {
		return 0, err
	}
	return maxD(t), nil
}

// GetStateSizeBytes returns the length of the state of a sketch with the given
// parameters.
func GetStateSizeBytes(t, d, p int) (int, error) {
	if err := checkParameters(t, d, p); err != nil {
		return 0, err
	}
	return stateSizeBytes(t, d, p), nil
}

func maxD(t int) int {
	return 64 - 6 - t
}

func registerBitSize(t, d int) int {
	return 6 + t + d
}

func stateSizeBytes(t, d, p int) int {
	return int(internal.WholeBytesToHoldBits(uint64(registerBitSize(t, d)) << p))
}

func checkT(t int) error {
	if !internal.InRange(t, 0, maxT) {
		return fmt.Errorf("%w: %d", ErrInvalidT, t)
	}
	return nil
}

// checkD assumes a valid t.
func checkD(t, d int) error {
	if !internal.InRange(d, 0, maxD(t)) {
		return fmt.Errorf("%w: %d", ErrInvalidD, d)
	}
	return nil
}

// checkP assumes a valid t.
func checkP(t, p int) error {
	if !internal.InRange(p, minP, tokenParameter-t) {
		return fmt.Errorf("%w: %d", ErrInvalidP, p)
	}
	return nil
}

func checkParameters(t, d, p int) error {
	if err := checkT(t); err != nil {
		return err
	}
	if err := checkD(t, d); err != nil {
		return err
	}
	return checkP(t, p)
}

func checkNumStdDev(numStdDev int) error {
	if numStdDev < 1 || numStdDev > 3 {
		return fmt.Errorf("%w: %d", ErrInvalidNumStdDev, numStdDev)
	}
	return nil
}
