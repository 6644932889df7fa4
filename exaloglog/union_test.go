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
	"github.com/stretchr/testify/require"
)

func TestUnionEmpty(t *testing.T) {
	union, err := NewUnionWithDefault()
	require.NoError(t, err)
	assert.True(t, union.IsEmpty())
	assert.Zero(t, union.GetDistinctCountEstimate())
	assert.Equal(t, 2, union.GetT())
	assert.Equal(t, 20, union.GetD())
	assert.Equal(t, 12, union.GetP())

	require.NoError(t, union.UpdateSketch(newSketch(t, 2, 20, 12, nil)))
	assert.True(t, union.IsEmpty())
	assert.True(t, union.GetResult().IsEmpty())
}

func TestUnionInvalidParameters(t *testing.T) {
	_, err := NewUnion(2, 20, 1)
	assert.ErrorIs(t, err, ErrInvalidP)
	_, err = NewUnion(25, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidT)
}

func TestUnionEqualsReplay(t *testing.T) {
	rnd := rand.New(rand.NewSource(100))
	union, err := NewUnion(2, 20, 10)
	require.NoError(t, err)
	configs := [][2]int{{20, 10}, {24, 12}, {16, 10}, {20, 8}, {18, 9}}
	var all []uint64
	for _, cfg := range configs {
		hashes := randomHashes(rnd, 2000)
		all = append(all, hashes...)
		sketch := newSketch(t, 2, cfg[0], cfg[1], hashes)
		before := sketch.Copy()
		require.NoError(t, union.UpdateSketch(sketch))
		assertSameState(t, before, sketch)
	}
	extra := randomHashes(rnd, 100)
	for _, h := range extra {
		union.Add(h)
	}
	all = append(all, extra...)

	assert.Equal(t, 16, union.GetD())
	assert.Equal(t, 8, union.GetP())
	expected := newSketch(t, 2, 16, 8, all)
	result := union.GetResult()
	assertSameState(t, expected, result)
	assert.Equal(t, expected.GetDistinctCountEstimate(), union.GetDistinctCountEstimate())

	lower, err := union.GetLowerBound(2)
	require.NoError(t, err)
	upper, err := union.GetUpperBound(2)
	require.NoError(t, err)
	assert.Less(t, lower, union.GetDistinctCountEstimate())
	assert.Greater(t, upper, union.GetDistinctCountEstimate())

	// the result is a copy
	result.Reset()
	assert.False(t, union.IsEmpty())
}

func TestUnionErrors(t *testing.T) {
	union, err := NewUnion(1, 10, 6)
	require.NoError(t, err)
	assert.ErrorIs(t, union.UpdateSketch(nil), ErrNilArgument)
	assert.ErrorIs(t, union.UpdateSketch(newSketch(t, 2, 10, 6, nil)), ErrIncompatibleT)
	_, err = union.GetLowerBound(0)
	assert.ErrorIs(t, err, ErrInvalidNumStdDev)
}

func TestUnionReset(t *testing.T) {
	rnd := rand.New(rand.NewSource(101))
	union, err := NewUnion(2, 20, 10)
	require.NoError(t, err)
	require.NoError(t, union.UpdateSketch(newSketch(t, 2, 12, 6, randomHashes(rnd, 100))))
	assert.Equal(t, 12, union.GetD())
	assert.Equal(t, 6, union.GetP())

	union.Reset()
	assert.True(t, union.IsEmpty())
	assert.Equal(t, 20, union.GetD())
	assert.Equal(t, 10, union.GetP())

	union.Add(rnd.Uint64())
	union.Reset()
	assert.True(t, union.IsEmpty())
	assert.Equal(t, 10, union.GetP())
}
