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
	"encoding/binary"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/murmur3"

	"github.com/distinctcount/exaloglog-go/internal"
)

func newTestUpdater(t *testing.T, opts ...UpdaterOption) *Updater {
	sketch, err := NewExaLogLog(2, 20, 8)
	require.NoError(t, err)
	updater, err := NewUpdater(sketch, opts...)
	require.NoError(t, err)
	return updater
}

func TestUpdaterErrors(t *testing.T) {
	_, err := NewUpdater(nil)
	assert.ErrorIs(t, err, ErrNilArgument)
	sketch, _ := NewExaLogLogWithDefault()
	_, err = NewUpdater(sketch, WithHashFunction(nil))
	assert.ErrorIs(t, err, ErrNilArgument)
}

func TestUpdaterDefaultHash(t *testing.T) {
	updater := newTestUpdater(t)
	expected := newSketch(t, 2, 20, 8, nil)
	var buf [8]byte
	for i := uint64(0); i < 1000; i++ {
		updater.UpdateUInt64(i)
		binary.LittleEndian.PutUint64(buf[:], i)
		expected.Add(murmur3.SeedSum64(internal.DEFAULT_UPDATE_SEED, buf[:]))
	}
	assertSameState(t, expected, updater.Sketch())
	assert.InEpsilon(t, 1000, updater.Sketch().GetDistinctCountEstimate(), 0.1)
}

func TestUpdaterHashFunctions(t *testing.T) {
	data := []byte("exaloglog")
	hashes := []uint64{
		HashMurmur3(data, internal.DEFAULT_UPDATE_SEED),
		HashXXHash64(data, internal.DEFAULT_UPDATE_SEED),
		HashMetro64(data, internal.DEFAULT_UPDATE_SEED),
	}
	assert.NotEqual(t, hashes[0], hashes[1])
	assert.NotEqual(t, hashes[0], hashes[2])
	assert.NotEqual(t, hashes[1], hashes[2])
	for _, hash := range []HashFunction{HashMurmur3, HashXXHash64, HashMetro64} {
		assert.Equal(t, hash(data, 1), hash(data, 1))
		assert.NotEqual(t, hash(data, 1), hash(data, 2))
	}

	for _, hash := range []HashFunction{HashMurmur3, HashXXHash64, HashMetro64} {
		updater := newTestUpdater(t, WithHashFunction(hash), WithSeed(42))
		expected := newSketch(t, 2, 20, 8, nil)
		for i := 0; i < 1000; i++ {
			s := strconv.Itoa(i)
			updater.UpdateString(s)
			expected.Add(hash([]byte(s), 42))
		}
		assertSameState(t, expected, updater.Sketch())
		assert.InEpsilon(t, 1000, updater.Sketch().GetDistinctCountEstimate(), 0.1)
	}
}

func TestUpdaterSeed(t *testing.T) {
	updater1 := newTestUpdater(t)
	updater2 := newTestUpdater(t, WithSeed(123))
	for i := int64(0); i < 100; i++ {
		updater1.UpdateInt64(i)
		updater2.UpdateInt64(i)
	}
	assert.NotEqual(t, updater1.Sketch().GetState(), updater2.Sketch().GetState())
}

func TestUpdaterEquivalentItems(t *testing.T) {
	updater := newTestUpdater(t)
	updater.UpdateFloat64(0.0)
	zero := updater.Sketch().Copy()
	updater.UpdateFloat64(math.Copysign(0, -1))
	assertSameState(t, zero, updater.Sketch())

	updater.UpdateFloat64(math.NaN())
	nan := updater.Sketch().Copy()
	assert.NotEqual(t, zero.GetState(), nan.GetState())
	updater.UpdateFloat64(math.Float64frombits(0x7ff8000000000001))
	updater.UpdateFloat64(math.Float64frombits(0xfff8000000000000))
	assertSameState(t, nan, updater.Sketch())

	updater.UpdateInt64(-1)
	int64Sketch := updater.Sketch().Copy()
	updater.UpdateUInt64(math.MaxUint64)
	assertSameState(t, int64Sketch, updater.Sketch())

	updater.UpdateString("abc")
	stringSketch := updater.Sketch().Copy()
	updater.UpdateSlice([]byte("abc"))
	assertSameState(t, stringSketch, updater.Sketch())
}

func TestUpdaterIgnoresEmptyItems(t *testing.T) {
	updater := newTestUpdater(t)
	updater.UpdateSlice(nil)
	updater.UpdateSlice([]byte{})
	updater.UpdateString("")
	assert.True(t, updater.Sketch().IsEmpty())
}

func TestUpdaterObserver(t *testing.T) {
	estimator := NewMartingaleEstimator()
	updater := newTestUpdater(t, WithObserver(estimator))
	for i := 0; i < 10000; i++ {
		updater.UpdateString("item" + strconv.Itoa(i%5000))
	}
	assert.Equal(t, updater.Sketch().GetStateChangeProbability(), estimator.GetStateChangeProbability())
	assert.InEpsilon(t, 5000, estimator.GetDistinctCountEstimate(), 0.1)
}
