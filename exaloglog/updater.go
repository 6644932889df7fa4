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
	"fmt"
	"math"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-metro"
	"github.com/twmb/murmur3"

	"github.com/distinctcount/exaloglog-go/internal"
)

// HashFunction computes a 64-bit hash of the given bytes with the given seed.
type HashFunction func(data []byte, seed uint64) uint64

// HashMurmur3 is the 64-bit MurmurHash3 (x64 128-bit variant, first half). It is the
// default hash function of Updater.
func HashMurmur3(data []byte, seed uint64) uint64 {
	return murmur3.SeedSum64(seed, data)
}

// HashXXHash64 is the 64-bit xxHash.
func HashXXHash64(data []byte, seed uint64) uint64 {
	h := xxhash.NewWithSeed(seed)
	h.Write(data)
	return h.Sum64()
}

// HashMetro64 is the 64-bit MetroHash.
func HashMetro64(data []byte, seed uint64) uint64 {
	return metro.Hash64(data, seed)
}

type updaterOptions struct {
	seed     uint64
	hash     HashFunction
	observer StateChangeObserver
}

// UpdaterOption is a functional option for configuring an Updater.
type UpdaterOption func(*updaterOptions)

// WithSeed sets a custom seed for the hash function.
func WithSeed(seed uint64) UpdaterOption {
	return func(opts *updaterOptions) {
		opts.seed = seed
	}
}

// WithHashFunction replaces the default hash function.
func WithHashFunction(hash HashFunction) UpdaterOption {
	return func(opts *updaterOptions) {
		opts.hash = hash
	}
}

// WithObserver attaches an observer, typically a MartingaleEstimator, that is
// notified about every state change caused by the updater.
func WithObserver(observer StateChangeObserver) UpdaterOption {
	return func(opts *updaterOptions) {
		opts.observer = observer
	}
}

// Updater hashes raw items and adds them to a sketch. Items that hash to the same
// value are counted once, so the same hash function and seed must be used for all
// sketches that are merged later.
type Updater struct {
	sketch   *ExaLogLog
	seed     uint64
	hash     HashFunction
	observer StateChangeObserver
	scratch  [8]byte
}

// NewUpdater returns an updater feeding the given sketch.
//
//   - opts, optional configuration (seed, hash function, observer)
func NewUpdater(sketch *ExaLogLog, opts ...UpdaterOption) (*Updater, error) {
	if sketch == nil {
		return nil, fmt.Errorf("%w: sketch", ErrNilArgument)
	}
	options := &updaterOptions{
		seed: internal.DEFAULT_UPDATE_SEED,
		hash: HashMurmur3,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.hash == nil {
		return nil, fmt.Errorf("%w: hash function", ErrNilArgument)
	}
	return &Updater{
		sketch:   sketch,
		seed:     options.seed,
		hash:     options.hash,
		observer: options.observer,
	}, nil
}

// Sketch returns the sketch fed by this updater.
func (u *Updater) Sketch() *ExaLogLog {
	return u.sketch
}

// UpdateUInt64 presents the given unsigned 64-bit integer as a potential unique item.
func (u *Updater) UpdateUInt64(datum uint64) {
	binary.LittleEndian.PutUint64(u.scratch[:], datum)
	u.addHash(u.hash(u.scratch[:], u.seed))
}

// UpdateInt64 presents the given signed 64-bit integer as a potential unique item.
func (u *Updater) UpdateInt64(datum int64) {
	u.UpdateUInt64(uint64(datum))
}

// UpdateFloat64 presents the given float as a potential unique item. -0.0 and 0.0
// are the same item, and so are all NaNs.
func (u *Updater) UpdateFloat64(datum float64) {
	if datum == 0 {
		datum = 0
	} else if math.IsNaN(datum) {
		u.UpdateUInt64(0x7ff8000000000000)
		return
	}
	u.UpdateUInt64(math.Float64bits(datum))
}

// UpdateSlice presents the given byte slice as a potential unique item. Empty
// slices are ignored.
func (u *Updater) UpdateSlice(datum []byte) {
	if len(datum) == 0 {
		return
	}
	u.addHash(u.hash(datum, u.seed))
}

// UpdateString presents the given string as a potential unique item. Empty strings
// are ignored.
func (u *Updater) UpdateString(datum string) {
	// get a slice to the string data (avoiding a copy to heap)
	u.UpdateSlice(unsafe.Slice(unsafe.StringData(datum), len(datum)))
}

func (u *Updater) addHash(hash uint64) {
	u.sketch.AddWithObserver(hash, u.observer)
}
