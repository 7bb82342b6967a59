// Copyright 2024 The Cockroach Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package graveyard is a Go implementation of graveyard hashing, the
// open-addressed, linearly-probed hash table design described in
// https://abseil.io/about/design/swisstables and extended with graveyard
// tombstone-free rehashing as in Abseil's graveyard_raw_hash_set.
//
// # Graveyard hashing
//
// A classic Swiss table marks a deleted slot with a tombstone control byte so
// that a later probe doesn't mistake the gap for "nothing here, stop
// looking". Tombstones accumulate and degrade probe length until a rehash
// clears them. Graveyard hashing avoids the tombstone byte entirely: every
// rehash re-lays-out the live elements in (approximate) hash order, with
// unused slots interleaved as deliberate gaps. A newly inserted element is
// marked disordered, meaning it may not obey the hash-order invariant until
// the next rehash restores it. Each bin carries a search_distance: the
// number of bins, starting at that bin, that must be scanned to be sure a
// key preferring it has been seen. Deletion just clears the control byte to
// empty -- it never creates a tombstone and never touches search_distance.
//
// # Table layout
//
// The backing array is a sequence of bins. Each bin holds a fixed number of
// control bytes (slotsPerBin, 14 by default), a 16-bit search-distance
// header, and that many slots. Control bytes are matched 16-at-a-time with
// SWAR ("SIMD within a register") bit tricks; the physical control region is
// always 16 bytes even when slotsPerBin < 16, with the unused tail
// permanently marked empty.
//
// # Implementation notes relative to the upstream Swiss table
//
// Unlike github.com/cockroachdb/swiss (the implementation this package
// descends from), this package does not use unsafe pointer walks over a
// flat control/slot array; instead each bin's control bytes, header, and
// slots live in their own flat backing slices indexed by bin number, which
// gives the identical contiguous-memory layout the algorithm depends on
// without requiring manual byte-offset arithmetic. Hashing is done with
// hash/maphash instead of reaching into the Go runtime's map hash function,
// since that extraction trick does not survive being ported out of its
// original repository.
package graveyard
