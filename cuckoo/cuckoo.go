// Copyright (c) 2014 Utkan Güngördü <utkan@freeconsole.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package cuckoo implements a two-table cuckoo hash table with guaranteed
// O(1) worst-case lookup (at most two probes) and expected O(1) insertion,
// following Pagh and Rodler. Unlike bucketized/d-ary variants, each slot
// holds exactly one key, trading some load factor for the two-probe
// lookup bound.
package cuckoo

import (
	"math"

	"github.com/lukius/advstruct/randsrc"
	"github.com/lukius/advstruct/uhash"
)

// entry holds one key/value pair and whether the slot is occupied at all
// (needed since a key's zero value is a valid key).
type entry[K comparable, V any] struct {
	key  K
	val  V
	used bool
}

// Entry is a snapshot element returned by Items.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Table is a map[K]V equivalent backed by two parallel cuckoo tables.
// Like a built-in map, Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	t1, t2   []entry[K, V]
	capacity int
	size     int
	h1, h2   *uhash.Family
	hasher   Hasher[K]
	rng      randsrc.Source
}

// New creates an empty table using the given key adapter.
func New[K comparable, V any](hasher Hasher[K]) *Table[K, V] {
	return NewWithSource[K, V](hasher, randsrc.New())
}

// NewWithSource is like New but lets callers supply the randomness
// provider backing the hash family's reseeding, e.g. a deterministic
// stub in tests that want to disable the automatic reseed.
func NewWithSource[K comparable, V any](hasher Hasher[K], src randsrc.Source) *Table[K, V] {
	return newTableWithCapacity[K, V](initialCapacity, hasher, src)
}

func newTableWithCapacity[K comparable, V any](capacity int, hasher Hasher[K], src randsrc.Source) *Table[K, V] {
	return &Table[K, V]{
		capacity: capacity,
		hasher:   hasher,
		rng:      src,
		h1:       uhash.New(uint64(capacity), src),
		h2:       uhash.New(uint64(capacity), src),
		t1:       make([]entry[K, V], capacity),
		t2:       make([]entry[K, V], capacity),
	}
}

// Len returns the number of stored keys.
func (t *Table[K, V]) Len() int { return t.size }

// IsEmpty reports whether the table holds no keys.
func (t *Table[K, V]) IsEmpty() bool { return t.size == 0 }

// LoadFactor returns size / (2 * capacity).
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(2*t.capacity)
}

func (t *Table[K, V]) maxLoop() int {
	return int(math.Ceil(maxLoopFactor * logBase(float64(t.capacity), 1+epsilon)))
}

func logBase(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}

// locate finds the slot holding key, if any: table is 1 or 2, idx is the
// slot index within that table.
func (t *Table[K, V]) locate(key K) (table, idx int, ok bool) {
	i1 := int(t.hasher.Hash(key, t.h1))
	if t.t1[i1].used && t.t1[i1].key == key {
		return 1, i1, true
	}
	i2 := int(t.hasher.Hash(key, t.h2))
	if t.t2[i2].used && t.t2[i2].key == key {
		return 2, i2, true
	}
	return 0, 0, false
}

// Lookup probes at most two slots: T1[h1(key)], then T2[h2(key)] if the
// key is not in T1.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	table, idx, ok := t.locate(key)
	if !ok {
		var zero V
		return zero, false
	}
	if table == 1 {
		return t.t1[idx].val, true
	}
	return t.t2[idx].val, true
}

// Contains reports whether key is stored.
func (t *Table[K, V]) Contains(key K) bool {
	_, _, ok := t.locate(key)
	return ok
}

// Insert adds key/val. If key is already stored, its value is overwritten
// in place and size does not change.
func (t *Table[K, V]) Insert(key K, val V) {
	if t.overwriteIfPresent(key, val) {
		return
	}

	for {
		// Grow before the load factor would reach maxLoad with the new
		// key in, so the bound holds after every insertion.
		if float64(t.size+1)/float64(2*t.capacity) >= maxLoad {
			t.grow()
		}

		homeless, homelessVal, ok := t.insertNewKey(key, val)
		if ok {
			t.size++
			return
		}

		// MAX_LOOP exceeded: reseed both hash functions and rehash in
		// place (load factor didn't change, so no resize), then retry
		// with the key the eviction walk left without a slot.
		key, val = homeless, homelessVal
		t.rehashInPlace()
	}
}

func (t *Table[K, V]) overwriteIfPresent(key K, val V) bool {
	table, idx, ok := t.locate(key)
	if !ok {
		return false
	}
	if table == 1 {
		t.t1[idx].val = val
	} else {
		t.t2[idx].val = val
	}
	return true
}

// insertNewKey runs the random-walk eviction loop for a key known not to
// be present yet. It returns ok == false if MAX_LOOP iterations are
// exhausted without finding an empty slot, together with the key/value
// that was evicted last and is no longer stored anywhere.
func (t *Table[K, V]) insertNewKey(key K, val V) (K, V, bool) {
	x, xv := key, val
	for i := 0; i < t.maxLoop(); i++ {
		idx1 := int(t.hasher.Hash(x, t.h1))
		if !t.t1[idx1].used {
			t.t1[idx1] = entry[K, V]{key: x, val: xv, used: true}
			return x, xv, true
		}
		evicted := t.t1[idx1]
		t.t1[idx1] = entry[K, V]{key: x, val: xv, used: true}
		x, xv = evicted.key, evicted.val

		idx2 := int(t.hasher.Hash(x, t.h2))
		if !t.t2[idx2].used {
			t.t2[idx2] = entry[K, V]{key: x, val: xv, used: true}
			return x, xv, true
		}
		evicted = t.t2[idx2]
		t.t2[idx2] = entry[K, V]{key: x, val: xv, used: true}
		x, xv = evicted.key, evicted.val
	}
	return x, xv, false
}

// Remove deletes key if present; size decrements iff something was
// removed.
func (t *Table[K, V]) Remove(key K) {
	table, idx, ok := t.locate(key)
	if !ok {
		return
	}
	if table == 1 {
		t.t1[idx] = entry[K, V]{}
	} else {
		t.t2[idx] = entry[K, V]{}
	}
	t.size--
}

// Items returns an unordered snapshot of the stored keys and values.
func (t *Table[K, V]) Items() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.size)
	for _, e := range t.t1 {
		if e.used {
			out = append(out, Entry[K, V]{Key: e.key, Value: e.val})
		}
	}
	for _, e := range t.t2 {
		if e.used {
			out = append(out, Entry[K, V]{Key: e.key, Value: e.val})
		}
	}
	return out
}

// grow doubles capacity and rebuilds the table from scratch.
func (t *Table[K, V]) grow() {
	t.rebuild(t.capacity * 2)
}

// rehashInPlace reseeds both hash functions and rebuilds at the same
// capacity, since the load factor hasn't changed.
func (t *Table[K, V]) rehashInPlace() {
	t.rebuild(t.capacity)
}

// rebuild allocates a fresh table of the given capacity with newly-seeded
// hash functions and reinserts every live key through the ordinary Insert
// path, mirroring the source's "build a new table, insert every key,
// swap it in" rehash/grow strategy.
func (t *Table[K, V]) rebuild(capacity int) {
	items := t.Items()
	nt := newTableWithCapacity[K, V](capacity, t.hasher, t.rng)
	for _, it := range items {
		nt.Insert(it.Key, it.Value)
	}
	*t = *nt
}

// Clone returns a deep, independent copy of the table with capacity
// preserved.
func (t *Table[K, V]) Clone() *Table[K, V] {
	nt := newTableWithCapacity[K, V](t.capacity, t.hasher, t.rng)
	for _, it := range t.Items() {
		nt.Insert(it.Key, it.Value)
	}
	return nt
}
