// Copyright (c) 2014-2015 Utkan Güngördü <utkan@freeconsole.org>
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

package cuckoo

import (
	"golang.org/x/exp/constraints"

	"github.com/lukius/advstruct/uhash"
)

// Hasher adapts a key type to the universal hash family: it turns a key
// into a slot index under the given Family. Tables take one Hasher per
// instance and apply it with two independently-seeded Families to get
// h1 and h2.
type Hasher[K comparable] interface {
	Hash(key K, f *uhash.Family) uint64
}

// IntKey is the default adapter for any integer-like key type.
type IntKey[K constraints.Integer] struct{}

func (IntKey[K]) Hash(key K, f *uhash.Family) uint64 {
	return f.HashUint(uint64(key))
}

// StringKey is the default adapter for string (byte-string) keys, using
// H's byte-folding form. Go slices aren't comparable, so []byte keys
// belong in a Table[string, V] via string(b) the way they'd go in a
// built-in map.
type StringKey struct{}

func (StringKey) Hash(key string, f *uhash.Family) uint64 {
	return f.HashBytes([]byte(key))
}
