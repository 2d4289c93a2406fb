// Package uhash implements the 2-universal hash family (H) that backs the
// cuckoo hash table: three tabulated multiply-shift hashes combined by xor
// and reduced into a target range, with cheap reseeding on demand.
package uhash

import "github.com/lukius/advstruct/randsrc"

// Family is one instance of H, parameterized by a target range w (outputs
// lie in [0, w)). Two independently-seeded Families act as independent
// hash functions, which is all a cuckoo table needs from h1 and h2.
type Family struct {
	w          uint64
	q          uint
	a1, a2, a3 uint64
	src        randsrc.Source
}

// New creates a hash family with range [0, w) and seeds it.
//
// Design note: the source this was ported from carries two inconsistent
// reduction formulas (q derived from an unrelated random sample vs. q
// derived from w directly). This implementation picks the latter: q is
// fixed at 64 minus the bit-length of w-1, so `(a*key) >> q` already lands
// close to [0, w) before the final modulo reduction evens out the bits
// that spill past a power of two.
func New(w uint64, src randsrc.Source) *Family {
	if w == 0 {
		w = 1
	}
	f := &Family{w: w, q: shiftFor(w), src: src}
	f.Update()
	return f
}

func shiftFor(w uint64) uint {
	bits := uint(0)
	for v := w - 1; v > 0; v >>= 1 {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	return 64 - bits
}

// Update resamples a1, a2, a3 as independent odd values. Called on cuckoo
// insertion-cycle failure to reseed the hash functions in place.
func (f *Family) Update() {
	f.a1 = f.randOdd()
	f.a2 = f.randOdd()
	f.a3 = f.randOdd()
}

func (f *Family) randOdd() uint64 {
	v := f.src.Uint64() | 1
	return v
}

func (f *Family) hashWith(a, key uint64) uint64 {
	return (a * key) >> f.q
}

// HashUint computes H(key) for an unsigned integer key, in [0, w).
func (f *Family) HashUint(key uint64) uint64 {
	h1 := f.hashWith(f.a1, key)
	h2 := f.hashWith(f.a2, key)
	h3 := f.hashWith(f.a3, key)
	return (h1 ^ h2 ^ h3) % f.w
}

// HashBytes folds a byte string by summing the per-byte integer hash and
// re-hashing the fold. This extension wasn't part of the original
// universal-hash formulation, so it inherits only the uniformity
// property that HashUint has, not a proven collision bound.
func (f *Family) HashBytes(b []byte) uint64 {
	var fold uint64
	for _, c := range b {
		fold += f.HashUint(uint64(c))
	}
	return f.HashUint(fold)
}

// W returns the configured range size.
func (f *Family) W() uint64 { return f.w }
