package cuckoo

import (
	"testing"

	"github.com/lukius/advstruct/randsrc"
	"github.com/lukius/advstruct/uhash"
)

func TestIntKeyInRange(t *testing.T) {
	f := uhash.New(128, randsrc.New())
	var h IntKey[uint32]
	for k := uint32(0); k < 500; k++ {
		if got := h.Hash(k, f); got >= 128 {
			t.Errorf("IntKey.Hash(%d) = %d, want < 128", k, got)
		}
	}
}

func TestStringKeyInRange(t *testing.T) {
	f := uhash.New(64, randsrc.New())
	var h StringKey
	for _, s := range []string{"a", "ab", "abc", "", "cuckoo", "x-fast-trie"} {
		if got := h.Hash(s, f); got >= 64 {
			t.Errorf("StringKey.Hash(%q) = %d, want < 64", s, got)
		}
	}
}
