package xfast

import "github.com/lukius/advstruct/cuckoo"

// Clone returns a deep, independent copy of the trie.
//
// The trie mixes owning child edges with non-owning back-references
// (pred/succ, prev/next), so a naive recursive copy can't translate
// those references as it goes (the target node may not exist yet).
// Instead this runs in three phases: clone every node and record an
// old-to-new mapping, walk the new trie translating every back-reference
// through that mapping, then rebuild each level's hash table from the
// source's entries with node pointers translated the same way.
func (t *Trie) Clone() *Trie {
	nt := &Trie{universe: t.universe, n: t.n}

	nodeMap := make(map[*node]*node)
	nt.root = cloneNode(t.root, nodeMap)
	updateBackReferences(nt.root, nodeMap)

	nt.levels = make([]*cuckoo.Table[uint64, *node], len(t.levels))
	for i, lvl := range t.levels {
		nt.levels[i] = cuckoo.New[uint64, *node](cuckoo.IntKey[uint64]{})
		for _, e := range lvl.Items() {
			nt.levels[i].Insert(e.Key, nodeMap[e.Value])
		}
	}

	return nt
}

// cloneNode copies the trie structure (owning child edges) depth-first,
// carrying the source's back-references over verbatim as placeholders
// to be translated by updateBackReferences.
func cloneNode(src *node, nodeMap map[*node]*node) *node {
	if src == nil {
		return nil
	}

	nn := &node{
		pred:   src.pred,
		succ:   src.succ,
		prev:   src.prev,
		next:   src.next,
		value:  src.value,
		isLeaf: src.isLeaf,
	}
	nn.children[0] = cloneNode(src.children[0], nodeMap)
	nn.children[1] = cloneNode(src.children[1], nodeMap)

	nodeMap[src] = nn
	return nn
}

// updateBackReferences rewrites every pred/succ/prev/next pointer on the
// already-cloned trie (which still holds source-tree pointers) through
// nodeMap, turning them into pointers within the new trie.
func updateBackReferences(root *node, nodeMap map[*node]*node) {
	stack := []*node{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.children[0] != nil {
			stack = append(stack, cur.children[0])
		}
		if cur.children[1] != nil {
			stack = append(stack, cur.children[1])
		}

		if cur.pred != nil {
			cur.pred = nodeMap[cur.pred]
		}
		if cur.succ != nil {
			cur.succ = nodeMap[cur.succ]
		}
		if cur.prev != nil {
			cur.prev = nodeMap[cur.prev]
		}
		if cur.next != nil {
			cur.next = nodeMap[cur.next]
		}
	}
}
