package xfast

// node is a trie node. children holds the owning left (0) and right (1)
// edges. pred/succ are non-owning descendant pointers, meaningful only
// when the corresponding child is absent: pred points at the leaf
// holding the largest value in a missing right subtree's sibling... more
// precisely, per the invariant, a node missing its left child has succ
// pointing at the smallest leaf in its right subtree, and a node missing
// its right child has pred pointing at the largest leaf in its left
// subtree. prev/next thread the sorted leaf list and are meaningful only
// on leaves.
type node struct {
	children [2]*node
	pred     *node
	succ     *node
	prev     *node
	next     *node
	value    uint64
	isLeaf   bool
}
