// Package vecnode implements the 32-ary radix tree that backs the Vector
// core: copy-on-write append (push-tail), indexed get/set, and the
// left/right pruning algorithms behind Vector.FirstN/Vector.LastN.
//
// A Node is either a leaf (Values populated, always length 32, some
// slots possibly the zero value) or an interior node (Children
// populated, length 1..32). Depth is a multiple of 5; depth 0 addresses
// a leaf directly.
//
// The shape mirrors gaissmai/bart's bartnode.go / fastnode.go: every
// mutator clones only the nodes on the path it touches and leaves
// untouched subtrees shared with the previous version.
package vecnode

// Node is one level of the 32-ary tree.
type Node[E any] struct {
	Children []*Node[E] // interior node: 1..32 children
	Values   []E        // leaf node: exactly 32 slots
}

// NewLeaf builds a 32-slot leaf from vals (copied, padded with zero values).
func NewLeaf[E any](vals []E) *Node[E] {
	v := make([]E, 32)
	copy(v, vals)
	return &Node[E]{Values: v}
}

// CloneLeaf returns a shallow copy of a leaf's backing array.
func (n *Node[E]) CloneLeaf() *Node[E] {
	v := make([]E, len(n.Values))
	copy(v, n.Values)
	return &Node[E]{Values: v}
}

// CloneInterior returns a shallow copy of an interior node's child slice.
// The children themselves are shared, not cloned.
func (n *Node[E]) CloneInterior() *Node[E] {
	c := make([]*Node[E], len(n.Children))
	copy(c, n.Children)
	return &Node[E]{Children: c}
}

// NewPath builds a chain of single-child interior nodes of the given
// depth terminating in tail as a leaf.
func NewPath[E any](depth int, tail []E) *Node[E] {
	if depth == 0 {
		return NewLeaf(tail)
	}
	return &Node[E]{Children: []*Node[E]{NewPath[E](depth-5, tail)}}
}

// Get walks from root (at depth) down to the leaf holding index and
// returns the stored element.
func Get[E any](root *Node[E], depth, index int) E {
	for depth > 0 {
		root = root.Children[(index>>uint(depth))&31]
		depth -= 5
	}
	return root.Values[index&31]
}

// LeafBlock returns the full 32-element leaf array containing index,
// for batched iteration.
func LeafBlock[E any](root *Node[E], depth, index int) []E {
	for depth > 0 {
		root = root.Children[(index>>uint(depth))&31]
		depth -= 5
	}
	return root.Values
}

// SetClone clones every node on the path to index and writes val there,
// returning the new root. Untouched siblings are shared with root.
func SetClone[E any](root *Node[E], depth, index int, val E) *Node[E] {
	if depth == 0 {
		cloned := root.CloneLeaf()
		cloned.Values[index&31] = val
		return cloned
	}
	idx := (index >> uint(depth)) & 31
	cloned := root.CloneInterior()
	cloned.Children[idx] = SetClone(cloned.Children[idx], depth-5, index, val)
	return cloned
}

// PushTail flushes a full 32-element tail into the tree, growing the
// tree's depth when it is already full. totalSize is the Vector's real
// size before the tail-driven append. Returns the new root and depth.
func PushTail[E any](root *Node[E], totalSize, depth int, tail []E) (*Node[E], int) {
	if root == nil {
		return NewLeaf(tail), 0
	}
	if (totalSize >> 5) > (1 << uint(depth)) {
		newRoot := &Node[E]{Children: []*Node[E]{root, NewPath[E](depth, tail)}}
		return newRoot, depth + 5
	}
	return pushTailRec(root, depth, totalSize, tail), depth
}

func pushTailRec[E any](node *Node[E], shift, totalSize int, tail []E) *Node[E] {
	cloned := node.CloneInterior()
	subIdx := ((totalSize - 1) >> uint(shift)) & 31

	if shift == 5 {
		leaf := NewLeaf(tail)
		if subIdx == len(cloned.Children) {
			cloned.Children = append(cloned.Children, leaf)
		} else {
			cloned.Children[subIdx] = leaf
		}
		return cloned
	}

	if subIdx == len(cloned.Children) {
		cloned.Children = append(cloned.Children, NewPath[E](shift-5, tail))
	} else {
		cloned.Children[subIdx] = pushTailRec(cloned.Children[subIdx], shift-5, totalSize, tail)
	}
	return cloned
}

// PruneRight implements the first(n) right-prune: it keeps real indices
// [0, cutIndex] of the tree and returns the reduced root/depth plus the
// slice that becomes the Vector's new tail (the former rightmost leaf).
func PruneRight[E any](root *Node[E], depth, cutIndex int) (newRoot *Node[E], newDepth int, tail []E) {
	return pruneRightRec(root, depth, cutIndex, true)
}

func pruneRightRec[E any](node *Node[E], depth, index int, leftEdge bool) (*Node[E], int, []E) {
	if depth == 0 {
		n := (index & 31) + 1
		tail := append([]E(nil), node.Values[:n]...)
		return nil, 0, tail
	}

	nodeIndex := (index >> uint(depth)) & 31
	childLeftEdge := leftEdge && nodeIndex == 0
	childNode, childDepth, tail := pruneRightRec(node.Children[nodeIndex], depth-5, index, childLeftEdge)

	if leftEdge && nodeIndex == 0 {
		// this node contributes nothing beyond its single live child: elide it.
		return childNode, childDepth, tail
	}
	if childNode == nil && nodeIndex == 0 {
		// the one child this node had left also fully drained into the tail.
		return nil, 0, tail
	}

	newChildren := make([]*Node[E], 0, nodeIndex+1)
	newChildren = append(newChildren, node.Children[:nodeIndex]...)
	if childNode != nil {
		newChildren = append(newChildren, childNode)
	}
	return &Node[E]{Children: newChildren}, depth, tail
}

// PruneLeft implements the last(n) left-prune: it keeps real indices
// [newOffset, treeSize) of the tree and returns the reduced root/depth
// plus the accumulated offset of nulled-out leading slots.
func PruneLeft[E any](root *Node[E], depth, newOffset int) (newRoot *Node[E], newDepth, offset int) {
	return pruneLeftRec(root, depth, newOffset, true)
}

func pruneLeftRec[E any](node *Node[E], depth, newOffset int, rightEdge bool) (*Node[E], int, int) {
	if depth == 0 {
		local := newOffset & 31
		if local == 0 {
			return node, 0, 0
		}
		cloned := node.CloneLeaf()
		var zero E
		for i := range local {
			cloned.Values[i] = zero
		}
		return cloned, 0, local
	}

	lastSlot := len(node.Children) - 1
	nodeIndex := (newOffset >> uint(depth)) & 31
	childRightEdge := rightEdge && nodeIndex == lastSlot

	childNode, childDepth, childOffset := pruneLeftRec(node.Children[nodeIndex], depth-5, newOffset, childRightEdge)

	if rightEdge && nodeIndex == lastSlot {
		// redundant: this node's only relevant content is the recursed child.
		return childNode, childDepth, childOffset
	}

	if rightEdge {
		// safe to reslice: nothing beyond this node's array exists anywhere.
		newChildren := append([]*Node[E](nil), node.Children[nodeIndex:]...)
		newChildren[0] = childNode
		return &Node[E]{Children: newChildren}, depth, childOffset
	}

	if nodeIndex == 0 && childNode == node.Children[0] {
		return node, depth, childOffset
	}

	cloned := make([]*Node[E], len(node.Children))
	copy(cloned, node.Children)
	for i := range nodeIndex {
		cloned[i] = nil
	}
	cloned[nodeIndex] = childNode
	return &Node[E]{Children: cloned}, depth, nodeIndex*(1<<uint(depth)) + childOffset
}
