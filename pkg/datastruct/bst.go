package datastruct

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
)

// BST is an unbalanced binary search tree ordered by a comparator.
// Equal elements are stored only once.
// Nodes know their parent, so the tree can be walked in order in both directions without a stack.
type BST[T any] struct {
	al     alloc.Allocator[T]
	cmp    func(a, b T) int
	root   *bstNode[T]
	length int
}

var _ Reversible[any] = (*BST[any])(nil)

type bstNode[T any] struct {
	data   T
	parent *bstNode[T]
	left   *bstNode[T]
	right  *bstNode[T]
}

// NewBST makes an empty tree.
// cmp returns a negative number when a is less than b, zero when they are equal and a positive number otherwise.
func NewBST[T any](al alloc.Allocator[T], cmp func(a, b T) int) *BST[T] {
	return &BST[T]{al: al, cmp: cmp}
}

// FromBST drains the iterator into a new BST.
// Duplicates are kept only once, and their clones are released right away.
func FromBST[T any](al alloc.Allocator[T], cmp func(a, b T) int, it iterators.Iterator[T], clone bool) (*BST[T], error) {
	if cmp == nil {
		if !iterators.IsNil(it) {
			_ = it.Close()
		}
		return nil, iterators.ErrNilFunc
	}
	t := NewBST(al, cmp)
	err := fill("bst", al, it, clone, t.Insert, func() {
		if clone {
			t.Clear()
		}
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Insert puts v into the tree, and reports false when an equal element is already there.
// A rejected element still belongs to the caller.
func (t *BST[T]) Insert(v T) bool {
	var (
		parent *bstNode[T]
		link   = &t.root
	)
	for *link != nil {
		parent = *link
		switch c := t.cmp(v, parent.data); {
		case c < 0:
			link = &parent.left
		case 0 < c:
			link = &parent.right
		default:
			return false
		}
	}
	*link = &bstNode[T]{data: v, parent: parent}
	t.length++
	return true
}

func (t *BST[T]) Has(v T) bool {
	return t.find(v) != nil
}

// Remove takes the element equal to v out of the tree and hands the stored value over to the caller.
func (t *BST[T]) Remove(v T) (T, bool) {
	n := t.find(v)
	if n == nil {
		var zero T
		return zero, false
	}
	switch {
	case n.left == nil:
		t.transplant(n, n.right)
	case n.right == nil:
		t.transplant(n, n.left)
	default:
		succ := minNode(n.right)
		if succ.parent != n {
			t.transplant(succ, succ.right)
			succ.right = n.right
			succ.right.parent = succ
		}
		t.transplant(n, succ)
		succ.left = n.left
		succ.left.parent = succ
	}
	n.parent, n.left, n.right = nil, nil, nil
	t.length--
	return n.data, true
}

func (t *BST[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return minNode(t.root).data, true
}

func (t *BST[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return maxNode(t.root).data, true
}

func (t *BST[T]) Len() int { return t.length }

func (t *BST[T]) Clear() {
	var free func(n *bstNode[T])
	free = func(n *bstNode[T]) {
		if n == nil {
			return
		}
		free(n.left)
		free(n.right)
		release(t.al, n.data)
		n.parent, n.left, n.right = nil, nil, nil
	}
	free(t.root)
	t.root, t.length = nil, 0
}

// Iter walks the elements in ascending order.
func (t *BST[T]) Iter() iterators.Iterator[T] {
	return newNodeIter(t.al, "bst.iter", t.walk())
}

// IterReverse walks the elements in descending order.
func (t *BST[T]) IterReverse() iterators.Iterator[T] {
	return newNodeIter(t.al, "bst.iter", t.walk().reversed())
}

func (t *BST[T]) walk() nodeWalk[T, bstNode[T]] {
	return nodeWalk[T, bstNode[T]]{
		First: func() *bstNode[T] { return minNode(t.root) },
		Last:  func() *bstNode[T] { return maxNode(t.root) },
		Succ:  successor[T],
		Pred:  predecessor[T],
		Value: func(n *bstNode[T]) T { return n.data },
	}
}

func (t *BST[T]) find(v T) *bstNode[T] {
	n := t.root
	for n != nil {
		switch c := t.cmp(v, n.data); {
		case c < 0:
			n = n.left
		case 0 < c:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *BST[T]) transplant(u, v *bstNode[T]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func minNode[T any](n *bstNode[T]) *bstNode[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[T any](n *bstNode[T]) *bstNode[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

func successor[T any](n *bstNode[T]) *bstNode[T] {
	if n.right != nil {
		return minNode(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

func predecessor[T any](n *bstNode[T]) *bstNode[T] {
	if n.left != nil {
		return maxNode(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}
