// Package kdtree partitions scene objects into an axis-aligned k-d tree for
// nearest-hit queries.
package kdtree

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// NoLeaf marks a missing node index
const NoLeaf = -1

// containmentScale sizes the tolerance used when testing whether a hit point
// lies inside a node box, relative to the root box diagonal
const containmentScale = 1e-7

// Options controls tree construction
type Options struct {
	MaxDepth   int // Depth at which a node always becomes a leaf
	MaxObjects int // Object count at or below which a node becomes a leaf
}

// DefaultOptions returns the construction limits used by the renderer
func DefaultOptions() Options {
	return Options{MaxDepth: 16, MaxObjects: 4}
}

// Node is one cell of the partition. Nodes live in the tree's arena and refer
// to each other by index.
type Node struct {
	box     core.AABB
	parent  int
	smaller int // Child below the cut, NoLeaf for leaves
	greater int // Child above the cut, NoLeaf for leaves
	axis    int
	cut     float64
	depth   int
	objects []geometry.Object
}

// Box returns the node's region of space
func (n *Node) Box() core.AABB {
	return n.box
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return n.smaller == NoLeaf
}

// Objects returns the objects referenced by a leaf
func (n *Node) Objects() []geometry.Object {
	return n.objects
}

// Parent returns the parent index, NoLeaf for the root
func (n *Node) Parent() int {
	return n.parent
}

// Depth returns the distance from the root
func (n *Node) Depth() int {
	return n.depth
}

// Tree is an immutable k-d tree. It is safe for concurrent queries.
type Tree struct {
	nodes  []Node
	leaves []int
	eps    float64
	opts   Options
}

// Build partitions objects into a tree.
// Each level splits at the median object center along axis depth mod 3, or
// the next axis that separates at least one object. Objects whose bounds
// straddle the cut are referenced by both children.
func Build(objects []geometry.Object, opts Options) *Tree {
	t := &Tree{opts: opts}

	root := core.EmptyAABB()
	for _, object := range objects {
		root = root.Union(object.BoundingBox())
	}
	if len(objects) == 0 {
		root = core.NewAABB(core.Vec3{}, core.Vec3{})
	}
	t.eps = containmentScale * max(1.0, root.Size().Length())

	t.build(root, objects, NoLeaf, 0)
	return t
}

// build appends a node for objects and returns its index
func (t *Tree) build(box core.AABB, objects []geometry.Object, parent, depth int) int {
	index := len(t.nodes)
	t.nodes = append(t.nodes, Node{
		box:     box,
		parent:  parent,
		smaller: NoLeaf,
		greater: NoLeaf,
		depth:   depth,
	})

	if len(objects) <= t.opts.MaxObjects || depth >= t.opts.MaxDepth {
		t.makeLeaf(index, objects)
		return index
	}

	// Start from axis depth mod 3 and fall through to the other axes when
	// every object straddles the cut
	var (
		axis             int
		cut              float64
		smaller, greater []geometry.Object
		ok               bool
	)
	for i := 0; i < 3 && !ok; i++ {
		axis = (depth + i) % 3
		cut = medianCenter(objects, axis)
		smaller, greater = partition(objects, axis, cut)
		ok = len(smaller) < len(objects) || len(greater) < len(objects)
	}
	if !ok {
		t.makeLeaf(index, objects)
		return index
	}

	smallerBox, greaterBox := box.Split(axis, cut)
	smallerIndex := t.build(smallerBox, smaller, index, depth+1)
	greaterIndex := t.build(greaterBox, greater, index, depth+1)

	node := &t.nodes[index]
	node.axis = axis
	node.cut = cut
	node.smaller = smallerIndex
	node.greater = greaterIndex
	return index
}

func (t *Tree) makeLeaf(index int, objects []geometry.Object) {
	t.nodes[index].objects = objects
	t.leaves = append(t.leaves, index)
}

// partition sorts objects to the sides of the plane axis=cut. Objects whose
// bounds touch the plane go to both sides.
func partition(objects []geometry.Object, axis int, cut float64) (smaller, greater []geometry.Object) {
	for _, object := range objects {
		bbox := object.BoundingBox()
		if bbox.Min.Component(axis) <= cut {
			smaller = append(smaller, object)
		}
		if bbox.Max.Component(axis) >= cut {
			greater = append(greater, object)
		}
	}
	return smaller, greater
}

// medianCenter returns the median object center coordinate along axis
func medianCenter(objects []geometry.Object, axis int) float64 {
	values := make([]float64, len(objects))
	for i, object := range objects {
		values[i] = object.Center().Component(axis)
	}
	sort.Float64s(values)
	return values[len(values)/2]
}

// Root returns the index of the root node
func (t *Tree) Root() int {
	return 0
}

// Node returns the node at index
func (t *Tree) Node(index int) *Node {
	return &t.nodes[index]
}

// Len returns the number of nodes
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the indices of all leaves
func (t *Tree) Leaves() []int {
	return t.leaves
}

// LeafContaining descends from the root to the leaf whose box holds p.
// Returns NoLeaf when p is outside the root box.
func (t *Tree) LeafContaining(p core.Vec3) int {
	if !t.nodes[0].box.Contains(p, t.eps) {
		return NoLeaf
	}
	index := 0
	for !t.nodes[index].IsLeaf() {
		node := &t.nodes[index]
		if p.Component(node.axis) <= node.cut {
			index = node.smaller
		} else {
			index = node.greater
		}
	}
	return index
}

// Contains reports whether p lies inside the box of node index
func (t *Tree) Contains(index int, p core.Vec3) bool {
	return t.nodes[index].box.Contains(p, t.eps)
}
