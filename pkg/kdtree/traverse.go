package kdtree

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Intersection is the result of a nearest-hit query
type Intersection struct {
	Object   geometry.Object // nil on miss
	Distance float64
	Leaf     int // Leaf whose box holds the hit point
}

// Hit reports whether the query found an object
func (i Intersection) Hit() bool {
	return i.Object != nil
}

func miss() Intersection {
	return Intersection{Distance: math.Inf(1), Leaf: NoLeaf}
}

// Forward finds the nearest hit by descending from the root
func (t *Tree) Forward(ray core.Ray) Intersection {
	best := miss()
	if !t.nodes[0].box.Expand(t.eps).Hit(ray, 0, best.Distance) {
		return best
	}
	t.search(0, ray, NoLeaf, &best)
	return best
}

// Backward finds the nearest hit for a ray whose origin lies in leaf.
// It searches the leaf first and widens the search one ancestor at a time,
// stopping once the best hit lies inside the searched region.
func (t *Tree) Backward(ray core.Ray, leaf int) Intersection {
	best := miss()
	if leaf == NoLeaf {
		return t.Forward(ray)
	}

	t.searchLeaf(leaf, ray, &best)
	if best.Hit() && t.Contains(leaf, ray.At(best.Distance)) {
		return best
	}

	from := leaf
	for parent := t.nodes[leaf].parent; parent != NoLeaf; parent = t.nodes[parent].parent {
		t.search(parent, ray, from, &best)
		if best.Hit() && t.Contains(parent, ray.At(best.Distance)) {
			return best
		}
		from = parent
	}
	return best
}

// search visits the subtree at index, skipping the child ignore
func (t *Tree) search(index int, ray core.Ray, ignore int, best *Intersection) {
	node := &t.nodes[index]
	if node.IsLeaf() {
		t.searchLeaf(index, ray, best)
		return
	}

	// Visit the child on the ray origin's side first so the far child can
	// often be pruned by the closer hit
	first, second := node.smaller, node.greater
	if ray.Origin.Component(node.axis) > node.cut {
		first, second = second, first
	}
	for _, child := range [2]int{first, second} {
		if child == ignore {
			continue
		}
		if t.nodes[child].box.Expand(t.eps).Hit(ray, 0, best.Distance) {
			t.search(child, ray, NoLeaf, best)
		}
	}
}

// searchLeaf tests a leaf's objects, accepting only hits inside its box
func (t *Tree) searchLeaf(index int, ray core.Ray, best *Intersection) {
	for _, object := range t.nodes[index].objects {
		distance := object.Intersect(ray)
		if distance <= 0 || distance >= best.Distance {
			continue
		}
		if !t.Contains(index, ray.At(distance)) {
			continue
		}
		best.Object = object
		best.Distance = distance
		best.Leaf = index
	}
}

// BruteForce scans every object and returns the nearest positive hit
func BruteForce(objects []geometry.Object, ray core.Ray) Intersection {
	best := miss()
	for _, object := range objects {
		distance := object.Intersect(ray)
		if distance > 0 && distance < best.Distance {
			best.Object = object
			best.Distance = distance
		}
	}
	return best
}
