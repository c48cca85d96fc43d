package core

import (
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"parallel outside", NewRay(NewVec3(2, 0, 5), NewVec3(0, 0, -1)), false},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0.5, 5), NewVec3(0, 0, -1)), true},
		{"diagonal", NewRay(NewVec3(-3, -3, -3), NewVec3(1, 1, 1)), true},
		{"diagonal miss", NewRay(NewVec3(-3, 3, -3), NewVec3(1, 1, 1)), false},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0, 1e9); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_Split(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(4, 2, 2))
	smaller, greater := box.Split(0, 1)

	if smaller.Max.X != 1 || smaller.Min.X != 0 {
		t.Errorf("Unexpected smaller half %v", smaller)
	}
	if greater.Min.X != 1 || greater.Max.X != 4 {
		t.Errorf("Unexpected greater half %v", greater)
	}
	if smaller.Max.Y != 2 || greater.Min.Y != 0 {
		t.Error("Split should not change other axes")
	}
	if box.Max.X != 4 {
		t.Error("Split should not modify the original box")
	}
}

func TestAABB_ContainsAndOverlaps(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	if !box.Contains(NewVec3(1, 1, 1), 0) {
		t.Error("corner should be contained")
	}
	if box.Contains(NewVec3(1.1, 0.5, 0.5), 0) {
		t.Error("outside point should not be contained")
	}
	if !box.Contains(NewVec3(1.1, 0.5, 0.5), 0.2) {
		t.Error("point within eps should be contained")
	}

	touching := NewAABB(NewVec3(1, 0, 0), NewVec3(2, 1, 1))
	if !box.Overlaps(touching) {
		t.Error("touching boxes should overlap")
	}
	apart := NewAABB(NewVec3(1.5, 0, 0), NewVec3(2, 1, 1))
	if box.Overlaps(apart) {
		t.Error("separated boxes should not overlap")
	}
}

func TestAABB_UnionWithEmpty(t *testing.T) {
	box := NewAABB(NewVec3(-1, 2, 3), NewVec3(4, 5, 6))
	u := EmptyAABB().Union(box)
	if u.Min != box.Min || u.Max != box.Max {
		t.Errorf("Union with empty box should be identity, got %v", u)
	}
}
