package kdtree

// Stats summarizes the shape of a tree
type Stats struct {
	Nodes       int
	Leaves      int
	EmptyLeaves int
	MaxDepth    int
	References  int // Object references summed over leaves
	AvgLeafSize float64
	MaxLeafSize int
}

// Stats walks the arena and collects tree statistics
func (t *Tree) Stats() Stats {
	s := Stats{Nodes: len(t.nodes), Leaves: len(t.leaves)}
	for _, index := range t.leaves {
		node := &t.nodes[index]
		count := len(node.objects)
		s.References += count
		s.MaxDepth = max(s.MaxDepth, node.depth)
		s.MaxLeafSize = max(s.MaxLeafSize, count)
		if count == 0 {
			s.EmptyLeaves++
		}
	}
	if s.Leaves > 0 {
		s.AvgLeafSize = float64(s.References) / float64(s.Leaves)
	}
	return s
}
