package internal

// ReconstructPath walks parent indices from nodes[index] back to the root node
// (parent index < 0) and returns the values collected along the way, leaf first.
func ReconstructPath[NodeType any, ValueType any](
	nodes []NodeType,
	index int,
	parentOf func(NodeType) int,
	valueOf func(NodeType) ValueType,
) []ValueType {
	if index < 0 || index >= len(nodes) {
		return nil
	}
	path := make([]ValueType, 0, 16)
	// a well-formed arena never needs more hops than it has nodes
	for hops := 0; index >= 0 && hops <= len(nodes); hops++ {
		node := nodes[index]
		path = append(path, valueOf(node))
		index = parentOf(node)
	}
	return path
}
