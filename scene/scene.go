// Package scene stores the node tree of a guiug application.
//
// A Scene is an append-only arena: nodes are inserted once, referenced by
// NodeID from their parents and never mutated or removed afterwards.
package scene

// Scene owns the node table and the optional root.
// The zero value is an empty scene without a root.
type Scene struct {
	nodes   []Node
	root    NodeID
	hasRoot bool
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{}
}

// Insert adds a node and returns its freshly allocated ID.
// Child references are not checked.
func (s *Scene) Insert(n Node) NodeID {
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, valueOf(n))
	return id
}

// Get returns the node stored under id.
func (s *Scene) Get(id NodeID) (Node, bool) {
	if int64(id) >= int64(len(s.nodes)) {
		return nil, false
	}
	return s.nodes[id], true
}

// Len returns the number of nodes in the scene.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// SetRoot designates the node painted over the whole screen.
func (s *Scene) SetRoot(id NodeID) {
	s.root = id
	s.hasRoot = true
}

// Root returns the root node ID, if one was set.
func (s *Scene) Root() (NodeID, bool) {
	return s.root, s.hasRoot
}

// BrokenReference is a child reference to a node that is not in the scene.
type BrokenReference struct {
	Parent NodeID
	Child  NodeID
}

// Validate reports every child reference that points outside the scene, in
// node order. It does not change how the scene is painted.
func (s *Scene) Validate() []BrokenReference {
	var broken []BrokenReference
	for i, n := range s.nodes {
		for _, child := range Children(n) {
			if _, ok := s.Get(child); !ok {
				broken = append(broken, BrokenReference{Parent: NodeID(i), Child: child})
			}
		}
	}
	return broken
}
