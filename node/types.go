// SPDX-License-Identifier: MIT
package node

import "github.com/katalvlaran/rlcsbeam/instance"

// ID addresses a Node inside an Arena. The root is always ID 0, so the zero
// value is a valid in-use ID and NoParent is distinguished with -1, not 0.
type ID int32

// NoParent marks the root node, which has no parent.
const NoParent ID = -1

// Node is a single beam-search state. CursorS[i], CursorP[j], and CursorR[k]
// are, respectively, the next position to consider in S[i], the count of
// leading letters of Pat[j] already consumed, and the count of leading
// letters of Anti[k] already matched against the partial solution.
//
// Node is mutable only during construction inside Arena.newNode; once
// returned from Expand it is logically immutable.
type Node struct {
	CursorS []int
	CursorP []int
	CursorR []int

	Parent ID
	Depth  int

	Features       []float64
	HeuristicValue float64
}

// Arena owns every Node created during one beam-search invocation. It frees
// as a unit: dropping the Arena value (letting it become unreachable) frees
// every node it holds, all at once, at beam-search exit.
type Arena struct {
	inst  *instance.Instance
	nodes []Node
}

// NewArena creates an Arena seeded with the root node: all cursors at zero,
// depth zero, no parent. The root's ID is always 0.
func NewArena(inst *instance.Instance) (*Arena, ID) {
	a := &Arena{inst: inst}
	root := a.newNode(
		make([]int, inst.NumInputs()),
		make([]int, inst.NumPatterns()),
		make([]int, inst.NumAntiPatterns()),
		NoParent,
	)
	return a, root
}

// newNode appends a node to the arena and returns its ID.
func (a *Arena) newNode(cursorS, cursorP, cursorR []int, parent ID) ID {
	depth := 0
	if parent != NoParent {
		depth = a.nodes[parent].Depth + 1
	}
	a.nodes = append(a.nodes, Node{
		CursorS: cursorS,
		CursorP: cursorP,
		CursorR: cursorR,
		Parent:  parent,
		Depth:   depth,
	})
	return ID(len(a.nodes) - 1)
}

// Get returns a pointer to the node for id, valid only for the lifetime of
// the Arena (and invalidated by any further append, per normal Go slice
// aliasing rules — callers needing stability across appends should re-fetch
// by ID rather than retain the pointer).
func (a *Arena) Get(id ID) *Node { return &a.nodes[id] }

// Len reports how many nodes the arena has allocated so far.
func (a *Arena) Len() int { return len(a.nodes) }

// Instance returns the instance this arena's nodes are positioned against.
func (a *Arena) Instance() *instance.Instance { return a.inst }
