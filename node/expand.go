// SPDX-License-Identifier: MIT
package node

import "github.com/katalvlaran/rlcsbeam/instance"

// candidate is a surviving (letter, next cursor triple) pair produced by
// Stages 1-3 of Expand, awaiting the Stage 4 dominance pass.
type candidate struct {
	letter  int
	cursorS []int
	cursorP []int
	cursorR []int
}

// Expand computes every feasible child of the node at id under the four
// pruning stages (availability, cursor advance, pattern reachability,
// dominance) and appends each surviving child to the arena, returning their
// IDs. Expand is deterministic given the arena's instance and the node's
// cursor triple.
func (a *Arena) Expand(id ID) []ID {
	inst := a.inst
	n := a.nodes[id]

	candidates := make([]candidate, 0, inst.Sigma)

	for letter := 0; letter < inst.Sigma; letter++ {
		// Stage 1 — availability: the letter must be extractable from every
		// input string's remaining suffix.
		feasible := true
		for i := 0; i < inst.M && feasible; i++ {
			if n.CursorS[i] >= len(inst.S[i]) {
				feasible = false
			} else if inst.SuffixCount[letter][i][n.CursorS[i]] <= 0 {
				feasible = false
			}
		}
		if !feasible {
			continue
		}

		// Stage 2 — compute the child's cursor triple under this letter.
		cursorS := make([]int, inst.M)
		for i := 0; i < inst.M; i++ {
			cursorS[i] = inst.NextOcc[letter][i][n.CursorS[i]] + 1
		}

		cursorP := make([]int, inst.P)
		for j := 0; j < inst.P; j++ {
			pj := n.CursorP[j]
			if pj < len(inst.Pat[j]) && inst.Pat[j][pj] == letter {
				pj++
			}
			cursorP[j] = pj
		}

		cursorR := make([]int, inst.R)
		removed := false
		for k := 0; k < inst.R; k++ {
			rk := n.CursorR[k]
			if inst.Anti[k][rk] == letter {
				rk++
			}
			cursorR[k] = rk
			if rk >= len(inst.Anti[k]) {
				removed = true
			}
		}
		if removed {
			continue
		}

		// Stage 3 — pattern-reachability: the remaining suffix of every
		// not-yet-satisfied pattern must still embed into every input
		// string from the new cursor.
		feasible = true
		for j := 0; j < inst.P && feasible; j++ {
			if cursorP[j] >= len(inst.Pat[j]) {
				continue
			}
			for i := 0; i < inst.M; i++ {
				if inst.PatEmbed[i][j][cursorP[j]] < cursorS[i] {
					feasible = false
					break
				}
			}
		}
		if !feasible {
			continue
		}

		candidates = append(candidates, candidate{letter, cursorS, cursorP, cursorR})
	}

	// Stage 4 — dominance: discard every survivor a for which
	// dominates(a, b) holds against some other remaining survivor b.
	removed := make([]bool, len(candidates))
	for ia := range candidates {
		if removed[ia] {
			continue
		}
		for ib := range candidates {
			if ia == ib || removed[ib] {
				continue
			}
			if dominates(inst, candidates[ia], candidates[ib]) {
				removed[ia] = true
			}
		}
	}

	children := make([]ID, 0, len(candidates))
	for i, c := range candidates {
		if removed[i] {
			continue
		}
		children = append(children, a.newNode(c.cursorS, c.cursorP, c.cursorR, id))
	}
	return children
}

// dominates reports whether candidate a is beaten by candidate b on every
// cursor: a advances at least as far in every input string (leaving no more
// room), has consumed at most as much of every pattern, and has matched
// strictly more of every anti-pattern. Expand discards a when this holds.
// The anti-pattern strictness is intentional: requiring a strict difference
// there, rather than a tie, is what makes the relation antisymmetric.
func dominates(inst *instance.Instance, a, b candidate) bool {
	for i := 0; i < inst.NumInputs(); i++ {
		if a.cursorS[i] < b.cursorS[i] {
			return false
		}
	}
	for j := 0; j < inst.NumPatterns(); j++ {
		if a.cursorP[j] > b.cursorP[j] {
			return false
		}
	}
	for k := 0; k < inst.NumAntiPatterns(); k++ {
		if a.cursorR[k] <= b.cursorR[k] {
			return false
		}
	}
	return true
}
