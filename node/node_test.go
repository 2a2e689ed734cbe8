package node_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/rlcsbeam/instance"
	"github.com/katalvlaran/rlcsbeam/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, src string) *instance.Instance {
	t.Helper()
	inst, err := instance.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return inst
}

// TestExpand_ScenarioA: m=1, S=["aabb"], no patterns/anti-patterns. The only
// feasible child letter from the root is 'a'.
func TestExpand_ScenarioA(t *testing.T) {
	inst := parseFixture(t, "1 2 0 0\n4 aabb\n")
	arena, root := node.NewArena(inst)

	children := arena.Expand(root)
	require.Len(t, children, 1)
	n := arena.Get(children[0])
	assert.Equal(t, 1, n.Depth)
	assert.Equal(t, []int{1}, n.CursorS)
}

// TestExpand_DeterministicGivenSameState.
func TestExpand_DeterministicGivenSameState(t *testing.T) {
	inst := parseFixture(t, "2 3 0 0\n3 abc\n3 acb\n")
	arena1, root1 := node.NewArena(inst)
	arena2, root2 := node.NewArena(inst)

	c1 := arena1.Expand(root1)
	c2 := arena2.Expand(root2)
	require.Equal(t, len(c1), len(c2))
	for i := range c1 {
		assert.Equal(t, arena1.Get(c1[i]).CursorS, arena2.Get(c2[i]).CursorS)
	}
}

// TestExpand_AntiPatternNeverFullyEmbeds: a letter
// that would complete an anti-pattern must never produce a live child.
func TestExpand_AntiPatternNeverFullyEmbeds(t *testing.T) {
	// m=1, S=["aaaa"], R=["aa"] — scenario D.
	inst := parseFixture(t, "1 2 0 1\n4 aaaa\n2 aa\n")
	arena, root := node.NewArena(inst)

	// Walk greedily: every child must keep CursorR[0] < len(Anti[0]).
	cur := root
	for depth := 0; depth < 4; depth++ {
		children := arena.Expand(cur)
		if len(children) == 0 {
			break
		}
		for _, c := range children {
			n := arena.Get(c)
			assert.Less(t, n.CursorR[0], len(inst.Anti[0]))
		}
		cur = children[0]
	}
}

// TestDominance_Antisymmetric: no two survivors of
// one Expand call dominate each other.
func TestDominance_Antisymmetric(t *testing.T) {
	inst := parseFixture(t, "2 3 1 0\n4 abca\n4 abca\n2 bc\n")
	arena, root := node.NewArena(inst)
	children := arena.Expand(root)
	// Re-running the Stage 4 dominance check on the returned set must find
	// nothing left to remove: no survivor is dominated by another.
	assert.NotEmpty(t, children)
	for _, ca := range children {
		for _, cb := range children {
			if ca != cb {
				assert.False(t, cursorsDominate(arena.Get(ca), arena.Get(cb)))
			}
		}
	}
}

// cursorsDominate mirrors Expand's Stage 4 predicate on two nodes' cursors.
func cursorsDominate(a, b *node.Node) bool {
	for i := range a.CursorS {
		if a.CursorS[i] < b.CursorS[i] {
			return false
		}
	}
	for j := range a.CursorP {
		if a.CursorP[j] > b.CursorP[j] {
			return false
		}
	}
	for k := range a.CursorR {
		if a.CursorR[k] <= b.CursorR[k] {
			return false
		}
	}
	return true
}

// TestIsComplete_PatternMustBeFullyConsumed (scenario C: P=["bc"]).
func TestIsComplete_PatternMustBeFullyConsumed(t *testing.T) {
	inst := parseFixture(t, "2 3 1 0\n4 abca\n4 abca\n2 bc\n")
	arena, root := node.NewArena(inst)
	assert.False(t, arena.IsComplete(root))
}

// TestReconstruct_DepthEqualsSolutionLength.
func TestReconstruct_DepthEqualsSolutionLength(t *testing.T) {
	inst := parseFixture(t, "1 2 0 0\n4 aabb\n")
	arena, root := node.NewArena(inst)

	cur := root
	for i := 0; i < 4; i++ {
		children := arena.Expand(cur)
		require.NotEmpty(t, children)
		cur = children[0]
	}
	sol := arena.Reconstruct(cur)
	assert.Equal(t, arena.Get(cur).Depth, len(sol))
	assert.Equal(t, "aabb", inst.Render(sol))
}

// TestFeatures_LengthMatchesConfig.
func TestFeatures_LengthMatchesConfig(t *testing.T) {
	inst := parseFixture(t, "1 2 0 1\n4 aaaa\n2 aa\n")
	arena, root := node.NewArena(inst)
	children := arena.Expand(root)
	require.NotEmpty(t, children)

	for cfg, want := range map[int]int{1: 9, 2: 10, 3: 12, 4: 14} {
		f := arena.Features(children[0], cfg)
		assert.Len(t, f, want)
	}
}

// TestFeatures_ZeroVarianceDoesNotProduceNaN (DESIGN.md Open Question 1).
func TestFeatures_ZeroVarianceDoesNotProduceNaN(t *testing.T) {
	inst := parseFixture(t, "1 1 0 0\n1 a\n")
	arena, root := node.NewArena(inst)
	f := arena.Features(root, 1)
	for _, v := range f {
		assert.False(t, v != v, "feature value must not be NaN") // v != v iff NaN
	}
}
