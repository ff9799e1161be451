// SPDX-License-Identifier: MIT

package search_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestUniformCostSearch_NilProblem(t *testing.T) {
	res, err := search.UniformCostSearch[search.NoMemory](nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrNilProblem)
}

func TestUniformCostSearch_NilLogger(t *testing.T) {
	g := newGraphProblem("A", "A")
	_, err := search.UniformCostSearch[search.NoMemory](g, search.WithLogger(nil))
	assert.ErrorIs(t, err, search.ErrNilLogger)
}

// ------------------------------------------------------------------------
// 2. Basic behaviour
// ------------------------------------------------------------------------

func TestUniformCostSearch_StartIsGoal(t *testing.T) {
	g := newGraphProblem("A", "A").link("A", "B", 1)
	res, err := search.UniformCostSearch[search.NoMemory](g)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 0.0, res.PathCost)
	require.Empty(t, res.Actions)
	require.NotNil(t, res.Actions)
	require.Equal(t, 1, res.NumStatesExplored)
}

func TestUniformCostSearch_Triangle(t *testing.T) {
	// A-B(1), B-C(2), A-C(5)
	g := newGraphProblem("A", "C").link("A", "B", 1).link("B", "C", 2).link("A", "C", 5)
	res, err := search.UniformCostSearch[search.NoMemory](g)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 3.0, res.PathCost)
	require.Equal(t, []string{"B", "C"}, res.Actions)
	require.Equal(t, "C", res.End.Location)
}

func TestUniformCostSearch_NoPath(t *testing.T) {
	// C is unreachable: only C→A exists.
	g := newGraphProblem("A", "C").link("A", "B", 1).arc("C", "A", 1)
	res, err := search.UniformCostSearch[search.NoMemory](g)
	require.NoError(t, err, "no path is a result, not an error")
	require.False(t, res.Found)
	require.Zero(t, res.PathCost)
	require.Nil(t, res.Actions)
	require.Equal(t, 2, res.NumStatesExplored)
}

func TestUniformCostSearch_UnknownGoal(t *testing.T) {
	g := newGraphProblem("A").link("A", "B", 1)
	res, err := search.UniformCostSearch[search.NoMemory](g)
	require.NoError(t, err)
	require.False(t, res.Found)
}

func TestUniformCostSearch_LaterImprovementWins(t *testing.T) {
	// Direct arc is discovered first but the detour is cheaper.
	g := newGraphProblem("A", "C").arc("A", "C", 10).arc("A", "B", 1).arc("B", "C", 1)
	res, err := search.UniformCostSearch[search.NoMemory](g)
	require.NoError(t, err)
	require.Equal(t, 2.0, res.PathCost)
	require.Equal(t, []string{"B", "C"}, res.Actions)
}

func TestUniformCostSearch_TiesFollowDiscoveryOrder(t *testing.T) {
	// Two equal-cost routes A→B→D and A→C→D; B is listed first.
	g := newGraphProblem("A", "D").arc("A", "B", 1).arc("A", "C", 1).arc("B", "D", 1).arc("C", "D", 1)
	for i := 0; i < 5; i++ {
		res, err := search.UniformCostSearch[search.NoMemory](g)
		require.NoError(t, err)
		require.Equal(t, []string{"B", "D"}, res.Actions)
	}
}

func TestUniformCostSearch_ZeroCostCycle(t *testing.T) {
	g := newGraphProblem("A", "D").link("A", "B", 0).link("B", "C", 0).link("C", "A", 0).link("C", "D", 3)
	res, err := search.UniformCostSearch[search.NoMemory](g)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 3.0, res.PathCost)
}

// toggleProblem: the goal is to return to "home" after visiting "shop".
// The memory bit keeps (home, false) and (home, true) apart.
type toggleProblem struct{}

func (toggleProblem) StartState() search.State[bool] { return search.State[bool]{Location: "home"} }

func (toggleProblem) IsEnd(s search.State[bool]) bool { return s.Location == "home" && s.Memory }

func (toggleProblem) SuccessorsAndCosts(s search.State[bool]) []search.Successor[bool] {
	next := "shop"
	if s.Location == "shop" {
		next = "home"
	}
	mem := s.Memory || next == "shop"

	return []search.Successor[bool]{{Action: next, State: search.State[bool]{Location: next, Memory: mem}, Cost: 2}}
}

func TestUniformCostSearch_MemoryDistinguishesStates(t *testing.T) {
	res, err := search.UniformCostSearch[bool](toggleProblem{})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []string{"shop", "home"}, res.Actions)
	require.Equal(t, 4.0, res.PathCost)
	require.Equal(t, search.State[bool]{Location: "home", Memory: true}, res.End)
}

func TestUniformCostSearch_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := newGraphProblem("A", "B").link("A", "B", 1)

	_, err := search.UniformCostSearch[search.NoMemory](g, search.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "msg=expand")
	require.Contains(t, buf.String(), "found=true")
}

// ------------------------------------------------------------------------
// 3. Optimality against exhaustive relaxation
// ------------------------------------------------------------------------

// randomProblem builds a connected-ish random graph of n nodes.
func randomProblem(r *rand.Rand, n int) *graphProblem {
	name := func(i int) string { return fmt.Sprintf("n%02d", i) }
	g := newGraphProblem(name(0), name(n-1))
	for i := 1; i < n; i++ {
		g.link(name(r.IntN(i)), name(i), float64(1+r.IntN(9)))
	}
	for k := 0; k < n; k++ {
		u, v := r.IntN(n), r.IntN(n)
		if u != v {
			g.arc(name(u), name(v), float64(r.IntN(12)))
		}
	}

	return g
}

func TestUniformCostSearch_OptimalOnRandomGraphs(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 40; trial++ {
		g := randomProblem(r, 4+r.IntN(12))
		want := g.distancesTo()[g.start]

		res, err := search.UniformCostSearch[search.NoMemory](g)
		require.NoError(t, err)
		require.True(t, res.Found, "trial %d", trial)
		require.InDelta(t, want, res.PathCost, 1e-9, "trial %d", trial)
		require.InDelta(t, res.PathCost, g.pathCost(res.Actions), 1e-9, "trial %d: actions must realise the cost", trial)
	}
}
