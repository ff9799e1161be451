// SPDX-License-Identifier: MIT

package converters_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/lvsearch/citymap"
	"github.com/katalvlaran/lvsearch/converters"
)

func TestToGonum_Nil(t *testing.T) {
	_, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilMap)
}

func TestToGonum_Grid(t *testing.T) {
	m, err := citymap.NewGridMap(3, 5)
	require.NoError(t, err)

	ex, err := converters.ToGonum(m)
	require.NoError(t, err)
	require.Equal(t, 15, ex.Graph.Nodes().Len())
	require.Equal(t, 44, ex.Graph.Edges().Len())

	require.Equal(t, "0,0", ex.Name(ex.ID("0,0")))
	require.Equal(t, int64(-1), ex.ID("9,9"))
	require.Nil(t, ex.Node("9,9"))
	require.Equal(t, "", ex.Name(99))

	shortest := path.DijkstraFrom(ex.Node("0,0"), ex.Graph)
	nodes, cost := shortest.To(ex.ID("2,2"))
	require.Equal(t, 4.0, cost)
	names := ex.Names(nodes)
	require.Equal(t, "0,0", names[0])
	require.Equal(t, "2,2", names[len(names)-1])
	require.Equal(t, 4.0, m.TotalCost(names))
}

func TestToGonum_SkipsSelfConnections(t *testing.T) {
	m := citymap.New()
	require.NoError(t, m.AddLocation("A", citymap.GeoLocation{}))
	require.NoError(t, m.AddLocation("B", citymap.GeoLocation{}))
	require.NoError(t, m.AddDirectedConnection("A", "A", 1))
	require.NoError(t, m.AddDirectedConnection("A", "B", 2))

	ex, err := converters.ToGonum(m)
	require.NoError(t, err)
	require.Equal(t, 1, ex.Graph.Edges().Len())
	w, ok := ex.Graph.Weight(ex.ID("A"), ex.ID("B"))
	require.True(t, ok)
	require.Equal(t, 2.0, w)
}
