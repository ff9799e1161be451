// SPDX-License-Identifier: MIT

package citymap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvsearch/citymap"
)

type MapSuite struct {
	suite.Suite
	m *citymap.Map
}

func (s *MapSuite) SetupTest() {
	s.m = citymap.New()
	require := require.New(s.T())
	require.NoError(s.m.AddLocation("A", citymap.GeoLocation{Latitude: 0, Longitude: 0}, "amenity=food"))
	require.NoError(s.m.AddLocation("B", citymap.GeoLocation{Latitude: 0, Longitude: 1}))
	require.NoError(s.m.AddLocation("C", citymap.GeoLocation{Latitude: 1, Longitude: 1}, "amenity=food", "landmark=park"))
}

func (s *MapSuite) TestAddLocationValidation() {
	require := require.New(s.T())
	require.ErrorIs(s.m.AddLocation("", citymap.GeoLocation{}), citymap.ErrEmptyLocationID)
	require.True(s.m.HasLocation("A"))
	require.False(s.m.HasLocation("Z"))
	require.Equal(3, s.m.LocationCount())
	require.Equal([]string{"A", "B", "C"}, s.m.Locations())
}

func (s *MapSuite) TestLabelTagAlwaysPresent() {
	require := require.New(s.T())
	require.Equal([]string{"label=B"}, s.m.Tags("B"))
	require.Equal([]string{"amenity=food", "label=C", "landmark=park"}, s.m.Tags("C"))
	require.True(s.m.HasTag("A", citymap.MakeTag("label", "A")))
	require.Nil(s.m.Tags("Z"))
	require.False(s.m.HasTag("Z", "label=Z"))
}

func (s *MapSuite) TestAddLocationMergesTags() {
	require := require.New(s.T())
	require.NoError(s.m.AddLocation("B", citymap.GeoLocation{Latitude: 2, Longitude: 2}, "parking=underground"))
	require.Equal([]string{"label=B", "parking=underground"}, s.m.Tags("B"))
	geo, ok := s.m.GeoLocationOf("B")
	require.True(ok)
	require.Equal(citymap.GeoLocation{Latitude: 2, Longitude: 2}, geo)
}

func (s *MapSuite) TestConnections() {
	require := require.New(s.T())
	require.NoError(s.m.AddConnection("A", "B", 5))
	require.NoError(s.m.AddDirectedConnection("B", "C", 2))

	d, ok := s.m.Distance("B", "A")
	require.True(ok, "AddConnection must mirror")
	require.Equal(5.0, d)
	_, ok = s.m.Distance("C", "B")
	require.False(ok, "directed connection must not mirror")

	require.Equal([]citymap.Neighbor{{ID: "A", Distance: 5}, {ID: "C", Distance: 2}}, s.m.Neighbors("B"))
	require.Equal(map[string]float64{"A": 5, "C": 2}, s.m.Distances("B"))
	require.Equal(3, s.m.ConnectionCount())
	require.Empty(s.m.Neighbors("Z"))
}

func (s *MapSuite) TestConnectionErrors() {
	require := require.New(s.T())
	require.ErrorIs(s.m.AddConnection("A", "B", -1), citymap.ErrNegativeDistance)
	require.ErrorIs(s.m.AddConnection("A", "Z", 1), citymap.ErrLocationNotFound)
	require.ErrorIs(s.m.AddConnection("", "A", 1), citymap.ErrEmptyLocationID)
	require.ErrorIs(s.m.AddConnectionGeo("A", "Z"), citymap.ErrLocationNotFound)
	require.Zero(s.m.ConnectionCount())
}

func (s *MapSuite) TestAddConnectionGeo() {
	require := require.New(s.T())
	require.NoError(s.m.AddConnectionGeo("A", "B"))
	d, ok := s.m.Distance("A", "B")
	require.True(ok)
	// one degree of longitude on the equator
	require.InDelta(citymap.RadiusEarth*math.Pi/180, d, 1e-6)
}

func (s *MapSuite) TestLocationsWithTag() {
	require := require.New(s.T())
	require.Equal([]string{"A", "C"}, s.m.LocationsWithTag("amenity=food"))
	loc, ok := s.m.LocationFromTag("amenity=food")
	require.True(ok)
	require.Equal("A", loc)
	_, ok = s.m.LocationFromTag("amenity=none")
	require.False(ok)
}

func (s *MapSuite) TestTotalCostAndCheckValid() {
	require := require.New(s.T())
	require.NoError(s.m.AddConnection("A", "B", 5))
	require.NoError(s.m.AddConnection("B", "C", 2))

	require.Equal(7.0, s.m.TotalCost([]string{"A", "B", "C"}))
	require.Equal(0.0, s.m.TotalCost([]string{"A"}))
	require.True(math.IsInf(s.m.TotalCost([]string{"A", "C"}), 1))

	require.True(s.m.CheckValid([]string{"A", "B", "C"}, "A", "landmark=park", nil))
	require.True(s.m.CheckValid([]string{"A", "B", "C"}, "A", "landmark=park", []string{"label=B"}))
	require.False(s.m.CheckValid([]string{"A", "B"}, "A", "landmark=park", nil), "wrong end")
	require.False(s.m.CheckValid([]string{"B", "C"}, "A", "landmark=park", nil), "wrong start")
	require.False(s.m.CheckValid([]string{"A", "C"}, "A", "landmark=park", nil), "missing hop")
	require.False(s.m.CheckValid([]string{"C"}, "C", "landmark=park", []string{"label=B"}), "missing waypoint")
	require.False(s.m.CheckValid(nil, "A", "landmark=park", nil))
}

func TestMapSuite(t *testing.T) {
	suite.Run(t, new(MapSuite))
}

func TestComputeDistance(t *testing.T) {
	a := citymap.GeoLocation{Latitude: 0, Longitude: 0}
	b := citymap.GeoLocation{Latitude: 0, Longitude: 90}
	require.InDelta(t, citymap.RadiusEarth*math.Pi/2, citymap.ComputeDistance(a, b), 1e-6)
	require.Zero(t, citymap.ComputeDistance(a, a))

	c := citymap.GeoLocation{Latitude: 10, Longitude: 20}
	require.LessOrEqual(t, citymap.LatitudeDistance(a, c), citymap.ComputeDistance(a, c))
	require.InDelta(t, citymap.RadiusEarth*10*math.Pi/180, citymap.LatitudeDistance(a, c), 1e-6)
}

func TestMakeTag(t *testing.T) {
	require.Equal(t, "y=4", citymap.MakeTag("y", 4))
	require.Equal(t, "landmark=park", citymap.MakeTag("landmark", "park"))
	require.Equal(t, "3,7", citymap.MakeGridLabel(3, 7))
}
