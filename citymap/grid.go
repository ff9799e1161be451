// SPDX-License-Identifier: MIT
// File: grid.go
// Role: deterministic lattice fixtures.
//
// Canonical model:
//   - width×height lattice, IDs "x,y" for x∈[0,width), y∈[0,height).
//   - Unit-distance connections to the left (x-1,y) and lower (x,y-1)
//     neighbours, mirrored, so every cell has its 4-neighbourhood.
//   - Geolocation (x·GridUnitDegrees, y·GridUnitDegrees): one grid step is
//     exactly one metre along a meridian and at most one metre along a
//     parallel, so straight-line distance never exceeds the path length.

package citymap

import (
	"fmt"
	"math"
)

// GridUnitDegrees is the angular spacing of grid cells: one metre of arc.
const GridUnitDegrees = 180 / (math.Pi * RadiusEarth)

const (
	gridIDFmt    = "%d,%d"
	gridUnitCost = 1.0
	minGridDim   = 1
)

// MakeGridLabel returns the location ID of grid cell (x, y).
func MakeGridLabel(x, y int) string {
	return fmt.Sprintf(gridIDFmt, x, y)
}

// NewGridMap builds a width×height grid whose cells carry the tags
// x=<x>, y=<y> and label=x,y.
//
// Errors:
//   - ErrBadGridSize if width < 1 or height < 1.
//
// Complexity: O(width·height).
func NewGridMap(width, height int) (*Map, error) {
	// 1) Validate dimensions before doing any work.
	if width < minGridDim || height < minGridDim {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrBadGridSize, width, height)
	}

	m := New()
	// 2) Add cells in row-major order, connecting each to its already-added
	//    left and lower neighbours.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			id := MakeGridLabel(x, y)
			geo := GeoLocation{Latitude: float64(x) * GridUnitDegrees, Longitude: float64(y) * GridUnitDegrees}
			if err := m.AddLocation(id, geo, MakeTag("x", x), MakeTag("y", y)); err != nil {
				return nil, fmt.Errorf("NewGridMap: AddLocation(%s): %w", id, err)
			}
			if x > 0 {
				if err := m.AddConnection(id, MakeGridLabel(x-1, y), gridUnitCost); err != nil {
					return nil, fmt.Errorf("NewGridMap: %w", err)
				}
			}
			if y > 0 {
				if err := m.AddConnection(id, MakeGridLabel(x, y-1), gridUnitCost); err != nil {
					return nil, fmt.Errorf("NewGridMap: %w", err)
				}
			}
		}
	}

	return m, nil
}

// NewGridMapWithCustomTags builds a grid like NewGridMap but replaces the
// x=/y= tags of every cell with custom[[2]int{x, y}] (cells missing from the
// map carry only their label tag).
func NewGridMapWithCustomTags(width, height int, custom map[[2]int][]string) (*Map, error) {
	m, err := NewGridMap(width, height)
	if err != nil {
		return nil, err
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			m.replaceTags(MakeGridLabel(x, y), custom[[2]int{x, y}])
		}
	}

	return m, nil
}
