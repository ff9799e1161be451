// SPDX-License-Identifier: MIT

package citymap

import (
	"errors"
	"sync"
)

// Sentinel errors for citymap operations.
var (
	// ErrEmptyLocationID indicates that a location ID is the empty string.
	ErrEmptyLocationID = errors.New("citymap: location ID is empty")

	// ErrLocationNotFound indicates an operation referenced an unknown location.
	ErrLocationNotFound = errors.New("citymap: location not found")

	// ErrNegativeDistance indicates a connection with distance < 0.
	ErrNegativeDistance = errors.New("citymap: negative connection distance")

	// ErrBadGridSize indicates a grid dimension below one.
	ErrBadGridSize = errors.New("citymap: grid width and height must be at least 1")

	// ErrBadDocument indicates a YAML map document that cannot be turned into a Map.
	ErrBadDocument = errors.New("citymap: invalid map document")
)

// GeoLocation is a point on the Earth's surface in degrees.
type GeoLocation struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lon" yaml:"lon"`
}

// Map is the weighted city graph.
//
// muLoc guards locations, geo and tags; muAdj guards distances.
// Lock order is muLoc -> muAdj.
type Map struct {
	muLoc sync.RWMutex
	muAdj sync.RWMutex

	geo  map[string]GeoLocation         // location → coordinates
	tags map[string]map[string]struct{} // location → tag set

	// distances[from][to] = non-negative distance
	distances map[string]map[string]float64
}

// New returns an empty Map.
// Complexity: O(1).
func New() *Map {
	return &Map{
		geo:       make(map[string]GeoLocation),
		tags:      make(map[string]map[string]struct{}),
		distances: make(map[string]map[string]float64),
	}
}
