// SPDX-License-Identifier: MIT

// Package citymap provides the read-only weighted graph consumed by the
// routing problems: named locations, per-location tag sets, geolocations,
// and a sparse adjacency map location → {neighbor: distance}.
//
// Overview:
//
//   - A Location is an opaque string ID. Every location carries the tag
//     "label=<id>" plus any caller-supplied tags ("key=value").
//   - Connections are directed in storage; AddConnection mirrors them so the
//     map behaves as an undirected street network.
//   - Geolocations are (latitude, longitude) pairs in degrees. They never
//     influence connectivity; they only feed straight-line estimates.
//
// Construction:
//
//	m := citymap.New()
//	_ = m.AddLocation("A", citymap.GeoLocation{Latitude: 37.33, Longitude: -121.88}, citymap.MakeTag("landmark", "home"))
//	_ = m.AddLocation("B", citymap.GeoLocation{Latitude: 37.34, Longitude: -121.89})
//	_ = m.AddConnectionGeo("A", "B")
//
// Grid fixtures:
//
//   - NewGridMap(width, height) builds a width×height lattice with IDs "x,y",
//     unit-distance 4-neighbour connections and tags x=<x>, y=<y>.
//   - NewGridMapWithCustomTags replaces the x=/y= tags with explicit sets.
//
// Concurrency:
//
//   - Mutations take a write lock, queries a read lock. Once built, a Map is
//     safe to share between any number of concurrent searches.
//
// Errors (sentinel):
//
//   - ErrEmptyLocationID  – empty location ID.
//   - ErrLocationNotFound – connection or query references an unknown location.
//   - ErrNegativeDistance – connection distance below zero.
//   - ErrBadGridSize      – grid width or height below one.
//   - ErrBadDocument      – malformed YAML map document.
package citymap
