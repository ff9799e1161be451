// SPDX-License-Identifier: MIT

package citymap

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a Map.
type Document struct {
	Locations   []LocationDoc   `yaml:"locations"`
	Connections []ConnectionDoc `yaml:"connections"`
}

// LocationDoc describes one location.
type LocationDoc struct {
	ID   string   `yaml:"id"`
	Lat  float64  `yaml:"lat"`
	Lon  float64  `yaml:"lon"`
	Tags []string `yaml:"tags,omitempty"`
}

// ConnectionDoc describes one undirected connection. A nil Distance means
// "use the great-circle distance between the endpoints".
type ConnectionDoc struct {
	From     string   `yaml:"from"`
	To       string   `yaml:"to"`
	Distance *float64 `yaml:"distance,omitempty"`
}

// Build turns the document into a Map. All locations are added before any
// connection, so connection order in the file does not matter.
func (d Document) Build() (*Map, error) {
	m := New()
	for i, l := range d.Locations {
		if err := m.AddLocation(l.ID, GeoLocation{Latitude: l.Lat, Longitude: l.Lon}, l.Tags...); err != nil {
			return nil, fmt.Errorf("%w: locations[%d]: %w", ErrBadDocument, i, err)
		}
	}
	for i, c := range d.Connections {
		var err error
		if c.Distance == nil {
			err = m.AddConnectionGeo(c.From, c.To)
		} else {
			err = m.AddConnection(c.From, c.To, *c.Distance)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: connections[%d]: %w", ErrBadDocument, i, err)
		}
	}

	return m, nil
}

// Decode reads a YAML document from r and builds the Map.
func Decode(r io.Reader) (*Map, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	return doc.Build()
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("citymap: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}
