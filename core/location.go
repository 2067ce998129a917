// SPDX-License-Identifier: MIT
//
// File: location.go
// Role: Temporary locations (street-side points injected for one request).
//
// A location is a *Vertex that is never registered in a Graph. It reaches
// the graph only through its links, which is enough for an SSSP or search
// to start or end at it. Linking is not synchronized: build a location on
// the goroutine that owns the request, then share it read-only.

package core

import "math"

// NewLocation returns a temporary vertex with NoGroup and the given
// coordinates. The ID only needs to be unique among the request's endpoints.
func NewLocation(id string, lat, lon float64) *Vertex {
	return &Vertex{ID: id, Group: NoGroup, Lat: lat, Lon: lon, HasCoord: true}
}

// LinkTo attaches an outbound temporary edge loc → to.
//
// Errors:
//   - ErrNotLocation: loc is nil or a registered vertex.
//   - ErrEmptyVertexID, ErrVertexNotFound: bad peer.
//   - ErrBadWeight: negative or NaN weight.
func (g *Graph) LinkTo(loc *Vertex, to string, weight float64, opts ...EdgeOption) error {
	return g.link(loc, to, weight, true, opts)
}

// LinkFrom attaches an inbound temporary edge from → loc.
//
// Errors: same as LinkTo.
func (g *Graph) LinkFrom(loc *Vertex, from string, weight float64, opts ...EdgeOption) error {
	return g.link(loc, from, weight, false, opts)
}

// Link attaches both an inbound and an outbound temporary edge between loc
// and peer with the same weight and modes.
func (g *Graph) Link(loc *Vertex, peer string, weight float64, opts ...EdgeOption) error {
	if err := g.LinkTo(loc, peer, weight, opts...); err != nil {
		return err
	}

	return g.LinkFrom(loc, peer, weight, opts...)
}

func (g *Graph) link(loc *Vertex, peerID string, weight float64, outbound bool, opts []EdgeOption) error {
	if !loc.Temporary() {
		return ErrNotLocation
	}
	if math.IsNaN(weight) || weight < 0 {
		return ErrBadWeight
	}
	peer, err := g.Vertex(peerID)
	if err != nil {
		return err
	}

	// Options are written against *Edge; reuse them for the link's modes.
	tmp := Edge{Modes: AllModes}
	for _, opt := range opts {
		opt(&tmp)
	}
	loc.links = append(loc.links, Link{Peer: peer, Weight: weight, Modes: tmp.Modes, Outbound: outbound})

	return nil
}
