// SPDX-License-Identifier: MIT

// Package loader reads routing graphs from JSON documents of the form
//
//	{
//	  "metadata": {"mode_info": {"mode": "walk_bike"}},
//	  "graph": {
//	    "nodes": [{"id": 1, "x": -73.57, "y": 45.50, "group": 0}],
//	    "links": [{"source": 1, "target": 2, "travel_time": 42.5,
//	               "modes": ["walk"], "name": "Rue Peel", "bidirectional": true}]
//	  }
//	}
//
// x is the longitude and y the latitude. IDs may be numbers or strings and
// must be unique. A node without "group" gets a fresh group; an explicit
// group must lie in [0, number of nodes). A link without "modes" takes
// the document's metadata modes ("walk_bike" → walk and bicycle), or every
// mode when the metadata has none.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/katalvlaran/lowerbound/core"
)

// Sentinel errors.
var (
	// ErrMalformed is returned for documents that are not valid JSON or lack a graph.
	ErrMalformed = errors.New("loader: malformed graph document")

	// ErrBadID is returned for a node or link endpoint with a missing or unusable ID.
	ErrBadID = errors.New("loader: bad id")

	// ErrUnknownNode is returned for a link whose endpoint is not a node.
	ErrUnknownNode = errors.New("loader: link references unknown node")
)

type document struct {
	Metadata struct {
		ModeInfo struct {
			Mode string `json:"mode"`
		} `json:"mode_info"`
	} `json:"metadata"`
	Graph *struct {
		Nodes []struct {
			ID    any     `json:"id"`
			X     float64 `json:"x"`
			Y     float64 `json:"y"`
			Group *int    `json:"group"`
		} `json:"nodes"`
		Links []struct {
			Source        any      `json:"source"`
			Target        any      `json:"target"`
			TravelTime    float64  `json:"travel_time"`
			Modes         []string `json:"modes"`
			Name          string   `json:"name"`
			Bidirectional bool     `json:"bidirectional"`
		} `json:"links"`
	} `json:"graph"`
}

// Option configures loading.
type Option func(*options)

type options struct {
	logger *zap.Logger
	gopts  []core.GraphOption
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("loader: WithLogger requires a non-nil logger")
	}
	return func(o *options) { o.logger = l }
}

// WithGraphOptions passes opts to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) { o.gopts = append(o.gopts, opts...) }
}

func resolve(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse builds a graph from a JSON document.
func Parse(data []byte, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)

	var doc document
	if err := gojson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Graph == nil {
		return nil, fmt.Errorf("%w: no \"graph\" object", ErrMalformed)
	}

	defaultModes, err := metadataModes(doc.Metadata.ModeInfo.Mode)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph(o.gopts...)
	for i, n := range doc.Graph.Nodes {
		id, err := parseID(n.ID)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		if g.HasVertex(id) {
			return nil, fmt.Errorf("%w: duplicate node %s", ErrBadID, id)
		}
		vopts := []core.VertexOption{core.WithCoord(n.Y, n.X)}
		if n.Group != nil {
			// Groups index dense tables downstream; more groups than nodes is never valid.
			if *n.Group < 0 || *n.Group >= len(doc.Graph.Nodes) {
				return nil, fmt.Errorf("%w: node %s group=%d outside [0, %d)", ErrMalformed, id, *n.Group, len(doc.Graph.Nodes))
			}
			vopts = append(vopts, core.WithGroup(*n.Group))
		}
		if err := g.AddVertex(id, vopts...); err != nil {
			return nil, fmt.Errorf("node %s: %w", id, err)
		}
	}

	for i, l := range doc.Graph.Links {
		from, err := parseID(l.Source)
		if err != nil {
			return nil, fmt.Errorf("link %d source: %w", i, err)
		}
		to, err := parseID(l.Target)
		if err != nil {
			return nil, fmt.Errorf("link %d target: %w", i, err)
		}
		for _, id := range [2]string{from, to} {
			if !g.HasVertex(id) {
				return nil, fmt.Errorf("%w: link %d → %q", ErrUnknownNode, i, id)
			}
		}

		modes := defaultModes
		if len(l.Modes) > 0 {
			if modes, err = core.ParseModes(l.Modes); err != nil {
				return nil, fmt.Errorf("link %d: %w", i, err)
			}
		}
		eopts := []core.EdgeOption{core.WithModes(modes), core.WithName(l.Name)}
		if _, err := g.AddEdge(from, to, l.TravelTime, eopts...); err != nil {
			return nil, fmt.Errorf("link %d (%s→%s): %w", i, from, to, err)
		}
		if l.Bidirectional {
			if _, err := g.AddEdge(to, from, l.TravelTime, eopts...); err != nil {
				return nil, fmt.Errorf("link %d (%s→%s): %w", i, to, from, err)
			}
		}
	}

	st := g.Stats()
	o.logger.Debug("loaded graph",
		zap.Stringer("graph", g.ID()),
		zap.Int("vertices", st.Vertices),
		zap.Int("edges", st.Edges),
		zap.Int("groups", st.Groups),
		zap.Stringer("default_modes", defaultModes))

	return g, nil
}

// LoadFile reads and parses one JSON document.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read graph file: %w", err)
	}
	g, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// LoadDir loads every *.json file under dir, keyed by file name without
// the extension.
func LoadDir(dir string, opts ...Option) (map[string]*core.Graph, error) {
	graphs := make(map[string]*core.Graph)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		g, err := LoadFile(path, opts...)
		if err != nil {
			return err
		}
		graphs[strings.TrimSuffix(d.Name(), ".json")] = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	return graphs, nil
}

// metadataModes parses "walk_bike"-style mode lists; empty means every mode.
func metadataModes(s string) (core.Mode, error) {
	if strings.TrimSpace(s) == "" {
		return core.AllModes, nil
	}

	return core.ParseModes(strings.Split(s, "_"))
}

// parseID accepts JSON strings and integral numbers.
func parseID(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("%w: empty string", ErrBadID)
		}
		return v, nil
	case float64:
		if v != float64(int64(v)) {
			return "", fmt.Errorf("%w: non-integral number %v", ErrBadID, v)
		}
		return strconv.FormatInt(int64(v), 10), nil
	case nil:
		return "", fmt.Errorf("%w: missing", ErrBadID)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrBadID, raw)
	}
}
