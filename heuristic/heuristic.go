// SPDX-License-Identifier: MIT

package heuristic

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lowerbound/core"
	"github.com/katalvlaran/lowerbound/lbcache"
	"github.com/katalvlaran/lowerbound/lowerbound"
	"github.com/katalvlaran/lowerbound/metrics"
)

// Sentinel errors.
var (
	// ErrUnknownKind is returned by ParseKind and New for an unrecognized kind.
	ErrUnknownKind = errors.New("heuristic: unknown kind")

	// ErrNilCache is returned when a LowerBound is requested without a cache.
	ErrNilCache = errors.New("heuristic: cache is nil")
)

// State is the part of a search state a heuristic reads.
type State interface {
	// Vertex is the vertex the state is at.
	Vertex() *core.Vertex
	// Options are the traverse options of the search, passed through unchanged.
	Options() core.TraverseOptions
}

// RemainingWeightHeuristic estimates the remaining weight from a state to
// the search target.
type RemainingWeightHeuristic interface {
	ComputeInitialWeight(s State, target *core.Vertex) float64
	ComputeForwardWeight(s State, target *core.Vertex) float64
	ComputeReverseWeight(s State, target *core.Vertex) float64
	Reset()
}

// SearchState is a minimal State: a vertex and the options of its search.
type SearchState struct {
	At   *core.Vertex
	Opts core.TraverseOptions
}

// NewState returns a State at v.
func NewState(v *core.Vertex, opts core.TraverseOptions) SearchState {
	return SearchState{At: v, Opts: opts}
}

// Vertex implements State.
func (s SearchState) Vertex() *core.Vertex { return s.At }

// Options implements State.
func (s SearchState) Options() core.TraverseOptions { return s.Opts }

// Kind names a heuristic variant.
type Kind uint8

const (
	// KindLowerBound selects LowerBound.
	KindLowerBound Kind = iota
	// KindEuclidean selects Euclidean.
	KindEuclidean
	// KindZero selects Zero.
	KindZero
)

var kindNames = [...]string{
	KindLowerBound: "lowerbound",
	KindEuclidean:  "euclidean",
	KindZero:       "zero",
}

// String returns the name accepted by ParseKind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind parses "lowerbound", "euclidean" or "zero" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Deps are the collaborators New may need. Only KindLowerBound uses
// Cache, Graph and Direction; Logger and Metrics are optional.
type Deps struct {
	Cache     *lbcache.Cache
	Graph     *core.Graph
	Direction lowerbound.Direction
	Logger    *zap.Logger
	Metrics   metrics.Collector
}

// New builds the heuristic named by kind. For KindLowerBound a failure to
// obtain the lower-bound graph is returned as is; there is no fallback.
func New(kind Kind, deps Deps) (RemainingWeightHeuristic, error) {
	switch kind {
	case KindZero:
		return Zero{}, nil
	case KindEuclidean:
		return NewEuclidean(), nil
	case KindLowerBound:
		if deps.Cache == nil {
			return nil, ErrNilCache
		}
		var opts []Option
		if deps.Logger != nil {
			opts = append(opts, WithLogger(deps.Logger))
		}
		if deps.Metrics != nil {
			opts = append(opts, WithMetrics(deps.Metrics))
		}

		return NewLowerBound(deps.Cache, deps.Graph, deps.Direction, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
