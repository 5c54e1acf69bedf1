// Package clustering defines the edge type, configuration options and
// sentinel errors shared by both clusterers.
package clustering

import (
	"errors"
	"fmt"
)

// ErrInvalidVertexCount indicates a negative vertex count.
var ErrInvalidVertexCount = errors.New("clustering: negative vertex count")

// ErrInvalidClusterCount indicates that the requested number of clusters is
// outside [1, n].
var ErrInvalidClusterCount = errors.New("clustering: cluster count out of range")

// ErrEdgeOutOfRange indicates that an edge references a vertex outside [0, n).
var ErrEdgeOutOfRange = errors.New("clustering: edge endpoint out of range")

// ErrUnknownMethod indicates that Compute was asked for an unsupported method.
var ErrUnknownMethod = errors.New("clustering: unknown method")

// Edge is a weighted pair of vertices. Weight is a distance: smaller means
// closer. For the centroid method U is the periphery end and V the
// potential centroid end.
type Edge struct {
	U, V   int
	Weight float64
}

// MethodAgglomerative selects Agglomerative (truncated Kruskal).
const MethodAgglomerative = "agglomerative"

// MethodCentroid selects Centroid (single nearest-centroid pass).
const MethodCentroid = "centroid"

// DefaultSeed is the centroid seed used by DefaultOptions.
const DefaultSeed int64 = 2

// Methods lists the supported methods in their canonical order.
func Methods() []string {
	return []string{MethodAgglomerative, MethodCentroid}
}

// DisplayName returns the human-readable name used in reports and result
// file names. Unknown methods are returned unchanged.
func DisplayName(method string) string {
	switch method {
	case MethodAgglomerative:
		return "Agglomerative"
	case MethodCentroid:
		return "k-Means"
	default:
		return method
	}
}

// Options configures Compute.
//
// Fields:
//
//	Method string: MethodAgglomerative or MethodCentroid.
//	Seed   int64 : centroid selection seed; ignored by Agglomerative.
type Options struct {
	Method string
	Seed   int64
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the clustering method.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithSeed returns an Option that sets the centroid selection seed.
func WithSeed(seed int64) Option {
	return func(opts *Options) {
		opts.Seed = seed
	}
}

// DefaultOptions returns Options for Agglomerative with DefaultSeed.
func DefaultOptions() Options {
	return Options{
		Method: MethodAgglomerative,
		Seed:   DefaultSeed,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute dispatches to the clusterer selected by opts.Method.
//
//	– MethodAgglomerative: Agglomerative(nNodes, edges, nClusters).
//	– MethodCentroid:      Centroid(nNodes, edges, nClusters, opts.Seed).
//	– Otherwise:           ErrUnknownMethod.
func Compute(nNodes int, edges []Edge, nClusters int, opts Options) ([]int, error) {
	switch opts.Method {
	case MethodAgglomerative:
		return Agglomerative(nNodes, edges, nClusters)
	case MethodCentroid:
		return Centroid(nNodes, edges, nClusters, opts.Seed)
	default:
		return nil, fmt.Errorf("Compute(%q): %w", opts.Method, ErrUnknownMethod)
	}
}

// validate checks the shared preconditions of both clusterers.
func validate(nNodes int, edges []Edge, nClusters int) error {
	if nNodes < 0 {
		return fmt.Errorf("n=%d: %w", nNodes, ErrInvalidVertexCount)
	}
	if nNodes == 0 && nClusters == 0 {
		return nil
	}
	if nClusters < 1 || nClusters > nNodes {
		return fmt.Errorf("k=%d not in [1,%d]: %w", nClusters, nNodes, ErrInvalidClusterCount)
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= nNodes || e.V < 0 || e.V >= nNodes {
			return fmt.Errorf("edge %d (%d,%d) with n=%d: %w", i, e.U, e.V, nNodes, ErrEdgeOutOfRange)
		}
	}

	return nil
}
