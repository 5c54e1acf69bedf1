// Package clustering partitions the vertices 0..n-1 of a weighted edge list
// into a requested number of groups using a disjoint-set forest (package dsu).
//
// What & Why
//
//   - Input: a vertex count n, a list of weighted edges (distances) and a
//     target cluster count k with 1 ≤ k ≤ n.
//   - Output: a labelling of length n where labels[i] is the root of vertex
//     i's set. Two vertices share a cluster iff their labels are equal. Use
//     Relabel to compact the labels into 0..k-1.
//
// Algorithms Provided
//
//   - Agglomerative(n, edges, k) ([]int, error)
//
//   - Strategy: Kruskal's MST algorithm halted early. Edges are sorted by
//     ascending weight and their endpoint sets are merged until exactly
//     n-k merges have happened, leaving k components.
//
//   - Disconnected input is not an error: when the edges run out first the
//     labelling simply holds more than k clusters.
//
//   - Complexity: O(E log E + α(n)·E) time, O(n + E) space.
//
//   - Centroid(n, edges, k, seed) ([]int, error)
//
//   - Strategy: draw a seeded Fisher–Yates permutation of 0..n-1 and take its
//     first k entries as centroids. Every other ("periphery") vertex u joins
//     the centroid v minimizing the weight of a supplied edge (u, v). This is
//     a single nearest-centroid pass, not Lloyd's iteration.
//
//   - Only edges whose V endpoint is a centroid are consulted; an edge's
//     direction therefore matters here and nowhere else.
//
//   - Complexity: O(n² + E) time and O(n²) space for the dense distance table.
//
// Determinism
//
//   - Agglomerative sorts stably, so equal-weight edges keep their input order.
//   - Centroid is a pure function of its inputs and seed; seed 0 is mapped to
//     a fixed default seed.
//
// Error Conditions
//
//   - ErrInvalidVertexCount  : n < 0.
//   - ErrInvalidClusterCount : k < 1 or k > n (n == 0 with k == 0 is the empty problem).
//   - ErrEdgeOutOfRange      : an edge endpoint lies outside [0, n).
//   - ErrUnknownMethod       : Compute with a method other than MethodAgglomerative / MethodCentroid.
package clustering
