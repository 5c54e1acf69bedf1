// Package metric supplies the distance functions used to turn document
// vectors into weighted edges, and the pairwise edge builder itself.
//
// Metrics:
//
//	euclidean   L2 distance, ‖a−b‖₂
//	cityblock   L1 (Manhattan) distance, Σ|aᵢ−bᵢ|
//	correlation 1 − Pearson correlation of a and b; NaN when either
//	            vector is constant (zero variance)
//
// PairwiseEdges emits every unordered pair {i,j}, i<j, exactly once as
// clustering.Edge{U: i, V: j}, in lexicographic order.
package metric
