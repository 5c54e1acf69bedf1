package clustering

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvcluster/dsu"
)

// Centroid clusters nNodes vertices around nClusters randomly chosen
// centroids.
//
// The first nClusters entries of Permutation(nNodes, seed) are the
// centroids. A dense nNodes×nNodes table starts at +Inf and receives
// table[u][v] = w for every edge (u, v, w) whose V end is a centroid; later
// duplicates overwrite earlier ones. Each periphery vertex u then joins the
// column with the smallest entry in row u, lowest index first. A row that is
// entirely +Inf (no edge to any centroid) resolves to column 0, i.e. the
// vertex is merged with vertex 0's set rather than left alone. A NaN entry
// beats every number: the first NaN column in a row is chosen.
//
// Centroids are never merged with each other directly, so when every
// vertex is a centroid (nClusters == nNodes) the result is all singletons.
//
// Complexity: O(n² + E) time, O(n²) memory for the table.
func Centroid(nNodes int, edges []Edge, nClusters int, seed int64) ([]int, error) {
	if err := validate(nNodes, edges, nClusters); err != nil {
		return nil, err
	}
	forest, err := dsu.New(nNodes)
	if err != nil {
		return nil, err
	}
	if nNodes == 0 {
		return forest.Labelling(), nil
	}

	isCentroid := make([]bool, nNodes)
	for _, v := range Permutation(nNodes, seed)[:nClusters] {
		isCentroid[v] = true
	}

	// Allocated once, sized up front.
	cells := make([]float64, nNodes*nNodes)
	for i := range cells {
		cells[i] = math.Inf(1)
	}
	table := mat.NewDense(nNodes, nNodes, cells)
	for _, e := range edges {
		if isCentroid[e.V] {
			table.Set(e.U, e.V, e.Weight)
		}
	}

	for u := 0; u < nNodes; u++ {
		if isCentroid[u] {
			continue
		}
		nearest := nearestColumn(table.RawRowView(u))

		ru, err := forest.Find(u)
		if err != nil {
			return nil, err
		}
		rv, err := forest.Find(nearest)
		if err != nil {
			return nil, err
		}
		if ru == rv {
			continue
		}
		if _, err = forest.Union(ru, rv); err != nil {
			return nil, err
		}
	}

	return forest.Labelling(), nil
}

// nearestColumn returns the index of the first NaN in row, or else the
// lowest index holding the minimum.
func nearestColumn(row []float64) int {
	for i, w := range row {
		if math.IsNaN(w) {
			return i
		}
	}

	return floats.MinIdx(row)
}
