// Package lvcluster clusters items connected by weighted distance edges
// into a requested number of groups, with a disjoint-set forest at its core.
//
// What is inside?
//
//	dsu/        : disjoint-set forest: path compression + union by size
//	clustering/ : Agglomerative (Kruskal halted at k components) and
//	              Centroid (seeded nearest-centroid assignment)
//	metric/     : Euclidean, City-block and Correlation distances plus
//	              the complete pairwise edge builder
//	corpus/     : document/word frequency corpus parser and vectoriser
//	report/     : plain-text clustering reports
//	store/      : optional SQLite persistence of runs and labels
//	runner/     : YAML-configured batch driver over files × methods × metrics
//	cmd/        : the lvcluster command
//
// Quick example:
//
//	edges := []clustering.Edge{
//		{U: 0, V: 1, Weight: 1},
//		{U: 1, V: 2, Weight: 2},
//		{U: 2, V: 3, Weight: 3},
//		{U: 0, V: 3, Weight: 10},
//	}
//	labels, err := clustering.Agglomerative(4, edges, 2)
//	// labels == [0 0 0 3]: {0,1,2} and {3}
//
// The clustering core is pure and single-threaded: every call owns its own
// forest (and, for Centroid, its own n×n distance table).
//
//	go get github.com/katalvlaran/lvcluster
package lvcluster
