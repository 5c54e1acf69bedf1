package clustering

// Relabel maps raw root labels onto dense ids 0..k-1, numbering clusters in
// the order their first member appears. The input is not modified.
func Relabel(labels []int) []int {
	ids := make(map[int]int)
	out := make([]int, len(labels))
	for i, l := range labels {
		id, ok := ids[l]
		if !ok {
			id = len(ids)
			ids[l] = id
		}
		out[i] = id
	}

	return out
}

// Count returns the number of distinct labels.
func Count(labels []int) int {
	seen := make(map[int]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}

	return len(seen)
}
