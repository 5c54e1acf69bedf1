// Package report renders a clustering run as the plain-text summary written
// to the results directory, one file per (data file, method, metric).
package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Group is one cluster of a labelling.
type Group struct {
	// ID is the raw label (forest root) shared by the members.
	ID int
	// Size is len(Members).
	Size int
	// Members are 1-based text ids in ascending order.
	Members []int
}

// Groups collects labels into clusters, ordered by first appearance.
func Groups(labels []int) []Group {
	index := make(map[int]int)
	var groups []Group
	for i, l := range labels {
		g, ok := index[l]
		if !ok {
			g = len(groups)
			index[l] = g
			groups = append(groups, Group{ID: l})
		}
		groups[g].Members = append(groups[g].Members, i+1)
		groups[g].Size++
	}

	return groups
}

// Report describes one clustering run.
type Report struct {
	Method   string // display name, e.g. "Agglomerative"
	Clusters int    // requested cluster count
	Source   string // data file path
	Metric   string // display name, e.g. "City-block"
	Texts    int
	Edges    int
	Groups   []Group
	Elapsed  time.Duration
}

// WriteTo writes the report in its text layout. It implements io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Clustering method: %s\nNumber of clusters: %d\nData source: %s\n", r.Method, r.Clusters, r.Source)
	fmt.Fprintf(&b, "Metric: %s\n", r.Metric)
	fmt.Fprintf(&b, "Analysing %d texts...\n", r.Texts)
	fmt.Fprintf(&b, "Built %d edges...\n", r.Edges)
	b.WriteString("Clusters:\n")
	b.WriteString("cluster id,cluster size,cluster texts\n")
	for _, g := range r.Groups {
		fmt.Fprintf(&b, "%d,%d,%s\n", g.ID, g.Size, formatMembers(g.Members))
	}
	fmt.Fprintf(&b, "\nRunning time: %.2fs", r.Elapsed.Seconds())

	return b.WriteTo(w)
}

// String returns the rendered report.
func (r *Report) String() string {
	var sb strings.Builder
	_, _ = r.WriteTo(&sb)

	return sb.String()
}

// formatMembers renders ids as "[1, 2, 3]".
func formatMembers(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// FileName returns "<stem>-<method>-<metric>.txt", where stem is the base
// name of source without its last extension.
func FileName(source, method, metric string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return fmt.Sprintf("%s-%s-%s.txt", stem, method, metric)
}
