package metric

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrUnknownMetric indicates that Lookup was given an unsupported name.
var ErrUnknownMetric = errors.New("metric: unknown metric")

// ErrDimensionMismatch indicates vectors of different lengths.
var ErrDimensionMismatch = errors.New("metric: dimension mismatch")

// Canonical metric names.
const (
	NameEuclidean   = "euclidean"
	NameCityBlock   = "cityblock"
	NameCorrelation = "correlation"
)

// Func measures the distance between two vectors of equal length.
type Func func(a, b []float64) float64

// Euclidean returns the L2 distance between a and b.
func Euclidean(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// CityBlock returns the L1 distance between a and b.
func CityBlock(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// Correlation returns 1 minus the Pearson correlation coefficient of a and b.
func Correlation(a, b []float64) float64 { return 1 - stat.Correlation(a, b, nil) }

type entry struct {
	fn      Func
	display string
}

var registry = map[string]entry{
	NameEuclidean:   {Euclidean, "Euclidean"},
	NameCityBlock:   {CityBlock, "City-block"},
	NameCorrelation: {Correlation, "Correlation"},
}

// normalize folds case and drops separators so "City-block", "city_block"
// and "cityblock" all resolve to the same metric.
func normalize(name string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
}

// Lookup returns the metric registered under name.
func Lookup(name string) (Func, error) {
	e, ok := registry[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownMetric)
	}

	return e.fn, nil
}

// Canonical returns the canonical name for name, or ErrUnknownMetric.
func Canonical(name string) (string, error) {
	n := normalize(name)
	if _, ok := registry[n]; !ok {
		return "", fmt.Errorf("Canonical(%q): %w", name, ErrUnknownMetric)
	}

	return n, nil
}

// DisplayName returns the report name of a metric ("City-block" for
// cityblock). Unknown names are returned unchanged.
func DisplayName(name string) string {
	if e, ok := registry[normalize(name)]; ok {
		return e.display
	}

	return name
}

// Names returns the canonical metric names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
