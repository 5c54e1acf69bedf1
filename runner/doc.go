// Package runner drives batch clustering: it parses every corpus matched by
// a glob, builds the pairwise edge set once per (file, metric), clusters it
// with every configured method and writes one report per combination.
//
// Jobs run on an errgroup bounded by Config.Parallelism; the first failing
// job cancels the rest. When Config.Database is set every run is also
// stored through package store.
package runner
