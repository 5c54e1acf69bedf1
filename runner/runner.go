package runner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	logging "github.com/op/go-logging"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/corpus"
	"github.com/katalvlaran/lvcluster/metric"
	"github.com/katalvlaran/lvcluster/report"
	"github.com/katalvlaran/lvcluster/store"
)

var log = logging.MustGetLogger("runner")

// Summary describes a finished batch.
type Summary struct {
	Files   int
	Jobs    int
	Reports []string // written report paths, sorted
	RunIDs  []int64  // stored run ids, empty without a database
}

// edgeSet is the shared input of every method for one (file, metric).
type edgeSet struct {
	source  string
	metric  string
	texts   int
	edges   []clustering.Edge
	elapsed time.Duration
}

// Run executes the whole batch described by cfg.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	methods, metrics := canonicalMethods(cfg.Methods), canonicalMetrics(cfg.Metrics)

	files, err := filepath.Glob(cfg.DataGlob)
	if err != nil {
		return nil, errors.Wrapf(err, "glob %q", cfg.DataGlob)
	}
	sort.Strings(files)
	summary := &Summary{Files: len(files)}
	if len(files) == 0 {
		log.Warningf("no data files match %q", cfg.DataGlob)
		return summary, nil
	}

	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create results dir %s", cfg.ResultsDir)
	}

	var st *store.Store
	if cfg.Database != "" {
		db, err := store.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if st, err = store.New(ctx, db); err != nil {
			return nil, err
		}
	}

	parent := ctx
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers())
	var mu sync.Mutex

dispatch:
	for _, file := range files {
		vectors, err := loadVectors(file, cfg)
		if err != nil {
			eg.Go(func() error { return err })
			break
		}
		log.Infof("%s: %d texts, %d words", file, len(vectors), dimensions(vectors))

		for _, name := range metrics {
			if ctx.Err() != nil {
				break dispatch
			}
			set, err := buildEdges(file, name, vectors)
			if err != nil {
				eg.Go(func() error { return err })
				break dispatch
			}

			for _, method := range methods {
				method := method
				eg.Go(func() error {
					rep, labels, err := clusterEdges(ctx, set, method, cfg)
					if err != nil {
						return err
					}

					path := filepath.Join(cfg.ResultsDir,
						report.FileName(set.source, clustering.DisplayName(method), metric.DisplayName(set.metric)))
					if err := os.WriteFile(path, []byte(rep.String()), 0o644); err != nil {
						return errors.Wrapf(err, "write report %s", path)
					}

					var id int64
					if st != nil {
						if id, err = st.SaveRun(ctx, toRun(rep, set, method, cfg, labels)); err != nil {
							return err
						}
					}

					mu.Lock()
					defer mu.Unlock()
					summary.Jobs++
					summary.Reports = append(summary.Reports, path)
					if st != nil {
						summary.RunIDs = append(summary.RunIDs, id)
					}
					log.Infof("%s: %d clusters in %s", path, len(rep.Groups), rep.Elapsed.Round(time.Millisecond))

					return nil
				})
			}
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		return nil, errors.Wrap(err, "runner: interrupted")
	}
	sort.Strings(summary.Reports)

	return summary, nil
}

// ClusterFile runs a single (file, method, metric) job and returns its
// report and raw labelling without writing anything.
func ClusterFile(ctx context.Context, path, method, metricName string, cfg Config) (*report.Report, []int, error) {
	m, err := CanonicalMethod(method)
	if err != nil {
		return nil, nil, err
	}
	name, err := metric.Canonical(metricName)
	if err != nil {
		return nil, nil, err
	}

	vectors, err := loadVectors(path, cfg)
	if err != nil {
		return nil, nil, err
	}
	set, err := buildEdges(path, name, vectors)
	if err != nil {
		return nil, nil, err
	}

	return clusterEdges(ctx, set, m, cfg)
}

func loadVectors(path string, cfg Config) ([][]float64, error) {
	c, err := corpus.ParseFile(path, corpus.WithFrequencyBounds(cfg.LowerBound, cfg.UpperBound))
	if err != nil {
		return nil, err
	}

	return c.Vectors(), nil
}

func buildEdges(source, name string, vectors [][]float64) (*edgeSet, error) {
	fn, err := metric.Lookup(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	edges, err := metric.PairwiseEdges(vectors, fn)
	if err != nil {
		return nil, errors.WithMessage(err, source)
	}
	elapsed := time.Since(start)
	log.Debugf("%s: built %s %s edges in %s", source, humanize.Comma(int64(len(edges))), name, elapsed)

	return &edgeSet{source: source, metric: name, texts: len(vectors), edges: edges, elapsed: elapsed}, nil
}

func clusterEdges(ctx context.Context, set *edgeSet, method string, cfg Config) (*report.Report, []int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if method == clustering.MethodCentroid {
		log.Debugf("%s: centroid table needs %s", set.source, humanize.Bytes(uint64(8*set.texts*set.texts)))
	}

	start := time.Now()
	opts := clustering.NewOptions(clustering.WithMethod(method), clustering.WithSeed(cfg.Seed))
	labels, err := clustering.Compute(set.texts, set.edges, cfg.Clusters, opts)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s %s/%s", set.source, method, set.metric)
	}

	rep := &report.Report{
		Method:   clustering.DisplayName(method),
		Clusters: cfg.Clusters,
		Source:   set.source,
		Metric:   metric.DisplayName(set.metric),
		Texts:    set.texts,
		Edges:    len(set.edges),
		Groups:   report.Groups(labels),
		Elapsed:  set.elapsed + time.Since(start),
	}

	return rep, labels, nil
}

func toRun(rep *report.Report, set *edgeSet, method string, cfg Config, labels []int) store.Run {
	return store.Run{
		Source:   set.source,
		Method:   method,
		Metric:   set.metric,
		Clusters: cfg.Clusters,
		Seed:     cfg.Seed,
		Texts:    rep.Texts,
		Edges:    rep.Edges,
		Groups:   len(rep.Groups),
		Elapsed:  rep.Elapsed,
		Labels:   labels,
	}
}

func (c Config) workers() int {
	if c.Parallelism > 0 {
		return c.Parallelism
	}

	return runtime.GOMAXPROCS(0)
}

// canonicalMethods and canonicalMetrics assume a validated config.
func canonicalMethods(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		m, _ := CanonicalMethod(n)
		out = append(out, m)
	}

	return out
}

func canonicalMetrics(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		m, _ := metric.Canonical(n)
		out = append(out, m)
	}

	return out
}

func dimensions(vectors [][]float64) int {
	if len(vectors) == 0 {
		return 0
	}

	return len(vectors[0])
}
