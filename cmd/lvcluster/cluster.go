package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/corpus"
	"github.com/katalvlaran/lvcluster/metric"
	"github.com/katalvlaran/lvcluster/runner"
)

var cmdCluster = &subcommands.Command{
	UsageLine: "cluster <options> <corpus file>",
	ShortDesc: "cluster one corpus and print the report",
	LongDesc:  "Cluster a single corpus file with one method and one metric and print the report to stdout.",
	CommandRun: func() subcommands.CommandRun {
		r := &clusterRun{}
		r.registerCommonFlags()
		r.Flags.StringVar(&r.method, "method", clustering.MethodAgglomerative, "Clustering method: agglomerative or centroid")
		r.Flags.StringVar(&r.metric, "metric", metric.NameEuclidean, "Distance metric: euclidean, cityblock or correlation")
		r.Flags.IntVar(&r.clusters, "k", 5, "Number of clusters")
		r.Flags.Int64Var(&r.seed, "seed", clustering.DefaultSeed, "Centroid selection seed")
		r.Flags.IntVar(&r.lower, "lower", corpus.DefaultLowerBound, "Lowest corpus-wide word frequency kept")
		r.Flags.IntVar(&r.upper, "upper", corpus.DefaultUpperBound, "Highest word frequency kept")
		r.Flags.BoolVar(&r.labels, "labels", false, "Also print the compact label of every text")
		return r
	},
}

type clusterRun struct {
	commonRun
	method   string
	metric   string
	clusters int
	seed     int64
	lower    int
	upper    int
	labels   bool
}

func (r *clusterRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	r.setupLogging()
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one corpus file"))
	}

	cfg := runner.DefaultConfig()
	cfg.Clusters = r.clusters
	cfg.Seed = r.seed
	cfg.LowerBound, cfg.UpperBound = r.lower, r.upper
	if cfg.LowerBound > cfg.UpperBound {
		return r.done(errors.Errorf("-lower %d is above -upper %d", r.lower, r.upper))
	}

	rep, labels, err := runner.ClusterFile(context.Background(), args[0], r.method, r.metric, cfg)
	if err != nil {
		return r.done(err)
	}
	log.Debugf("%s texts, %s edges", humanize.Comma(int64(rep.Texts)), humanize.Comma(int64(rep.Edges)))

	if _, err := rep.WriteTo(os.Stdout); err != nil {
		return r.done(err)
	}
	fmt.Println()
	if r.labels {
		for i, l := range clustering.Relabel(labels) {
			fmt.Printf("%d\t%d\n", i+1, l)
		}
	}

	return r.done(nil)
}
