package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvcluster/runner"
)

var cmdRun = &subcommands.Command{
	UsageLine: "run <options>",
	ShortDesc: "cluster every data file with every method and metric",
	LongDesc: `Cluster every corpus matched by the data glob with every configured
method and metric, writing one report per combination into the results
directory. Flags override values from -config.`,
	CommandRun: func() subcommands.CommandRun {
		r := &runRun{}
		r.registerCommonFlags()
		r.Flags.StringVar(&r.config, "config", "", "Path to a YAML config file")
		r.Flags.StringVar(&r.data, "data", "", "Glob of corpus files (default data/test*)")
		r.Flags.StringVar(&r.out, "out", "", "Results directory (default results)")
		r.Flags.IntVar(&r.clusters, "k", 0, "Number of clusters (default 5)")
		r.Flags.Int64Var(&r.seed, "seed", 0, "Centroid selection seed (default 2)")
		r.Flags.StringVar(&r.db, "db", "", "SQLite database to store runs in")
		r.Flags.IntVar(&r.jobs, "j", 0, "Concurrent jobs (default GOMAXPROCS)")
		return r
	},
}

type runRun struct {
	commonRun
	config   string
	data     string
	out      string
	clusters int
	seed     int64
	db       string
	jobs     int
}

func (r *runRun) loadConfig() (runner.Config, error) {
	cfg := runner.DefaultConfig()
	if r.config != "" {
		var err error
		if cfg, err = runner.LoadConfig(r.config); err != nil {
			return cfg, err
		}
	}

	if r.data != "" {
		cfg.DataGlob = r.data
	}
	if r.out != "" {
		cfg.ResultsDir = r.out
	}
	if r.clusters != 0 {
		cfg.Clusters = r.clusters
	}
	if r.seed != 0 {
		cfg.Seed = r.seed
	}
	if r.db != "" {
		cfg.Database = r.db
	}
	if r.jobs != 0 {
		cfg.Parallelism = r.jobs
	}

	return cfg, cfg.Validate()
}

func (r *runRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	r.setupLogging()
	if len(args) != 0 {
		return r.done(errors.New("unexpected positional arguments"))
	}

	cfg, err := r.loadConfig()
	if err != nil {
		return r.done(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := runner.Run(ctx, cfg)
	if err != nil {
		return r.done(err)
	}
	log.Infof("%d files, %d reports written to %s", summary.Files, summary.Jobs, cfg.ResultsDir)

	return r.done(nil)
}
