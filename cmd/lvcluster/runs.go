package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvcluster/store"
)

var cmdRuns = &subcommands.Command{
	UsageLine: "runs -db <path>",
	ShortDesc: "list stored runs",
	LongDesc:  "List the runs stored in a SQLite database by 'run -db', newest first.",
	CommandRun: func() subcommands.CommandRun {
		r := &runsRun{}
		r.registerCommonFlags()
		r.Flags.StringVar(&r.db, "db", "", "SQLite database written by 'run -db'")
		return r
	},
}

type runsRun struct {
	commonRun
	db string
}

func (r *runsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	r.setupLogging()
	if r.db == "" {
		return r.done(errors.New("-db is required"))
	}
	if _, err := os.Stat(r.db); err != nil {
		return r.done(errors.Wrap(err, "database"))
	}

	ctx := context.Background()
	db, err := store.Open(r.db)
	if err != nil {
		return r.done(err)
	}
	defer db.Close()
	st, err := store.New(ctx, db)
	if err != nil {
		return r.done(err)
	}

	runs, err := st.Runs(ctx)
	if err != nil {
		return r.done(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tMETHOD\tMETRIC\tK\tGROUPS\tTEXTS\tEDGES\tTIME\tWHEN")
	for _, run := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			run.ID, run.Source, run.Method, run.Metric, run.Clusters, run.Groups,
			humanize.Comma(int64(run.Texts)), humanize.Comma(int64(run.Edges)),
			run.Elapsed, humanize.Time(run.CreatedAt))
	}

	return r.done(w.Flush())
}
