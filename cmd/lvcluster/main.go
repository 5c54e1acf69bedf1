// Command lvcluster clusters document/word frequency corpora.
//
//	lvcluster run -config lvcluster.yaml
//	lvcluster cluster -method centroid -metric cityblock -k 4 data/test1.txt
//	lvcluster runs -db runs.sqlite
package main

import (
	"fmt"
	"os"

	"github.com/maruel/subcommands"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("lvcluster")

const logFormat = `%{color}[%{time:15:04:05.000} %{module} %{shortfile} %{level:.4s}]%{color:reset} %{message}`

var application = &subcommands.DefaultApplication{
	Name:  "lvcluster",
	Title: "Cluster text corpora with union-find based agglomerative and centroid methods.",
	Commands: []*subcommands.Command{
		cmdRun,
		cmdCluster,
		cmdRuns,

		{}, // a separator
		subcommands.CmdHelp,
	},
}

// commonRun holds the flags every subcommand shares.
type commonRun struct {
	subcommands.CommandRunBase
	verbose bool
}

func (c *commonRun) registerCommonFlags() {
	c.Flags.BoolVar(&c.verbose, "v", false, "Log debug messages")
}

// setupLogging installs a leveled, formatted stderr backend.
func (c *commonRun) setupLogging() {
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter(logFormat),
	)
	leveled := logging.AddModuleLevel(backend)
	level := logging.INFO
	if c.verbose {
		level = logging.DEBUG
	}
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

// done reports err, if any, and returns the process exit code.
func (c *commonRun) done(err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(subcommands.Run(application, nil))
}
