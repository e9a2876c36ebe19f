package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moneykeeper/moneykeeper/renderer"
)

type topCmd struct {
	n int
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "list the largest expenses" }
func (*topCmd) Usage() string {
	return `mk top [-n <count>]

  Lists the largest expense entries across all accounts, compared by their
  value in the base currency.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 10, "Number of entries to show.")
}

func (c *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows, err := l.TopExpenses(c.n)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.EntriesMarkdown("Top Expenses", rows))
	return subcommands.ExitSuccess
}
