package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moneykeeper/moneykeeper/renderer"
)

type categoryCmd struct{}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "display income and expenses by category" }
func (*categoryCmd) Usage() string {
	return `mk category

  Displays base-currency income and expense totals grouped by category.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows, err := l.ByCategory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BreakdownMarkdown("Categories", "Category", l.BaseCurrency(), rows))
	return subcommands.ExitSuccess
}
