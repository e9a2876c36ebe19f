package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moneykeeper/moneykeeper/renderer"
)

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display income and expenses by month" }
func (*monthlyCmd) Usage() string {
	return `mk monthly

  Displays base-currency income and expense totals grouped by month.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows, err := l.ByMonth()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BreakdownMarkdown("Monthly", "Month", l.BaseCurrency(), rows))
	return subcommands.ExitSuccess
}
