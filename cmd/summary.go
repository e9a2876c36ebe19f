package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moneykeeper/moneykeeper"
	"github.com/moneykeeper/moneykeeper/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display whole-ledger totals and per-account statistics" }
func (*summaryCmd) Usage() string {
	return `mk summary

  Displays the total income, expenses and net of the whole ledger, and a
  statistics block for every account, all in the base currency.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	total, err := l.TotalBalance()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var accounts []moneykeeper.AccountReport
	for a := range l.Accounts() {
		report, err := l.AccountStats(a.Name())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		accounts = append(accounts, report)
	}

	current := l.CurrentAccount().Name()
	printMarkdown(renderer.SummaryMarkdown(l.BaseCurrency(), total, accounts, current))
	return subcommands.ExitSuccess
}
