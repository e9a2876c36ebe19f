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

type txCmd struct {
	income   bool
	expenses bool
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list entries across all accounts" }
func (*txCmd) Usage() string {
	return `mk tx [-income | -expenses] [-head <n> | -tail <n>]

  Lists entries from every account, with options for filtering and limiting
  the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.income, "income", false, "Show only income entries.")
	f.BoolVar(&c.expenses, "expenses", false, "Show only expense entries.")
	f.IntVar(&c.head, "head", 0, "Show only the first N entries.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N entries.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	if c.income && c.expenses {
		fmt.Fprintln(os.Stderr, "Error: -income and -expenses flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filter := moneykeeper.AcceptAll
	title := "Entries"
	switch {
	case c.income:
		filter = moneykeeper.ByDirection(moneykeeper.Credit)
		title = "Income"
	case c.expenses:
		filter = moneykeeper.ByDirection(moneykeeper.Debit)
		title = "Expenses"
	}

	var rows []moneykeeper.TaggedEntry
	for account, e := range l.Entries(filter) {
		rows = append(rows, moneykeeper.TaggedEntry{Account: account, Entry: e})
	}
	if c.head > 0 && len(rows) > c.head {
		rows = rows[:c.head]
	}
	if c.tail > 0 && len(rows) > c.tail {
		rows = rows[len(rows)-c.tail:]
	}

	printMarkdown(renderer.EntriesMarkdown(title, rows))
	return subcommands.ExitSuccess
}
