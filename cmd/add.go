package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/moneykeeper/moneykeeper"
)

type addCmd struct {
	amount   float64
	currency string
	category string
	date     string
	desc     string
	account  string
	income   bool
	tags     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an expense or income entry" }
func (*addCmd) Usage() string {
	return `mk add -a <amount> -cat <category> [-c <currency>] [-d <date>] [-desc <text>] [-tags <t1,t2>] [-income] [-account <name>]

  Records an entry in the current account (or in -account). Entries are
  expenses unless -income is given. The amount must be positive; the currency
  defaults to the ledger's base currency.

Usage Examples:
# 450 rubles for lunch, tagged
$ mk add -a 450 -cat food -desc "business lunch" -tags work,lunch

# salary in dollars
$ mk add -a 2000 -c USD -cat salary -income
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount of the entry, always positive.")
	f.StringVar(&c.currency, "c", "", "Currency code. Defaults to the base currency.")
	f.StringVar(&c.category, "cat", "", "Category of the entry.")
	f.StringVar(&c.date, "d", moneykeeper.Today().String(), "Date of the entry, YYYY-MM-DD.")
	f.StringVar(&c.desc, "desc", "", "Free-text description.")
	f.StringVar(&c.account, "account", "", "Account to record into. Defaults to the current account.")
	f.BoolVar(&c.income, "income", false, "Record an income instead of an expense.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := moneykeeper.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	direction := moneykeeper.Debit
	if c.income {
		direction = moneykeeper.Credit
	}
	e, err := l.NewEntry(moneykeeper.M(c.amount, c.currency), c.category, direction, day, c.desc)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	for _, tag := range strings.Split(c.tags, ",") {
		if tag = strings.TrimSpace(tag); tag == "" {
			continue
		}
		if err := e.AddTag(tag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	if c.account != "" {
		err = l.AppendTo(c.account, e)
	} else {
		err = l.Append(e)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Recorded entry %d: %s\n", e.ID(), e.Summary())
	return subcommands.ExitSuccess
}
