package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/moneykeeper/moneykeeper"
)

type convertCmd struct {
	to string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `mk convert [-to <currency>] <amount> <currency>

  Converts an amount using the current exchange rates. The target defaults to
  the base currency.

Usage Examples:
$ mk convert 100 USD
$ mk convert -to EUR 5000 RUB
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Target currency. Defaults to the base currency.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: amount and currency expected")
		return subcommands.ExitUsageError
	}
	value, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad amount %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	got, err := l.Convert(moneykeeper.M(value, f.Arg(1)), c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s %s = %s %s\n", f.Arg(0), f.Arg(1), got.Amount().StringFixed(2), got.Currency())
	return subcommands.ExitSuccess
}
