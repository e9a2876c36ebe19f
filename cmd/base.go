package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type baseCmd struct{}

func (*baseCmd) Name() string     { return "base" }
func (*baseCmd) Synopsis() string { return "show or switch the base currency" }
func (*baseCmd) Usage() string {
	return `mk base [<currency>]

  Without arguments, prints the base currency. With a currency code, switches
  the base and recomputes every account balance. The code must be supported
  by the current rate table.
`
}

func (c *baseCmd) SetFlags(f *flag.FlagSet) {}

func (c *baseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Println(l.BaseCurrency())
		return subcommands.ExitSuccess
	}
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one currency code expected")
		return subcommands.ExitUsageError
	}

	if err := l.SetBaseCurrency(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Base currency is now %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
