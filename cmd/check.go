package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify and repair cached account balances" }
func (*checkCmd) Usage() string {
	return `mk check

  Verifies every account's cached balance against a fresh base-currency
  recomputation and repairs the ones that drifted.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fixed := l.Check()
	if len(fixed) == 0 {
		fmt.Println("All account balances are consistent.")
		return subcommands.ExitSuccess
	}
	for _, name := range fixed {
		fmt.Printf("Corrected balance of %q\n", name)
	}
	return subcommands.ExitSuccess
}
