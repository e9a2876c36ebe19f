package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts" }
func (*accountsCmd) Usage() string {
	return `mk accounts

  Lists every account with its entry count. The current account is marked
  with an asterisk.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	current := l.CurrentAccount().Name()
	for a := range l.Accounts() {
		mark := " "
		if a.Name() == current {
			mark = "*"
		}
		fmt.Printf("%s %s (%d entries)\n", mark, a.Name(), a.Len())
	}
	return subcommands.ExitSuccess
}
