package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type newAccountCmd struct {
	use bool
}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "create a new account" }
func (*newAccountCmd) Usage() string {
	return `mk new-account [-use] <name>

  Creates a new empty account. With -use it also becomes the current account.
`
}

func (c *newAccountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.use, "use", false, "Select the new account as current.")
}

func (c *newAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one account name expected")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if _, err := l.CreateAccount(name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.use {
		if err := l.SelectAccount(name); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Created account %q\n", name)
	return subcommands.ExitSuccess
}
