package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type renameAccountCmd struct{}

func (*renameAccountCmd) Name() string     { return "rename-account" }
func (*renameAccountCmd) Synopsis() string { return "rename an account" }
func (*renameAccountCmd) Usage() string {
	return `mk rename-account <old> <new>

  Moves every entry of <old> into a new account named <new>. Renaming the
  reserved default account moves its entries but keeps the account, empty.
`
}

func (c *renameAccountCmd) SetFlags(f *flag.FlagSet) {}

func (c *renameAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: old and new account names expected")
		return subcommands.ExitUsageError
	}

	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := l.RenameAccount(f.Arg(0), f.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Renamed account %q to %q\n", f.Arg(0), f.Arg(1))
	return subcommands.ExitSuccess
}
