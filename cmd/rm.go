package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type rmCmd struct {
	account string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an entry by id" }
func (*rmCmd) Usage() string {
	return `mk rm [-account <name>] <id>...

  Removes entries from the current account (or from -account) by id.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account to remove from. Defaults to the current account.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one entry id expected")
		return subcommands.ExitUsageError
	}

	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	account := l.CurrentAccount()
	if c.account != "" {
		if account = l.Account(c.account); account == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.account)
			return subcommands.ExitUsageError
		}
	}

	removed := 0
	for _, arg := range f.Args() {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad entry id %q\n", arg)
			return subcommands.ExitUsageError
		}
		if !account.Remove(id) {
			fmt.Fprintf(os.Stderr, "Warning: no entry %d in %q\n", id, account.Name())
			continue
		}
		removed++
	}

	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Removed %d entries from %q\n", removed, account.Name())
	return subcommands.ExitSuccess
}
