package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moneykeeper/moneykeeper"
)

type updateCmd struct {
	url  string
	path string
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "refresh exchange rates from the central bank provider"
}
func (*updateCmd) Usage() string {
	return `mk update [-url <address>] [-jsonpath <expr>]

  Fetches fresh exchange rates and recomputes every account balance. By
  default rates come from the daily feed of the Russian central bank. With
  -jsonpath, any provider publishing a {"<code>": <rate>} object can be used,
  e.g. -url https://api.example.com/latest -jsonpath '$.rates'.

  On a provider failure the previously cached rates are used instead.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "Rate provider address. Defaults to the central bank feed.")
	f.StringVar(&c.path, "jsonpath", "", "Path of the rates object in the provider's response.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: no arguments expected")
		return subcommands.ExitUsageError
	}

	l, err := moneykeeper.LoadLedger(*ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var src moneykeeper.RateSource = moneykeeper.CBRSource{URL: c.url}
	if c.path != "" {
		src = moneykeeper.JSONSource{URL: c.url, Path: c.path}
	}

	if !l.RefreshRates(ctx, src, *ratesFile) {
		fmt.Fprintln(os.Stderr, "Error: no fresh rates and no usable cache")
		return subcommands.ExitFailure
	}

	fmt.Printf("Rates updated, %d currencies supported\n", len(l.Currencies()))
	return subcommands.ExitSuccess
}
