package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/moneykeeper/moneykeeper/renderer"
)

type currencyCmd struct {
	rates bool
}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "display income and expenses by currency" }
func (*currencyCmd) Usage() string {
	return `mk currency [-rates]

  Displays income and expense totals grouped by currency, in native units,
  with the net converted to the base currency. With -rates, also shows the
  exchange rate table.
`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.rates, "rates", false, "Also show the exchange rate table.")
}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows, err := l.ByCurrency()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString(renderer.CurrenciesMarkdown(l.BaseCurrency(), rows))
	if c.rates {
		b.WriteString("\n")
		b.WriteString(renderer.RatesMarkdown(l))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
