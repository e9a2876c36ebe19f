// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moneykeeper/moneykeeper"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&txCmd{},
	&tagsCmd{},
	&topCmd{},
	&summaryCmd{},
	&categoryCmd{},
	&monthlyCmd{},
	&currencyCmd{},
	&accountsCmd{},
	&newAccountCmd{},
	&deleteAccountCmd{},
	&renameAccountCmd{},
	&useCmd{},
	&updateCmd{},
	&convertCmd{},
	&baseCmd{},
	&checkCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "moneykeeper.dat", "Path to the ledger file")
var ratesFile = flag.String("rates-file", "rates.json", "Path to the cached exchange rates file")

// loadLedger reads the ledger and the cached exchange rates. A missing rates
// cache is not an error: balances stay in native units until an update.
func loadLedger() (*moneykeeper.Ledger, error) {
	l, err := moneykeeper.LoadLedger(*ledgerFile)
	if err != nil {
		return nil, err
	}
	if err := l.LoadCachedRates(*ratesFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no usable rates cache, run 'update': %v\n", err)
	}
	return l, nil
}

// saveLedger persists the ledger back to the app ledger file.
func saveLedger(l *moneykeeper.Ledger) subcommands.ExitStatus {
	if err := moneykeeper.SaveLedger(*ledgerFile, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger to %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
