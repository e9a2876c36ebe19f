package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/moneykeeper/moneykeeper"
)

// SummaryMarkdown renders the whole-ledger totals and the per-account
// statistics blocks. The current account is marked with an asterisk.
func SummaryMarkdown(base string, total moneykeeper.Totals, accounts []moneykeeper.AccountReport, current string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger Summary")
	doc.PlainText(fmt.Sprintf("Income %s, expenses %s, net %s.",
		amount(total.Income, base),
		amount(total.Expense, base),
		signedAmount(total.Net(), base),
	))

	doc.H2("Accounts")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Account", "Entries", "Income", "Expense", "Balance"},
		Rows:   [][]string{},
	}
	for _, a := range accounts {
		name := a.Name
		if a.Name == current {
			name += " *"
		}
		table.Rows = append(table.Rows, []string{
			name,
			strconv.Itoa(a.Count),
			amount(a.Income, base),
			amount(a.Expense, base),
			amount(a.Balance, base),
		})
	}
	doc.Table(table)

	return doc.String()
}
