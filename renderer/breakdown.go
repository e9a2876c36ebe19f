package renderer

import (
	"bytes"
	"maps"
	"slices"

	md "github.com/nao1215/markdown"

	"github.com/moneykeeper/moneykeeper"
)

// BreakdownMarkdown renders a keyed income/expense breakdown (by category, by
// month) as a markdown table, keys sorted.
func BreakdownMarkdown(title, keyHeader, base string, rows map[string]moneykeeper.Totals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(rows) == 0 {
		doc.PlainText("No entries.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{keyHeader, "Income", "Expense", "Net"},
		Rows:   [][]string{},
	}
	for _, key := range slices.Sorted(maps.Keys(rows)) {
		t := rows[key]
		table.Rows = append(table.Rows, []string{
			key,
			amount(t.Income, base),
			amount(t.Expense, base),
			signedAmount(t.Net(), base),
		})
	}
	doc.Table(table)
	return doc.String()
}

// CurrenciesMarkdown renders the per-currency breakdown: native-units totals
// and the net converted to the base currency.
func CurrenciesMarkdown(base string, rows map[string]moneykeeper.CurrencyTotals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Currencies")
	if len(rows) == 0 {
		doc.PlainText("No entries.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Currency", "Income", "Expense", "Net", "Net in " + base},
		Rows:   [][]string{},
	}
	for _, code := range slices.Sorted(maps.Keys(rows)) {
		ct := rows[code]
		table.Rows = append(table.Rows, []string{
			code,
			amount(ct.Income, code),
			amount(ct.Expense, code),
			signedAmount(ct.Net(), code),
			signedAmount(ct.NetInBase, base),
		})
	}
	doc.Table(table)
	return doc.String()
}

// RatesMarkdown renders the ledger's exchange rate table, codes sorted. One
// unit of each currency is worth the listed amount of the base.
func RatesMarkdown(l *moneykeeper.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Exchange Rates")
	codes := l.Currencies()
	if len(codes) == 0 {
		doc.PlainText("No rates loaded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Currency", "Rate to " + l.BaseCurrency()},
		Rows:      [][]string{},
	}
	for _, code := range codes {
		rate, _ := l.Rate(code)
		table.Rows = append(table.Rows, []string{code, rate.StringFixed(4)})
	}
	doc.Table(table)
	return doc.String()
}
