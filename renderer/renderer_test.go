package renderer

import (
	"strings"
	"testing"

	"github.com/moneykeeper/moneykeeper"
	"github.com/shopspring/decimal"
)

func mustEntry(t *testing.T, id int64, amount moneykeeper.Money, category string, d moneykeeper.Direction, day, desc string) *moneykeeper.Entry {
	t.Helper()
	e, err := moneykeeper.NewEntry(id, amount, category, d, moneykeeper.MustParseDate(day), desc)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestEntriesMarkdown(t *testing.T) {
	rows := []moneykeeper.TaggedEntry{
		{Account: "General", Entry: mustEntry(t, 1, moneykeeper.M(100, "RUB"), "salary", moneykeeper.Credit, "2024-07-01", "july pay")},
		{Account: "wallet", Entry: mustEntry(t, 2, moneykeeper.M(9.99, "USD"), "food", moneykeeper.Debit, "2024-07-02", "lunch")},
	}
	rows[1].Entry.AddTag("work")

	got := EntriesMarkdown("Entries", rows)
	for _, want := range []string{
		"# Entries",
		"Id",
		"2024-07-01",
		"wallet",
		"salary",
		"#work",
		"2 entries.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("EntriesMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestEntriesMarkdown_Empty(t *testing.T) {
	got := EntriesMarkdown("Entries", nil)
	if !strings.Contains(got, "No entries.") {
		t.Errorf("EntriesMarkdown(nil) = %q", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	total := moneykeeper.Totals{
		Income:  decimal.NewFromInt(101800),
		Expense: decimal.NewFromInt(8000),
	}
	accounts := []moneykeeper.AccountReport{
		{Name: "General", Count: 2, Balance: decimal.NewFromInt(99500)},
		{Name: "wallet", Count: 2, Balance: decimal.NewFromInt(-5700)},
	}

	got := SummaryMarkdown("RUB", total, accounts, "wallet")
	for _, want := range []string{
		"# Ledger Summary",
		"net +93800.00 RUB",
		"## Accounts",
		"General",
		"wallet *",
		"-5700.00 RUB",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestBreakdownMarkdown(t *testing.T) {
	rows := map[string]moneykeeper.Totals{
		"2024-07": {Income: decimal.NewFromInt(100000), Expense: decimal.NewFromInt(8000)},
		"2024-08": {Income: decimal.NewFromInt(1800)},
	}
	got := BreakdownMarkdown("Monthly", "Month", "RUB", rows)

	july := strings.Index(got, "2024-07")
	august := strings.Index(got, "2024-08")
	if july < 0 || august < 0 || august < july {
		t.Errorf("BreakdownMarkdown() keys missing or unsorted:\n%s", got)
	}
	if !strings.Contains(got, "+92000.00 RUB") {
		t.Errorf("BreakdownMarkdown() missing July net:\n%s", got)
	}
}

func TestCurrenciesMarkdown(t *testing.T) {
	rows := map[string]moneykeeper.CurrencyTotals{
		"USD": {
			Totals:    moneykeeper.Totals{Expense: decimal.NewFromInt(100)},
			NetInBase: decimal.NewFromInt(-7500),
		},
	}
	got := CurrenciesMarkdown("RUB", rows)
	for _, want := range []string{"USD", "100.00 USD", "-7500.00 RUB"} {
		if !strings.Contains(got, want) {
			t.Errorf("CurrenciesMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
