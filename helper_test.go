package moneykeeper

import (
	"context"

	"github.com/shopspring/decimal"
)

// RUB is a helper for test to create ruble money from const
func RUB(v float64) Money { return M(v, "RUB") }

// USD is a helper for test to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// testRates returns a table with RUB base and fixed USD/EUR rates.
func testRates() *RateTable {
	t := NewRateTable("RUB")
	t.ReplaceAll(map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(75),
		"EUR": decimal.NewFromInt(90),
	})
	return t
}

// fixedSource is a RateSource returning a canned table, or a canned error.
type fixedSource struct {
	rates map[string]decimal.Decimal
	err   error
}

func (s fixedSource) Fetch(context.Context) (map[string]decimal.Decimal, error) {
	return s.rates, s.err
}

// testLedger returns a ledger with the fixed USD/EUR rates installed.
func testLedger() *Ledger {
	l := NewLedger()
	l.RefreshRates(context.Background(), fixedSource{rates: map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(75),
		"EUR": decimal.NewFromInt(90),
	}}, "")
	return l
}

// mustEntry builds a valid entry or panics. Test data only.
func mustEntry(id int64, amount Money, category string, d Direction, day string, tags ...string) *Entry {
	e, err := NewEntry(id, amount, category, d, MustParseDate(day), "")
	if err != nil {
		panic(err)
	}
	for _, tag := range tags {
		if err := e.AddTag(tag); err != nil {
			panic(err)
		}
	}
	return e
}
