package moneykeeper

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// This file is the read side: pure aggregations over the whole ledger. Every
// currency-sensitive aggregate converts entries to the base currency and so
// propagates ErrUnknownCurrency when a referenced currency is missing from
// the rate table. Reports take the ledger read lock, so they never observe a
// half-applied rate refresh.

// Totals is an income/expense pair, with the net derived.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (t Totals) Net() decimal.Decimal { return t.Income.Sub(t.Expense) }

func (t *Totals) add(signed decimal.Decimal) {
	if signed.IsNegative() {
		t.Expense = t.Expense.Add(signed.Neg())
	} else {
		t.Income = t.Income.Add(signed)
	}
}

// CurrencyTotals groups the native-units totals of one currency with their
// net value converted to the base currency.
type CurrencyTotals struct {
	Totals
	NetInBase decimal.Decimal
}

// TaggedEntry is an entry together with the name of its owning account, as
// returned by the search and listing reports.
type TaggedEntry struct {
	Account string
	Entry   *Entry
}

// AccountReport is the per-account statistics block.
type AccountReport struct {
	Name    string
	Count   int
	Totals          // in base currency
	Balance decimal.Decimal
}

// AcceptAll is a predicate that accepts every entry.
func AcceptAll(*Entry) bool { return true }

// ByDirection returns a predicate that filters entries by direction.
func ByDirection(d Direction) func(*Entry) bool {
	return func(e *Entry) bool { return e.direction == d }
}

// ByTag returns a predicate that filters entries carrying the tag.
func ByTag(tag string) func(*Entry) bool {
	return func(e *Entry) bool { return e.HasTag(tag) }
}

// Entries iterates over every entry of every account (accounts in sorted name
// order, entries in insertion order), yielding the account name and the
// entry. An entry is yielded when ANY of the given filters accepts it.
func (l *Ledger) Entries(filters ...func(*Entry) bool) iter.Seq2[string, *Entry] {
	l.mu.RLock()
	var rows []TaggedEntry
	for _, name := range slices.Sorted(maps.Keys(l.accounts)) {
		for _, e := range l.accounts[name].entries {
			for _, filter := range filters {
				if filter(e) {
					rows = append(rows, TaggedEntry{Account: name, Entry: e})
					break
				}
			}
		}
	}
	l.mu.RUnlock()
	return func(yield func(string, *Entry) bool) {
		for _, row := range rows {
			if !yield(row.Account, row.Entry) {
				return
			}
		}
	}
}

// TotalBalance aggregates every entry of every account into base-currency
// income and expense totals.
func (l *Ledger) TotalBalance() (Totals, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var totals Totals
	for _, a := range l.accounts {
		for _, e := range a.entries {
			m, err := e.SignedInBase(l.rates)
			if err != nil {
				return Totals{}, err
			}
			totals.add(m.Amount())
		}
	}
	return totals, nil
}

// ByCategory returns base-currency income/expense totals keyed by category.
func (l *Ledger) ByCategory() (map[string]Totals, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]Totals)
	for _, a := range l.accounts {
		for _, e := range a.entries {
			m, err := e.SignedInBase(l.rates)
			if err != nil {
				return nil, err
			}
			t := result[e.category]
			t.add(m.Amount())
			result[e.category] = t
		}
	}
	return result, nil
}

// ByMonth returns base-currency income/expense totals keyed by "YYYY-MM".
func (l *Ledger) ByMonth() (map[string]Totals, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]Totals)
	for _, a := range l.accounts {
		for _, e := range a.entries {
			m, err := e.SignedInBase(l.rates)
			if err != nil {
				return nil, err
			}
			key := fmt.Sprintf("%04d-%02d", e.date.Year(), int(e.date.Month()))
			t := result[key]
			t.add(m.Amount())
			result[key] = t
		}
	}
	return result, nil
}

// ByCurrency returns, for each currency that appears in the ledger, the
// income/expense totals in native units plus the net converted to base.
func (l *Ledger) ByCurrency() (map[string]CurrencyTotals, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]CurrencyTotals)
	for _, a := range l.accounts {
		for _, e := range a.entries {
			code := e.Currency()
			ct := result[code]
			ct.add(e.Signed().Amount())
			result[code] = ct
		}
	}
	for code, ct := range result {
		net, err := l.rates.Convert(M(ct.Net(), code), l.rates.Base())
		if err != nil {
			return nil, err
		}
		ct.NetInBase = net.Amount()
		result[code] = ct
	}
	return result, nil
}

// SearchByTags returns every entry carrying at least one of the given tags
// (OR semantics), with its account name. Accounts are visited in sorted name
// order, entries in insertion order.
func (l *Ledger) SearchByTags(tags ...string) []TaggedEntry {
	filters := make([]func(*Entry) bool, 0, len(tags))
	for _, tag := range tags {
		filters = append(filters, ByTag(tag))
	}
	var rows []TaggedEntry
	for account, e := range l.Entries(filters...) {
		rows = append(rows, TaggedEntry{Account: account, Entry: e})
	}
	return rows
}

// TopExpenses returns the n largest expense entries across all accounts,
// compared and ordered by their base-currency value, largest first.
func (l *Ledger) TopExpenses(n int) ([]TaggedEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	type row struct {
		TaggedEntry
		inBase decimal.Decimal
	}
	var rows []row
	for _, name := range slices.Sorted(maps.Keys(l.accounts)) {
		for _, e := range l.accounts[name].entries {
			if e.direction != Debit {
				continue
			}
			m, err := l.rates.Convert(e.amount, l.rates.Base())
			if err != nil {
				return nil, err
			}
			rows = append(rows, row{TaggedEntry{Account: name, Entry: e}, m.Amount()})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].inBase.GreaterThan(rows[j].inBase)
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	result := make([]TaggedEntry, len(rows))
	for i, r := range rows {
		result[i] = r.TaggedEntry
	}
	return result, nil
}

// AccountStats returns the statistics block for one account: entry count,
// base-currency income and expense totals, and the cached balance.
func (l *Ledger) AccountStats(name string) (AccountReport, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accounts[name]
	if !ok {
		return AccountReport{}, fmt.Errorf("%w: %q", ErrUnknownAccount, name)
	}
	report := AccountReport{Name: name, Count: len(a.entries), Balance: a.balance}
	for _, e := range a.entries {
		m, err := e.SignedInBase(l.rates)
		if err != nil {
			return AccountReport{}, err
		}
		report.Totals.add(m.Amount())
	}
	return report, nil
}
