package moneykeeper

import (
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"os"
	"slices"

	"github.com/shopspring/decimal"
)

// RateTable maps currency codes to their rate to the base currency. One unit
// of currency c is worth Rate(c) units of the base.
//
// The table starts empty: every non-identity conversion fails until the first
// successful refresh or cache load installs a full mapping. Contents are only
// ever replaced wholesale, never merged.
//
// RateTable is not safe for concurrent use; the Ledger serializes access to
// its table.
type RateTable struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewRateTable returns an empty table with the given base currency.
func NewRateTable(base string) *RateTable {
	return &RateTable{base: base, rates: make(map[string]decimal.Decimal)}
}

// Base returns the base currency code.
func (t *RateTable) Base() string { return t.base }

// IsEmpty reports whether no rates have been installed yet.
func (t *RateTable) IsEmpty() bool { return len(t.rates) == 0 }

// IsSupported reports whether the table carries a rate for code.
func (t *RateTable) IsSupported(code string) bool {
	_, ok := t.rates[code]
	return ok
}

// Rate returns the rate to base for code.
func (t *RateTable) Rate(code string) (decimal.Decimal, bool) {
	r, ok := t.rates[code]
	return r, ok
}

// Currencies iterates over the supported currency codes in sorted order.
func (t *RateTable) Currencies() iter.Seq[string] {
	return func(yield func(string) bool) {
		codes := slices.Collect(maps.Keys(t.rates))
		slices.Sort(codes)
		for _, code := range codes {
			if !yield(code) {
				return
			}
		}
	}
}

// Convert returns m expressed in currency to. The empty code, on either side,
// stands for the base currency. Converting a currency to itself always
// succeeds and returns m unchanged, even on an empty table; any other
// conversion returns ErrUnknownCurrency when a side is absent from the table.
func (t *RateTable) Convert(m Money, to string) (Money, error) {
	from := m.cur
	if from == "" {
		from = t.base
	}
	if to == "" {
		to = t.base
	}
	if from == to {
		return Money{value: m.value, cur: to}, nil
	}
	fromRate, ok := t.rates[from]
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, from)
	}
	toRate, ok := t.rates[to]
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, to)
	}
	return Money{value: m.value.Mul(fromRate).Div(toRate), cur: to}, nil
}

// ReplaceAll discards the current contents and installs a copy of the given
// mapping. The base currency is installed with rate 1 when the mapping does
// not quote it; a provider quoting in another unit stays consistent because
// Convert only ever uses rate ratios.
func (t *RateTable) ReplaceAll(rates map[string]decimal.Decimal) {
	t.rates = maps.Clone(rates)
	if t.rates == nil {
		t.rates = make(map[string]decimal.Decimal)
	}
	if _, ok := t.rates[t.base]; !ok {
		t.rates[t.base] = decimal.NewFromInt(1)
	}
}

// setBase switches the base currency. Callers must have checked support.
func (t *RateTable) setBase(code string) { t.base = code }

// Save serializes the table to path as a flat {"code": rate} JSON object.
func (t *RateTable) Save(path string) error {
	out := make(map[string]float64, len(t.rates))
	for code, rate := range t.rates {
		out[code] = rate.InexactFloat64()
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding rates: %v", ErrPersistence, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: writing rates to %q: %v", ErrPersistence, path, err)
	}
	return nil
}

// Load replaces the table contents with the mapping found at path. On a
// missing or corrupt file it returns ErrPersistence and leaves the in-memory
// table unchanged.
func (t *RateTable) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading rates from %q: %v", ErrPersistence, path, err)
	}
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: decoding rates from %q: %v", ErrPersistence, path, err)
	}
	rates := make(map[string]decimal.Decimal, len(raw))
	for code, rate := range raw {
		if rate <= 0 {
			return fmt.Errorf("%w: rate for %q is not positive: %v", ErrPersistence, code, rate)
		}
		rates[code] = decimal.NewFromFloat(rate)
	}
	t.ReplaceAll(rates)
	return nil
}
