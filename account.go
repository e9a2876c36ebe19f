package moneykeeper

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// balanceTolerance is the maximum drift between the cached balance and a
// fresh recomputation before Check reports the account inconsistent.
var balanceTolerance = decimal.NewFromFloat(0.01)

// Account owns an ordered sequence of entries and a cached balance.
//
// Add and Remove maintain the cache on a fast path that sums signed amounts
// in each entry's native currency units; only RecalculateBalance converts
// every entry to the base currency. The cache is therefore authoritative only
// immediately after RecalculateBalance, and must be recomputed after any rate
// table change before it is trusted. This mirrors the historical behavior of
// the data files this package reads.
type Account struct {
	name    string
	entries []*Entry
	balance decimal.Decimal
}

// NewAccount returns an empty account with a zero balance. The name must not
// be empty.
func NewAccount(name string) (*Account, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: account name cannot be empty", ErrInvalidArgument)
	}
	return &Account{name: name}, nil
}

// Name returns the account name.
func (a *Account) Name() string { return a.name }

// Len returns the number of entries.
func (a *Account) Len() int { return len(a.entries) }

// Balance returns the cached balance. After RecalculateBalance it is in base
// currency units; see the Account doc for the fast-path caveat.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Entries iterates over the entries in insertion order.
func (a *Account) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range a.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Entry returns the entry with the given id, or nil.
func (a *Account) Entry(id int64) *Entry {
	for _, e := range a.entries {
		if e.id == id {
			return e
		}
	}
	return nil
}

// Add appends the entry and adds its signed amount to the cached balance, in
// the entry's native currency units. It fails with ErrDuplicateID when an
// entry with the same id exists, and with ErrInvalidArgument when the entry
// does not validate (e.g. a zero-amount draft).
func (a *Account) Add(e *Entry) error {
	if err := e.validate(); err != nil {
		return err
	}
	if a.Entry(e.id) != nil {
		return fmt.Errorf("%w: %d in account %q", ErrDuplicateID, e.id, a.name)
	}
	a.entries = append(a.entries, e)
	a.balance = a.balance.Add(e.Signed().Amount())
	return nil
}

// Remove deletes the first entry with the given id, subtracting its signed
// amount from the cached balance (native currency units, same caveat as Add).
// It reports whether a removal occurred; a missing id is not an error.
func (a *Account) Remove(id int64) bool {
	for i, e := range a.entries {
		if e.id == id {
			a.balance = a.balance.Sub(e.Signed().Amount())
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			return true
		}
	}
	return false
}

// RecalculateBalance recomputes the cached balance from scratch as the sum of
// every entry converted to the base currency. This is the authoritative,
// currency-aware computation; it must be invoked after any rate table change.
// On ErrUnknownCurrency the cache is left unchanged.
func (a *Account) RecalculateBalance(t *RateTable) error {
	sum := decimal.Zero
	for _, e := range a.entries {
		m, err := e.SignedInBase(t)
		if err != nil {
			return fmt.Errorf("recalculating %q: %w", a.name, err)
		}
		sum = sum.Add(m.Amount())
	}
	a.balance = sum
	return nil
}

// Check reports whether the cached balance agrees with a fresh base-currency
// recomputation within the tolerance. A failed conversion counts as
// inconsistent.
func (a *Account) Check(t *RateTable) bool {
	sum := decimal.Zero
	for _, e := range a.entries {
		m, err := e.SignedInBase(t)
		if err != nil {
			return false
		}
		sum = sum.Add(m.Amount())
	}
	return sum.Sub(a.balance).Abs().LessThan(balanceTolerance)
}

// BalanceIn returns the account balance expressed in the given currency,
// converting every entry individually. It propagates ErrUnknownCurrency.
func (a *Account) BalanceIn(t *RateTable, code string) (Money, error) {
	sum := M(0, code)
	for _, e := range a.entries {
		m, err := t.Convert(e.Signed(), code)
		if err != nil {
			return Money{}, err
		}
		sum = sum.Add(m)
	}
	return sum, nil
}

// MergeFrom appends all of other's entries to a, preserving their order, and
// recalculates a's balance. When any of other's ids collides with an id in a,
// it fails with ErrDuplicateID before moving anything. Afterwards other is
// left empty but remains a valid account.
func (a *Account) MergeFrom(other *Account, t *RateTable) error {
	for _, e := range other.entries {
		if a.Entry(e.id) != nil {
			return fmt.Errorf("%w: %d when merging %q into %q", ErrDuplicateID, e.id, other.name, a.name)
		}
	}
	a.entries = append(a.entries, other.entries...)
	other.entries = nil
	other.balance = decimal.Zero
	return a.RecalculateBalance(t)
}

// MoveEntriesFrom transfers other's entries and cached balance into a without
// any validation or id check. It is meant for the rename workflow where a is
// a fresh empty account; other is left empty.
func (a *Account) MoveEntriesFrom(other *Account) {
	a.entries = other.entries
	a.balance = other.balance
	other.entries = nil
	other.balance = decimal.Zero
}
