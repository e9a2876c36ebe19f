package moneykeeper

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

// DefaultAccountName is the reserved account that always exists. It
// guarantees the ledger is never empty and serves as the fallback for the
// current-account selection.
const DefaultAccountName = "General"

// DefaultBaseCurrency is the base currency of a new ledger.
const DefaultBaseCurrency = "RUB"

// RateSource provides fresh exchange rates from an external provider. Fetch
// returns the complete code → rate-to-base mapping, or an error when the
// provider is unreachable or its payload cannot be parsed.
type RateSource interface {
	Fetch(ctx context.Context) (map[string]decimal.Decimal, error)
}

// Ledger is the account directory: a collection of named accounts, the
// current-account selection, the exchange rate table and the entry-id
// counter.
//
// A single mutex serializes "apply new rates + recompute every account"
// against balance reads, so a report never observes a torn update. Stale but
// consistent rates are acceptable; see RefreshRates.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	current  string
	rates    *RateTable
	nextID   int64
}

// NewLedger returns a ledger holding only the reserved default account, with
// an empty rate table and the id counter at 1.
func NewLedger() *Ledger {
	l := &Ledger{
		accounts: make(map[string]*Account),
		rates:    NewRateTable(DefaultBaseCurrency),
		nextID:   1,
	}
	l.ensureDefault()
	return l
}

// ensureDefault recreates the reserved account and repairs the current
// selection. Callers must hold the write lock (or own the ledger exclusively).
func (l *Ledger) ensureDefault() {
	if _, ok := l.accounts[DefaultAccountName]; !ok {
		a, _ := NewAccount(DefaultAccountName)
		l.accounts[DefaultAccountName] = a
	}
	if _, ok := l.accounts[l.current]; !ok {
		l.current = DefaultAccountName
	}
}

// BaseCurrency returns the code all cached balances and aggregates are
// expressed in.
func (l *Ledger) BaseCurrency() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rates.Base()
}

// NextID returns a fresh entry id. Ids are process-unique and monotonically
// assigned; loading a file advances the counter past every id seen.
func (l *Ledger) NextID() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	return id
}

// ensureNextID advances the id counter so the next id is greater than seen.
func (l *Ledger) ensureNextID(seen int64) {
	if seen >= l.nextID {
		l.nextID = seen + 1
	}
}

// NewEntry builds a validated entry with a fresh id. An empty currency code
// on the amount is replaced with the ledger's base currency.
func (l *Ledger) NewEntry(amount Money, category string, direction Direction, day Date, description string) (*Entry, error) {
	l.mu.Lock()
	if amount.cur == "" {
		amount.cur = l.rates.Base()
	}
	id := l.nextID
	l.nextID++
	l.mu.Unlock()
	return NewEntry(id, amount, category, direction, day, description)
}

// Account returns the named account, or nil when absent.
func (l *Ledger) Account(name string) *Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.accounts[name]
}

// Accounts iterates over the accounts in sorted name order.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	l.mu.RLock()
	names := slices.Sorted(maps.Keys(l.accounts))
	accounts := make([]*Account, 0, len(names))
	for _, name := range names {
		accounts = append(accounts, l.accounts[name])
	}
	l.mu.RUnlock()
	return slices.Values(accounts)
}

// CurrentAccount returns the selected account. It is never nil.
func (l *Ledger) CurrentAccount() *Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureDefault()
	return l.accounts[l.current]
}

// CreateAccount inserts a new empty account. It fails with ErrDuplicateName
// when the name is taken.
func (l *Ledger) CreateAccount(name string) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	a, err := NewAccount(name)
	if err != nil {
		return nil, err
	}
	l.accounts[name] = a
	return a, nil
}

// DeleteAccount removes the named account. It fails with ErrUnknownAccount
// when absent, with ErrLastAccount when it is the only account, and with
// ErrInvalidArgument for the reserved default account, which cannot be
// deleted. When the current account is deleted the selection falls back to
// the default.
func (l *Ledger) DeleteAccount(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, name)
	}
	if len(l.accounts) == 1 {
		return fmt.Errorf("%w: %q", ErrLastAccount, name)
	}
	if name == DefaultAccountName {
		return fmt.Errorf("%w: the reserved account %q cannot be deleted", ErrInvalidArgument, name)
	}
	if l.current == name {
		l.current = DefaultAccountName
	}
	delete(l.accounts, name)
	l.ensureDefault()
	return nil
}

// RenameAccount moves the entries of old into a new account named newName.
// It fails with ErrUnknownAccount when old is absent and ErrDuplicateName
// when newName is taken. The reserved default account is never renamed away:
// its entries move to the new account but the default itself stays, empty.
func (l *Ledger) RenameAccount(old, newName string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	src, ok := l.accounts[old]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, old)
	}
	if _, ok := l.accounts[newName]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, newName)
	}
	dst, err := NewAccount(newName)
	if err != nil {
		return err
	}
	dst.MoveEntriesFrom(src)
	l.accounts[newName] = dst
	if old != DefaultAccountName {
		delete(l.accounts, old)
	}
	if l.current == old {
		l.current = newName
	}
	l.ensureDefault()
	return nil
}

// MergeAccounts moves every entry of src into dst, preserving order, and
// recalculates dst's balance. It fails with ErrUnknownAccount when either
// account is absent, with ErrInvalidArgument when dst and src are the same,
// and with ErrDuplicateID on any id collision; on failure nothing moves.
func (l *Ledger) MergeAccounts(dst, src string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if dst == src {
		return fmt.Errorf("%w: cannot merge %q into itself", ErrInvalidArgument, dst)
	}
	d, ok := l.accounts[dst]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, dst)
	}
	s, ok := l.accounts[src]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, src)
	}
	return d.MergeFrom(s, l.rates)
}

// SelectAccount makes the named account current. It fails with
// ErrUnknownAccount when absent.
func (l *Ledger) SelectAccount(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, name)
	}
	l.current = name
	return nil
}

// Append adds the entry to the current account.
func (l *Ledger) Append(e *Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureDefault()
	return l.accounts[l.current].Add(e)
}

// AppendTo adds the entry to the named account. It fails with
// ErrUnknownAccount when absent.
func (l *Ledger) AppendTo(name string, e *Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accounts[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, name)
	}
	return a.Add(e)
}

// RemoveEntry deletes the entry with the given id from the current account,
// reporting whether a removal occurred.
func (l *Ledger) RemoveEntry(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureDefault()
	return l.accounts[l.current].Remove(id)
}

// Convert expresses m in the given currency using the current rate table. An
// empty code stands for the base currency.
func (l *Ledger) Convert(m Money, to string) (Money, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rates.Convert(m, to)
}

// IsSupported reports whether the rate table carries the currency.
func (l *Ledger) IsSupported(code string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rates.IsSupported(code)
}

// Rate returns the rate to base for code.
func (l *Ledger) Rate(code string) (decimal.Decimal, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rates.Rate(code)
}

// Currencies returns the supported currency codes in sorted order.
func (l *Ledger) Currencies() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Collect(l.rates.Currencies())
}

// SetBaseCurrency switches the base currency. It fails with
// ErrUnsupportedCurrency when the rate table does not carry the code. On
// success every account balance is recomputed in the new base.
func (l *Ledger) SetBaseCurrency(code string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.rates.IsSupported(code) {
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	l.rates.setBase(code)
	if err := l.recalculateAll(); err != nil {
		return err
	}
	return nil
}

// RecalculateAll recomputes every account's cached balance from the current
// rate table. Conversion failures are joined and returned; accounts that
// converted cleanly keep their fresh balances.
func (l *Ledger) RecalculateAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recalculateAll()
}

func (l *Ledger) recalculateAll() error {
	var errs error
	for _, a := range l.accounts {
		if err := a.RecalculateBalance(l.rates); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// Check verifies every account's cached balance against a fresh recomputation
// and repairs the ones that drifted. It returns the names of the corrected
// accounts, sorted.
func (l *Ledger) Check() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var fixed []string
	for name, a := range l.accounts {
		if a.Check(l.rates) {
			continue
		}
		if err := a.RecalculateBalance(l.rates); err != nil {
			log.Printf("cannot correct balance of %q: %v", name, err)
			continue
		}
		fixed = append(fixed, name)
	}
	slices.Sort(fixed)
	return fixed
}

// RefreshRates requests fresh rates from the source. On success it installs
// them wholesale, persists them to cachePath, recomputes every account
// balance and returns true. On a fetch failure it falls back to loading
// cachePath and returns whether that succeeded; on total failure the previous
// rates remain in force and no balance is recomputed.
//
// RefreshRates is safe to call from a background goroutine while reports run.
func (l *Ledger) RefreshRates(ctx context.Context, src RateSource, cachePath string) bool {
	rates, err := src.Fetch(ctx)
	if err != nil {
		log.Printf("rate refresh failed: %v", err)
		if cachePath == "" {
			return false
		}
		l.mu.Lock()
		defer l.mu.Unlock()
		if err := l.rates.Load(cachePath); err != nil {
			log.Printf("rate cache fallback failed: %v", err)
			return false
		}
		if err := l.recalculateAll(); err != nil {
			log.Printf("recalculating balances: %v", err)
		}
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.rates.ReplaceAll(rates)
	if cachePath != "" {
		if err := l.rates.Save(cachePath); err != nil {
			log.Printf("cannot persist rate cache: %v", err)
		}
	}
	if err := l.recalculateAll(); err != nil {
		log.Printf("recalculating balances: %v", err)
	}
	return true
}

// LoadCachedRates replaces the rate table from the cache file and recomputes
// every account balance. The table is left unchanged on failure.
func (l *Ledger) LoadCachedRates(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.rates.Load(path); err != nil {
		return err
	}
	return l.recalculateAll()
}

// SaveRates persists the current rate table to path.
func (l *Ledger) SaveRates(path string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rates.Save(path)
}
