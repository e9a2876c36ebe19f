package moneykeeper

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccount_AddRemove(t *testing.T) {
	a, err := NewAccount("wallet")
	if err != nil {
		t.Fatal(err)
	}

	if err := a.Add(mustEntry(1, RUB(100), "salary", Credit, "2024-07-01")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := a.Add(mustEntry(2, RUB(40), "food", Debit, "2024-07-02")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !a.Balance().Equal(decimal.NewFromInt(60)) {
		t.Errorf("balance after add = %v, want 60", a.Balance())
	}

	if err := a.Add(mustEntry(1, RUB(5), "dup", Credit, "2024-07-03")); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Add(duplicate id) error = %v, want ErrDuplicateID", err)
	}
	if err := a.Add(&Entry{id: 3}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Add(draft) error = %v, want ErrInvalidArgument", err)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}

	// removing restores the balance exactly
	if !a.Remove(2) {
		t.Error("Remove(2) = false, want true")
	}
	if a.Remove(2) {
		t.Error("Remove(2) twice = true, want false")
	}
	if !a.Balance().Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance after remove = %v, want 100", a.Balance())
	}
	if a.Entry(2) != nil || a.Entry(1) == nil {
		t.Error("Entry() lookup inconsistent after removal")
	}
}

func TestAccount_RecalculateBalance(t *testing.T) {
	a, _ := NewAccount("wallet")
	a.Add(mustEntry(1, USD(100), "salary", Credit, "2024-07-01"))
	a.Add(mustEntry(2, RUB(500), "food", Debit, "2024-07-02"))

	// the fast path summed native units: 100 - 500
	if !a.Balance().Equal(decimal.NewFromInt(-400)) {
		t.Fatalf("fast-path balance = %v, want -400", a.Balance())
	}

	if err := a.RecalculateBalance(testRates()); err != nil {
		t.Fatalf("RecalculateBalance() error = %v", err)
	}
	// 100 USD * 75 - 500 RUB
	if !a.Balance().Equal(decimal.NewFromInt(7000)) {
		t.Errorf("recalculated balance = %v, want 7000", a.Balance())
	}

	// an unknown currency leaves the cache untouched
	a.Add(mustEntry(3, M(10, "GBP"), "gift", Credit, "2024-07-03"))
	if err := a.RecalculateBalance(testRates()); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("RecalculateBalance() error = %v, want ErrUnknownCurrency", err)
	}
	if !a.Balance().Equal(decimal.NewFromInt(7010)) {
		t.Errorf("balance after failed recalculation = %v, want fast-path 7010", a.Balance())
	}
}

func TestAccount_Check(t *testing.T) {
	rates := testRates()
	a, _ := NewAccount("wallet")
	a.Add(mustEntry(1, RUB(100), "salary", Credit, "2024-07-01"))
	if !a.Check(rates) {
		t.Error("all-base account should be consistent on the fast path")
	}

	a.Add(mustEntry(2, USD(100), "bonus", Credit, "2024-07-02"))
	if a.Check(rates) {
		t.Error("foreign-currency fast path should be flagged inconsistent")
	}
	a.RecalculateBalance(rates)
	if !a.Check(rates) {
		t.Error("recalculated account should be consistent")
	}

	a.Add(mustEntry(3, M(10, "GBP"), "gift", Credit, "2024-07-03"))
	if a.Check(rates) {
		t.Error("unconvertible entry should be flagged inconsistent")
	}
}

func TestAccount_BalanceIn(t *testing.T) {
	a, _ := NewAccount("wallet")
	a.Add(mustEntry(1, USD(100), "salary", Credit, "2024-07-01"))
	a.Add(mustEntry(2, RUB(1500), "food", Debit, "2024-07-02"))

	got, err := a.BalanceIn(testRates(), "USD")
	if err != nil {
		t.Fatal(err)
	}
	// 100 USD - 1500 RUB / 75
	if !got.Equal(USD(80)) {
		t.Errorf("BalanceIn(USD) = %v, want 80 USD", got)
	}

	if _, err := a.BalanceIn(testRates(), "GBP"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("BalanceIn(GBP) error = %v, want ErrUnknownCurrency", err)
	}
}

func TestAccount_MergeFrom(t *testing.T) {
	rates := testRates()
	dst, _ := NewAccount("wallet")
	dst.Add(mustEntry(1, RUB(100), "salary", Credit, "2024-07-01"))
	src, _ := NewAccount("cash")
	src.Add(mustEntry(2, RUB(40), "food", Debit, "2024-07-02"))
	src.Add(mustEntry(1, RUB(5), "copy", Credit, "2024-07-03"))

	// a single collision fails the whole merge before anything moves
	if err := dst.MergeFrom(src, rates); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("MergeFrom() error = %v, want ErrDuplicateID", err)
	}
	if dst.Len() != 1 || src.Len() != 2 {
		t.Fatalf("failed merge moved entries: dst=%d src=%d", dst.Len(), src.Len())
	}

	src.Remove(1)
	if err := dst.MergeFrom(src, rates); err != nil {
		t.Fatalf("MergeFrom() error = %v", err)
	}
	if dst.Len() != 2 || src.Len() != 0 {
		t.Errorf("merge result: dst=%d src=%d", dst.Len(), src.Len())
	}
	if !dst.Balance().Equal(decimal.NewFromInt(60)) {
		t.Errorf("merged balance = %v, want 60", dst.Balance())
	}
	if !src.Balance().IsZero() {
		t.Errorf("source balance after merge = %v, want 0", src.Balance())
	}

	// the emptied source remains usable
	if err := src.Add(mustEntry(9, RUB(1), "misc", Credit, "2024-07-04")); err != nil {
		t.Errorf("Add() on emptied source error = %v", err)
	}
}

func TestAccount_MoveEntriesFrom(t *testing.T) {
	src, _ := NewAccount("old")
	src.Add(mustEntry(1, RUB(100), "salary", Credit, "2024-07-01"))
	dst, _ := NewAccount("new")

	dst.MoveEntriesFrom(src)
	if dst.Len() != 1 || src.Len() != 0 {
		t.Errorf("move result: dst=%d src=%d", dst.Len(), src.Len())
	}
	if !dst.Balance().Equal(decimal.NewFromInt(100)) || !src.Balance().IsZero() {
		t.Errorf("balances after move: dst=%v src=%v", dst.Balance(), src.Balance())
	}
}

func TestNewAccount_EmptyName(t *testing.T) {
	if _, err := NewAccount(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewAccount(\"\") error = %v, want ErrInvalidArgument", err)
	}
}
