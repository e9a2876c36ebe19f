package moneykeeper

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewEntry_Validation(t *testing.T) {
	day := MustParseDate("2024-07-15")

	tests := []struct {
		name     string
		amount   Money
		category string
		date     Date
		err      bool
		errHint  string
	}{
		{"valid", RUB(100), "food", day, false, ""},
		{"zero amount", RUB(0), "food", day, true, "amount"},
		{"negative amount", RUB(-5), "food", day, true, "amount"},
		{"empty category", RUB(100), "", day, true, "category"},
		{"zero date", RUB(100), "food", Date{}, true, "date"},
		// amount is checked before category, category before date
		{"amount reported first", RUB(0), "", Date{}, true, "amount"},
		{"category reported before date", RUB(100), "", Date{}, true, "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntry(1, tt.amount, tt.category, Debit, tt.date, "lunch")
			if (err != nil) != tt.err {
				t.Fatalf("NewEntry() error = %v, wantErr %v", err, tt.err)
			}
			if tt.err {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("NewEntry() error = %v, want ErrInvalidArgument", err)
				}
				if !strings.Contains(err.Error(), tt.errHint) {
					t.Errorf("NewEntry() error = %q, want mention of %q", err, tt.errHint)
				}
				return
			}
			if e.ID() != 1 || e.Category() != "food" || e.Description() != "lunch" {
				t.Errorf("NewEntry() built %v", e.Summary())
			}
		})
	}
}

func TestNewEntry_DefaultDescription(t *testing.T) {
	e, err := NewEntry(1, RUB(10), "misc", Credit, MustParseDate("2024-01-01"), "")
	if err != nil {
		t.Fatal(err)
	}
	if e.Description() == "" {
		t.Error("empty description should be replaced with a placeholder")
	}
}

func TestEntry_SettersKeepStateOnFailure(t *testing.T) {
	e := mustEntry(1, RUB(100), "food", Debit, "2024-07-15")

	if err := e.SetAmount(RUB(-1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetAmount(-1) error = %v", err)
	}
	if !e.Amount().Equal(RUB(100)) {
		t.Errorf("amount changed by failed SetAmount: %v", e.Amount())
	}

	if err := e.SetCategory(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetCategory(\"\") error = %v", err)
	}
	if e.Category() != "food" {
		t.Errorf("category changed by failed SetCategory: %q", e.Category())
	}

	if err := e.SetDate(Date{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetDate(zero) error = %v", err)
	}
	if e.Date() != MustParseDate("2024-07-15") {
		t.Errorf("date changed by failed SetDate: %v", e.Date())
	}

	if err := e.SetAmount(USD(20)); err != nil {
		t.Fatalf("SetAmount(valid) error = %v", err)
	}
	if !e.Amount().Equal(USD(20)) {
		t.Errorf("amount after SetAmount = %v", e.Amount())
	}
}

func TestEntry_Tags(t *testing.T) {
	e := mustEntry(1, RUB(100), "food", Debit, "2024-07-15")

	for i := 0; i < MaxTags; i++ {
		if err := e.AddTag(fmt.Sprintf("tag%d", i)); err != nil {
			t.Fatalf("AddTag(%d) error = %v", i, err)
		}
	}
	if err := e.AddTag("overflow"); !errors.Is(err, ErrTagLimit) {
		t.Errorf("AddTag beyond limit error = %v, want ErrTagLimit", err)
	}
	if len(e.Tags()) != MaxTags {
		t.Errorf("tag count = %d, want %d", len(e.Tags()), MaxTags)
	}

	e.RemoveTag(0)
	if err := e.AddTag("tag1"); !errors.Is(err, ErrDuplicateTag) {
		t.Errorf("AddTag(duplicate) error = %v, want ErrDuplicateTag", err)
	}
	if !e.HasTag("tag1") || e.HasTag("tag0") {
		t.Errorf("tags after removal = %v", e.Tags())
	}

	// out-of-range removals are no-ops
	e.RemoveTag(-1)
	e.RemoveTag(99)
	if len(e.Tags()) != MaxTags-1 {
		t.Errorf("tag count after out-of-range removals = %d", len(e.Tags()))
	}
}

func TestEntry_Signed(t *testing.T) {
	income := mustEntry(1, RUB(100), "salary", Credit, "2024-07-15")
	expense := mustEntry(2, RUB(40), "food", Debit, "2024-07-15")

	if !income.Signed().Equal(RUB(100)) {
		t.Errorf("income Signed() = %v", income.Signed())
	}
	if !expense.Signed().Equal(RUB(-40)) {
		t.Errorf("expense Signed() = %v", expense.Signed())
	}

	got, err := mustEntry(3, USD(100), "rent", Debit, "2024-07-15").SignedInBase(testRates())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(RUB(-7500)) {
		t.Errorf("SignedInBase() = %v, want -7500 RUB", got)
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("income"); err != nil || d != Credit {
		t.Errorf("ParseDirection(income) = %v, %v", d, err)
	}
	if d, err := ParseDirection("expense"); err != nil || d != Debit {
		t.Errorf("ParseDirection(expense) = %v, %v", d, err)
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseDirection(sideways) error = %v", err)
	}
}
