package moneykeeper

import (
	"fmt"
	"slices"
	"strings"
)

// Direction tells whether an entry credits or debits its account.
type Direction int

const (
	// Credit is an income entry. Its wire ordinal is 0.
	Credit Direction = iota
	// Debit is an expense entry. Its wire ordinal is 1.
	Debit
)

func (d Direction) String() string {
	switch d {
	case Credit:
		return "income"
	case Debit:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseDirection parses "income" or "expense" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "income":
		return Credit, nil
	case "expense":
		return Debit, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidArgument, s)
	}
}

// MaxTags is the maximum number of tags an entry can carry.
const MaxTags = 5

// defaultDescription is stored when an entry has no description.
const defaultDescription = "no description"

// Entry is a single income or expense record: a positive amount in some
// currency, a category, a date, an optional description and up to MaxTags
// unique tags. Amounts are always stored positive; the sign is derived from
// the direction.
//
// A zero Entry is a draft: it fails validation (amount is zero) and cannot be
// added to an account until its fields are set.
type Entry struct {
	id          int64
	amount      Money
	category    string
	direction   Direction
	date        Date
	description string
	tags        []string
}

// NewEntry returns a validated entry. The id must be obtained from the owning
// ledger's id counter. It fails with ErrInvalidArgument citing the first
// violated invariant: non-positive amount, then empty category, then invalid
// date. An empty description is replaced with a placeholder; an empty
// currency code stands for the ledger's base currency.
func NewEntry(id int64, amount Money, category string, direction Direction, day Date, description string) (*Entry, error) {
	e := &Entry{
		id:          id,
		amount:      amount,
		category:    category,
		direction:   direction,
		date:        day,
		description: description,
	}
	if e.description == "" {
		e.description = defaultDescription
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entry) validate() error {
	if !e.amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidArgument, e.amount.Amount())
	}
	if e.category == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrInvalidArgument)
	}
	if !e.date.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, ErrInvalidDate)
	}
	return nil
}

func (e *Entry) ID() int64            { return e.id }
func (e *Entry) Amount() Money        { return e.amount }
func (e *Entry) Category() string     { return e.category }
func (e *Entry) Direction() Direction { return e.direction }
func (e *Entry) Date() Date           { return e.date }
func (e *Entry) Description() string  { return e.description }
func (e *Entry) Currency() string     { return e.amount.Currency() }

// Tags returns a copy of the tag list in insertion order.
func (e *Entry) Tags() []string { return slices.Clone(e.tags) }

// SetAmount replaces the amount. It fails with ErrInvalidArgument and leaves
// the entry unchanged when m is not positive.
func (e *Entry) SetAmount(m Money) error {
	if !m.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidArgument, m.Amount())
	}
	e.amount = m
	return nil
}

// SetCategory replaces the category. It fails with ErrInvalidArgument and
// leaves the entry unchanged when cat is empty.
func (e *Entry) SetCategory(cat string) error {
	if cat == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrInvalidArgument)
	}
	e.category = cat
	return nil
}

// SetDate replaces the date. It fails with ErrInvalidArgument and leaves the
// entry unchanged when day is not a valid date.
func (e *Entry) SetDate(day Date) error {
	if !day.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, ErrInvalidDate)
	}
	e.date = day
	return nil
}

// SetDirection replaces the direction.
func (e *Entry) SetDirection(d Direction) { e.direction = d }

// SetDescription replaces the description; empty becomes the placeholder.
func (e *Entry) SetDescription(desc string) {
	if desc == "" {
		desc = defaultDescription
	}
	e.description = desc
}

// AddTag appends a tag. It fails with ErrTagLimit when the entry already has
// MaxTags tags, and with ErrDuplicateTag when the tag is already present.
// Insertion order is preserved.
func (e *Entry) AddTag(tag string) error {
	if len(e.tags) >= MaxTags {
		return fmt.Errorf("%w: at most %d tags per entry", ErrTagLimit, MaxTags)
	}
	if slices.Contains(e.tags, tag) {
		return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
	}
	e.tags = append(e.tags, tag)
	return nil
}

// RemoveTag deletes the tag at the given position. An out-of-range index is a
// no-op.
func (e *Entry) RemoveTag(index int) {
	if index < 0 || index >= len(e.tags) {
		return
	}
	e.tags = slices.Delete(e.tags, index, index+1)
}

// HasTag reports whether the entry carries the tag.
func (e *Entry) HasTag(tag string) bool { return slices.Contains(e.tags, tag) }

// Signed returns the amount with its direction applied: positive for credits,
// negative for debits.
func (e *Entry) Signed() Money {
	if e.direction == Credit {
		return e.amount
	}
	return e.amount.Neg()
}

// SignedInBase returns the signed amount converted to the table's base
// currency. It propagates ErrUnknownCurrency from the conversion.
func (e *Entry) SignedInBase(t *RateTable) (Money, error) {
	return t.Convert(e.Signed(), t.Base())
}

// Summary returns a one-line human description of the entry.
func (e *Entry) Summary() string {
	sign := "[+]"
	if e.direction == Debit {
		sign = "[-]"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s (%s) %s", e.date, sign, e.amount, e.category, e.description)
	if len(e.tags) > 0 {
		fmt.Fprintf(&b, " #%s", strings.Join(e.tags, " #"))
	}
	return b.String()
}
