package moneykeeper

import "errors"

// Domain errors. Callers classify failures with errors.Is; most sites wrap
// these with fmt.Errorf("%w: …") to add context.
var (
	// ErrInvalidDate reports a date outside the supported range or a
	// malformed date string.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidArgument reports an entry field that violates its invariant
	// (non-positive amount, empty category, invalid date).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateID reports an entry id already present in the account.
	ErrDuplicateID = errors.New("duplicate entry id")

	// ErrDuplicateName reports an account name already present in the ledger.
	ErrDuplicateName = errors.New("duplicate account name")

	// ErrDuplicateTag reports a tag already present on the entry.
	ErrDuplicateTag = errors.New("duplicate tag")

	// ErrTagLimit reports an attempt to tag an entry beyond MaxTags.
	ErrTagLimit = errors.New("tag limit exceeded")

	// ErrUnknownCurrency reports a conversion involving a currency absent
	// from the rate table.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnsupportedCurrency reports a base-currency change to a currency
	// the rate table does not carry.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrUnknownAccount reports an account name absent from the ledger.
	ErrUnknownAccount = errors.New("unknown account")

	// ErrLastAccount reports an attempt to delete the only remaining account.
	ErrLastAccount = errors.New("cannot delete the last account")

	// ErrPersistence reports a failed load or save of ledger or rate data.
	ErrPersistence = errors.New("persistence error")
)
