package moneykeeper

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The ledger is persisted in a flat, human-readable text format: one
// "[Account:<name>]" section header per account (sorted by name), followed by
// one line per entry in insertion order:
//
//	<id>,<amount>,<direction 0|1>,<category>,<year> <month> <day>,<currency>,<description>,<tag1;tag2|->
//
// Fields after the date are optional on read; older files omit them. A
// malformed entry line is logged and skipped, never aborting the load.
// Trailing "[Base:<code>]" and "[Current:<name>]" lines record the base
// currency and the selected account; legacy files omit both.

const accountHeaderPrefix = "[Account:"

// currentHeaderPrefix marks the selected account; written last so the
// account it names is already known when it is read back.
const currentHeaderPrefix = "[Current:"

// baseHeaderPrefix records the base currency.
const baseHeaderPrefix = "[Base:"

// noTags marks an empty tag list on the wire.
const noTags = "-"

// fieldSafe strips the characters that carry structure in the flat format
// from a free-text field.
func fieldSafe(s string) string {
	return strings.NewReplacer(",", " ", "\n", " ", "\r", " ").Replace(s)
}

// encodeEntryLine renders one entry as a single line of the flat format.
func encodeEntryLine(e *Entry) string {
	tags := noTags
	if len(e.tags) > 0 {
		safe := make([]string, len(e.tags))
		for i, tag := range e.tags {
			safe[i] = strings.ReplaceAll(fieldSafe(tag), ";", " ")
		}
		tags = strings.Join(safe, ";")
	}
	return fmt.Sprintf("%d,%s,%d,%s,%d %d %d,%s,%s,%s",
		e.id,
		e.amount.Amount().String(),
		int(e.direction),
		fieldSafe(e.category),
		e.date.Year(), int(e.date.Month()), e.date.Day(),
		e.amount.Currency(),
		fieldSafe(e.description),
		tags,
	)
}

// decodeEntryLine parses one line of the flat format. The base currency is
// substituted when the optional currency field is absent or empty.
func decodeEntryLine(line, base string) (*Entry, error) {
	parts := strings.SplitN(line, ",", 8)
	if len(parts) < 5 {
		return nil, fmt.Errorf("want at least 5 fields, got %d", len(parts))
	}

	id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad id %q: %w", parts[0], err)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("bad amount %q: %w", parts[1], err)
	}
	ord, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || (ord != 0 && ord != 1) {
		return nil, fmt.Errorf("bad direction %q", parts[2])
	}
	category := parts[3]

	var y, m, d int
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[4]), "%d %d %d", &y, &m, &d); err != nil {
		return nil, fmt.Errorf("bad date %q: %w", parts[4], err)
	}
	day, err := NewDate(y, time.Month(m), d)
	if err != nil {
		return nil, err
	}

	currency := base
	if len(parts) > 5 && strings.TrimSpace(parts[5]) != "" {
		currency = strings.TrimSpace(parts[5])
	}
	description := ""
	if len(parts) > 6 {
		description = parts[6]
	}

	e, err := NewEntry(id, M(amount, currency), category, Direction(ord), day, description)
	if err != nil {
		return nil, err
	}

	if len(parts) > 7 && parts[7] != noTags && parts[7] != "" {
		for _, tag := range strings.Split(parts[7], ";") {
			if tag == "" {
				continue
			}
			if err := e.AddTag(tag); err != nil {
				log.Printf("dropping tag %q on entry %d: %v", tag, id, err)
			}
		}
	}
	return e, nil
}

// EncodeLedger writes the whole ledger to w in the flat text format, accounts
// in sorted name order, entries in insertion order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	bw := bufio.NewWriter(w)
	for a := range l.Accounts() {
		fmt.Fprintf(bw, "%s%s]\n", accountHeaderPrefix, a.name)
		for e := range a.Entries() {
			fmt.Fprintln(bw, encodeEntryLine(e))
		}
	}
	fmt.Fprintf(bw, "%s%s]\n", baseHeaderPrefix, l.BaseCurrency())
	fmt.Fprintf(bw, "%s%s]\n", currentHeaderPrefix, l.CurrentAccount().Name())
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: writing ledger: %v", ErrPersistence, err)
	}
	return nil
}

// DecodeLedger reads a ledger from r. State starts from a fresh ledger (the
// reserved default account always exists), malformed entry lines are logged
// and skipped, and the id counter is advanced past every id seen. Balances
// are recalculated against the (still empty) rate table; accounts holding
// foreign currencies keep their native-units fast-path balance until rates
// are loaded.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	scanner := bufio.NewScanner(r)

	var current *Account
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, baseHeaderPrefix) {
			end := strings.IndexByte(line, ']')
			if end < 0 {
				log.Printf("skipping malformed base header %q", line)
				continue
			}
			if code := line[len(baseHeaderPrefix):end]; code != "" {
				l.rates.setBase(code)
			}
			continue
		}

		if strings.HasPrefix(line, currentHeaderPrefix) {
			end := strings.IndexByte(line, ']')
			if end < 0 {
				log.Printf("skipping malformed selection header %q", line)
				continue
			}
			if name := line[len(currentHeaderPrefix):end]; name != "" {
				if err := l.SelectAccount(name); err != nil {
					log.Printf("keeping default selection: %v", err)
				}
			}
			continue
		}

		if strings.HasPrefix(line, accountHeaderPrefix) {
			end := strings.IndexByte(line, ']')
			if end < 0 {
				log.Printf("skipping malformed account header %q", line)
				continue
			}
			name := line[len(accountHeaderPrefix):end]
			if a := l.accounts[name]; a != nil {
				current = a
			} else if name != "" {
				a, err := NewAccount(name)
				if err != nil {
					log.Printf("skipping account %q: %v", name, err)
					continue
				}
				l.accounts[name] = a
				current = a
			}
			continue
		}

		if current == nil {
			log.Printf("skipping entry line before any account header: %q", line)
			continue
		}
		e, err := decodeEntryLine(line, l.rates.Base())
		if err != nil {
			log.Printf("skipping malformed entry line %q: %v", line, err)
			continue
		}
		if err := current.Add(e); err != nil {
			log.Printf("skipping entry %d in %q: %v", e.id, current.name, err)
			continue
		}
		l.ensureNextID(e.id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading ledger: %v", ErrPersistence, err)
	}

	if err := l.recalculateAll(); err != nil {
		log.Printf("balances left in native units until rates are loaded: %v", err)
	}
	return l, nil
}

// SaveLedger persists the ledger to path.
func SaveLedger(path string, l *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %v", ErrPersistence, path, err)
	}
	defer f.Close()
	return EncodeLedger(f, l)
}

// LoadLedger reads the ledger at path. A missing file is not an error: it
// yields a fresh ledger holding only the reserved default account.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("ledger file %q not found, starting with an empty ledger", path)
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %v", ErrPersistence, path, err)
	}
	defer f.Close()
	return DecodeLedger(f)
}
