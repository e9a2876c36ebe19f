package moneykeeper

import (
	"context"
	"fmt"
	"log"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// JSONSource is a generic rate source for providers that publish a flat
// {"<code>": <rate>} object somewhere inside a JSON document. Path is a
// jsonpath expression addressing that object, e.g. "$.rates" for
// exchangerate-host-style APIs, or "$" when the document is the mapping
// itself.
type JSONSource struct {
	URL  string
	Path string
}

// Fetch downloads the document and extracts the code → rate-to-base mapping
// at Path. Non-numeric or non-positive values are skipped with a log line.
func (s JSONSource) Fetch(ctx context.Context) (map[string]decimal.Decimal, error) {
	var jobj any
	if err := jwget(ctx, daily(), s.URL, &jobj); err != nil {
		return nil, fmt.Errorf("fetching rates from %q: %w", s.URL, err)
	}

	jval, err := jsonpath.Get(s.Path, jobj)
	if err != nil {
		return nil, fmt.Errorf("extracting %q from %q: %w", s.Path, s.URL, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	mapping, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("path %q in %q is not an object of rates: %T", s.Path, s.URL, jval)
	}
	if len(mapping) == 0 {
		return nil, fmt.Errorf("no rates at %q in %q", s.Path, s.URL)
	}

	rates := make(map[string]decimal.Decimal, len(mapping))
	for code, raw := range mapping {
		val, ok := raw.(float64)
		if !ok || val <= 0 {
			log.Printf("skipping rate %q: %v", code, raw)
			continue
		}
		rates[code] = decimal.NewFromFloat(val)
	}
	return rates, nil
}
