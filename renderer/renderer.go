// Package renderer turns ledger reports into markdown strings, ready to be
// printed raw or through a terminal renderer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/moneykeeper/moneykeeper"
)

// amount formats a base-currency decimal with its code, e.g. "7500.00 RUB".
func amount(v decimal.Decimal, code string) string {
	return fmt.Sprintf("%s %s", v.StringFixed(2), code)
}

// signedAmount is like amount but always carries an explicit sign.
func signedAmount(v decimal.Decimal, code string) string {
	if v.IsPositive() {
		return "+" + amount(v, code)
	}
	return amount(v, code)
}

// Entry renders a single entry as a one-line string.
func Entry(account string, e *moneykeeper.Entry) string {
	return fmt.Sprintf("%s [%s]", e.Summary(), account)
}

func tagList(e *moneykeeper.Entry) string {
	tags := e.Tags()
	if len(tags) == 0 {
		return ""
	}
	return "#" + strings.Join(tags, " #")
}
