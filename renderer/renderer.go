// Package renderer turns the engine's report values into markdown for the
// terminal.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/jsalinasg/finances"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// money formats a decimal amount in a currency for display.
func money(v decimal.Decimal, currency string) string {
	return finances.M(v, currency).String()
}

// signedMoney formats a delta with an explicit sign, "-" when zero.
func signedMoney(v decimal.Decimal, currency string) string {
	return finances.M(v, currency).SignedString()
}

// WarningsMarkdown renders partial-data warnings as a markdown block quote,
// or an empty string when there is nothing to say.
func WarningsMarkdown(warnings []finances.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Warnings")
	for _, w := range warnings {
		doc.Blockquote(fmt.Sprintf("⚠ %s", w.Error()))
	}
	return doc.String()
}
