// Package render formats domain values for the terminal: BRL amounts,
// Brazilian dates and plain-text tables.
package render

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// brl is the full currency descriptor, constructor-resolved so it is never nil.
var brl = *money.New(0, money.BRL).Currency()

// BRL formats a major-unit amount as Brazilian currency ("R$ 1.234,56").
func BRL(v decimal.Decimal) string {
	minor := v.Shift(int32(brl.Fraction))
	return brl.Formatter().Format(minor.IntPart())
}

// SignedBRL is BRL with an explicit sign; zero renders as "-".
func SignedBRL(v decimal.Decimal) string {
	if v.IsZero() {
		return "-"
	}
	if v.IsPositive() {
		return "+" + BRL(v)
	}
	return BRL(v)
}

// Percent formats a percent-point value in Brazilian convention ("2,80%").
func Percent(v decimal.Decimal) string {
	return strings.ReplaceAll(v.StringFixed(2), ".", ",") + "%"
}
