package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatMoney renders an amount as US dollars with grouped thousands,
// e.g. -1234.5 becomes "-$1,234.50". Rounding is half away from zero.
func FormatMoney(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(2).IntPart()
	return sign + moneyPrinter.Sprintf("$%d.%02d", whole.IntPart(), cents)
}

// FormatPercent renders a whole-number percentage such as "83%".
func FormatPercent(p int) string {
	return moneyPrinter.Sprintf("%d%%", p)
}
