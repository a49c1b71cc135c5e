package record

import (
	"strconv"
	"strings"
)

// Money is the result of interpreting a currency string. Valid is false
// when the raw value did not parse as a number.
type Money struct {
	Value float64
	Valid bool
}

var moneyCleaner = strings.NewReplacer("$", "", " ", "")

// ParseMoney interprets a currency string such as "$12.50". Only dollar
// signs and spaces are stripped before parsing. Feeds carry plenty of
// unpriced rows ("N/A", ""), so a failed parse yields an invalid Money
// rather than an error; this must never abort a run.
func ParseMoney(raw string) Money {
	v, err := strconv.ParseFloat(moneyCleaner.Replace(raw), 64)
	if err != nil {
		return Money{}
	}
	return Money{Value: v, Valid: true}
}
