// Package pricing converts a competitor's advertised price into the
// retailer's shelf price.
//
// The conversion is a piecewise table: fixed tiers up through $52.99, then
//
//	adjusted = round(price * 0.9) - 0.01
//
// for anything above, rounding half to even. Tiers are evaluated top to
// bottom and the first matching range wins. Every tier's lower bound is
// exclusive, which leaves small gaps at the seams (9.00, 10.00 and the
// 31.98-31.99 sliver all have no tier); a price inside a gap has no defined
// shelf price and Adjust reports that instead of inventing one.
package pricing

import (
	"math"
	"strconv"
)

// tier assigns the half-open range (low, high] a fixed shelf price.
type tier struct {
	low  float64
	high float64
	out  string
}

// Downstream repricing sheets depend on these exact cut points, gaps
// included. Do not straighten the boundaries.
var tiers = []tier{
	{7.99, 8.99, "7.99"},
	{9, 9.99, "8.99"},
	{10, 13.99, "10.99"},
	{14, 14.99, "11.99"},
	{15, 17.99, "14.99"},
	{18, 19.99, "15.99"},
	{20, 24.99, "21.99"},
	{25, 27.99, "23.99"},
	{28, 31.98, "25.99"},
	{31.99, 34.99, "31.99"},
	{35, 36.99, "33.99"},
	{37, 39.99, "35.99"},
	{40, 47.98, "37.99"},
	{47.99, 52.99, "47.99"},
}

// Adjust maps a raw competitor price to a shelf price string. Prices at or
// below 7.99 pass through unchanged, negatives included. ok is false when
// the price falls in one of the table's gaps.
func Adjust(price float64) (string, bool) {
	if price <= 7.99 {
		return formatPrice(price), true
	}
	for _, t := range tiers {
		if price > t.low && price <= t.high {
			return t.out, true
		}
	}
	if price > 52.99 {
		return formatPrice(math.RoundToEven(price*0.9) - 0.01), true
	}
	return "", false
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
