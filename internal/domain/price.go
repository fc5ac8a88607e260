package domain

import "strconv"

// Currency is the fixed label appended to every displayed price.
const Currency = "AZN"

// FormatAmount renders a number the way a default C++ ostream prints a
// double: up to six significant digits, no trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatPrice renders an amount followed by the currency label.
func FormatPrice(v float64) string {
	return FormatAmount(v) + " " + Currency
}
