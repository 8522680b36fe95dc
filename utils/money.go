package utils

import "github.com/dustin/go-humanize"

// FormatRupees renders an amount with thousands separators, e.g. ₹15,000
func FormatRupees(amount int64) string {
	return "₹" + humanize.Comma(amount)
}
