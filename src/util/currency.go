package util

import (
	"strconv"
	"strings"
)

// FormatINR renders an amount as Indian Rupees with en-IN digit grouping:
// the last three integer digits, then groups of two (12,34,567.89).
// Display only; stored amounts stay plain decimal numbers.
func FormatINR(amount float64) string {
	negative := amount < 0
	s := strconv.FormatFloat(abs(amount), 'f', 2, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")
	grouped := groupIndian(intPart)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(grouped)
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
