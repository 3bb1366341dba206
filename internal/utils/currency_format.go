package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders a whole-rupee amount the way report consumers print it,
// e.g. -1234567 -> "-Rs12,34,567" (Indian digit grouping, no paise).
func FormatINR(amount int64) string {
	d := decimal.NewFromInt(amount)
	negative := d.IsNegative()
	digits := d.Abs().Round(0).String()

	grouped := groupIndian(digits)
	if negative {
		return "-Rs" + grouped
	}
	return "Rs" + grouped
}

// groupIndian inserts Indian-system separators: last three digits, then
// groups of two (12,34,56,789).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

var onesWords = []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen"}

var tensWords = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety"}

// AmountInWords spells a rupee amount in the Indian numbering system
// (crore/lakh/thousand/hundred), matching the entry-form hint text.
// Amounts beyond 99,99,99,999 are returned as digits.
func AmountInWords(amount int64) string {
	if amount == 0 {
		return "zero"
	}
	if amount < 0 {
		return "minus " + AmountInWords(-amount)
	}
	if amount > 999999999 {
		return decimal.NewFromInt(amount).String()
	}

	n := amount
	crore := n / 10000000
	n %= 10000000
	lakh := n / 100000
	n %= 100000
	thousand := n / 1000
	n %= 1000
	hundred := n / 100
	n %= 100

	var b strings.Builder
	appendPart := func(value int64, unit string) {
		if value == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(belowThousand(value))
		if unit != "" {
			b.WriteByte(' ')
			b.WriteString(unit)
		}
	}
	appendPart(crore, "crore")
	appendPart(lakh, "lakh")
	appendPart(thousand, "thousand")
	appendPart(hundred, "hundred")
	appendPart(n, "")
	return b.String()
}

func belowThousand(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		word := tensWords[n/10]
		if n%10 != 0 {
			word += " " + onesWords[n%10]
		}
		return word
	default:
		word := onesWords[n/100] + " hundred"
		if n%100 != 0 {
			word += " " + belowThousand(n%100)
		}
		return word
	}
}
