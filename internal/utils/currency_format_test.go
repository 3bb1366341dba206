package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := map[int64]string{
		0:        "Rs0",
		7:        "Rs7",
		999:      "Rs999",
		1000:     "Rs1,000",
		99999:    "Rs99,999",
		100000:   "Rs1,00,000",
		1234567:  "Rs12,34,567",
		-1234567: "-Rs12,34,567",
		10000000: "Rs1,00,00,000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, FormatINR(amount), "amount %d", amount)
	}
}

func TestAmountInWords(t *testing.T) {
	cases := map[int64]string{
		0:         "zero",
		7:         "seven",
		19:        "nineteen",
		42:        "forty two",
		100:       "one hundred",
		705:       "seven hundred five",
		1000:      "one thousand",
		1234:      "one thousand two hundred thirty four",
		100000:    "one lakh",
		250000:    "two lakh fifty thousand",
		10000000:  "one crore",
		12345678:  "one crore twenty three lakh forty five thousand six hundred seventy eight",
		-42:       "minus forty two",
		999999999: "ninety nine crore ninety nine lakh ninety nine thousand nine hundred ninety nine",
	}
	for amount, want := range cases {
		assert.Equal(t, want, AmountInWords(amount), "amount %d", amount)
	}
}
