// ABOUTME: Price string parsing utilities for French retail formats
// ABOUTME: Handles comma decimals, euro signs and non-breaking spaces

package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalPattern = regexp.MustCompile(`(\d+)[.,](\d{1,2})`)
	integerPattern = regexp.MustCompile(`(\d+)`)
)

// Price extracts a price from retail display text such as "2,49",
// "3,99 €" or "0.69". It returns nil when the text carries no numeric
// amount.
func Price(text string) *float64 {
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.TrimSpace(text)

	if m := decimalPattern.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(m[1]+"."+m[2], 64)
		if err == nil {
			return &v
		}
	}

	if m := integerPattern.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return &v
		}
	}

	return nil
}
