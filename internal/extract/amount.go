// Package extract turns unstructured bank SMS text into structured
// transaction fields using a fixed set of heuristic pattern matchers.
package extract

import (
	"regexp"

	"khata/internal/core"
)

// Matches "Rs. 500", "INR 500", "Rs 500.00", "Sent Rs.500". The fraction is
// capped at two digits; a longer tail is left unmatched.
var currencyAmount = regexp.MustCompile(`(?i)(?:Rs\.?|INR)\s*(\d+(?:\.\d{1,2})?)`)

// Amount scans text for the first currency-keyword amount and returns it.
// Returns zero when nothing matches or the number fails to parse.
func Amount(text string) core.Money {
	m := currencyAmount.FindStringSubmatch(text)
	if m == nil {
		return core.Money{}
	}
	return toMoney(m[1])
}

// AmountAfter returns the first amount immediately following the literal
// anchor phrase. Anchoring pins the match to a known bank prefix
// ("Sent Rs.", "credited by Rs.") so reference numbers elsewhere in the
// message cannot be picked up. Dots in the anchor match literally.
func AmountAfter(text, anchor string) core.Money {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(anchor) + `\s*(\d+(?:\.\d{1,2})?)`)
	if err != nil {
		return core.Money{}
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return core.Money{}
	}
	return toMoney(m[1])
}

func toMoney(s string) core.Money {
	paise, err := core.ParseDecimalToPaise(s)
	if err != nil {
		// Zero or malformed captures resolve to zero; the classifier
		// gate discards them.
		return core.Money{}
	}
	return core.Money{Paise: paise}
}
