package extract

import (
	"regexp"
	"strings"

	"khata/internal/core"
)

// merchantMaxLen caps positional captures; keyword-table results are short
// by construction and manual entries are not extracted at all.
const merchantMaxLen = 20

// Boilerplate tokens removed before any matching. Removal, not replacement:
// adjacent tokens may merge, as in the source messages.
var boilerplate = regexp.MustCompile(`(?i)(Info:)|(Txn)|(Ref)|(No\.)`)

// Ordered keyword table; first match in table order wins. Kept as data so new
// merchants are a one-line change.
type keywordRule struct {
	keyword  string
	merchant string
}

var merchantKeywords = []keywordRule{
	{"zomato", "Zomato"},
	{"swiggy", "Swiggy"},
	{"uber", "Uber"},
	{"ola", "Ola"},
	{"blinkit", "Blinkit"},
	{"amazon", "Amazon"},
	{"netflix", "Netflix"},
	{"spotify", "Spotify"},
	{"recharge", "Mobile Recharge"},
	{"jio", "Mobile Recharge"},
	{"airtel", "Mobile Recharge"},
}

// Positional captures. The lazy group grows until a connective token
// ("on", "via", "using"), punctuation at a token break, or end of text, so
// multi-word merchant names ("STARBUCKS COFFEE") survive intact.
var (
	atPattern = regexp.MustCompile(`(?i)\bat\s+([A-Za-z0-9\s_-]+?)(?:\s+(?:on|via|using)\b|[.,](?:\s|$)|$)`)
	toPattern = regexp.MustCompile(`(?i)\bto\s+([A-Za-z0-9@._\s-]+?)(?:\s+(?:on|via|using)\b|[.,](?:\s|$)|$)`)
)

// Merchant derives a human-readable counterparty name from SMS text.
// Rule order: keyword table, "at <name>", "to <name-or-UPI-handle>", then
// the Unknown sentinel. The keyword table takes priority so categorization
// stays consistent regardless of the surrounding message shape.
func Merchant(text string) string {
	clean := boilerplate.ReplaceAllString(text, "")
	lower := strings.ToLower(clean)

	for _, r := range merchantKeywords {
		if strings.Contains(lower, r.keyword) {
			return r.merchant
		}
	}

	if m := atPattern.FindStringSubmatch(clean); m != nil {
		if name := clamp(m[1]); name != "" {
			return name
		}
	}

	if m := toPattern.FindStringSubmatch(clean); m != nil {
		raw := strings.TrimSpace(m[1])
		// UPI handles keep only the part before the bank suffix
		// ("starbucks@hdfc" -> "starbucks").
		if i := strings.Index(raw, "@"); i >= 0 {
			raw = raw[:i]
		}
		if name := clamp(raw); name != "" {
			return name
		}
	}

	return core.UnknownMerchant
}

func clamp(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > merchantMaxLen {
		s = strings.TrimSpace(s[:merchantMaxLen])
	}
	return s
}
