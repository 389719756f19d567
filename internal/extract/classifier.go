package extract

import (
	"strings"
	"time"

	"khata/internal/core"
)

// DepositMerchant labels incoming-funds transactions. Sender metadata from
// the SMS event is intentionally not used for the merchant field.
const DepositMerchant = "Deposit / Transfer"

// Debit trigger phrases, matched case-insensitively anywhere in the body.
var debitTriggers = []string{"Sent Rs.", "debited", "spent", "paid"}

// creditFormat pins the amount search for a known bank credit message to its
// literal prefix. Bank-specific formats are configuration of the one
// classification path, not separate code paths.
type creditFormat struct {
	trigger string
	anchor  string
}

var creditFormats = []creditFormat{
	{trigger: "credited by rs.", anchor: "credited by Rs."},
}

// Classify inspects an SMS body and produces a transaction, or reports false
// for messages that are not recognizable money movements. Amounts that
// resolve to zero are discarded here; this is the sole gate keeping garbage
// records out of the store.
func Classify(body string, ts time.Time) (core.Transaction, bool) {
	lower := strings.ToLower(body)

	var (
		amount   core.Money
		merchant string
		txType   core.TxType
	)

	switch {
	case containsAny(lower, debitTriggers):
		// A body matching both trigger sets is treated as a debit.
		amount = Amount(body)
		merchant = Merchant(body)
		txType = core.Debit
	case strings.Contains(lower, "credited"):
		amount = creditAmount(body, lower)
		merchant = DepositMerchant
		txType = core.Credit
	default:
		return core.Transaction{}, false
	}

	if amount.Paise <= 0 {
		return core.Transaction{}, false
	}

	return core.Transaction{
		Amount:    amount,
		Merchant:  merchant,
		Type:      txType,
		Timestamp: ts.UnixMilli(),
	}, true
}

// creditAmount uses an anchored extraction for known bank formats and falls
// back to the generic keyword scan for any other "credited" message.
func creditAmount(body, lower string) core.Money {
	for _, f := range creditFormats {
		if strings.Contains(lower, f.trigger) {
			return AmountAfter(body, f.anchor)
		}
	}
	return Amount(body)
}

func containsAny(lower string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
