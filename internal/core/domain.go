package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Debit  TxType = "DEBIT"
	Credit TxType = "CREDIT"
)

// UnknownMerchant is the sentinel used when no merchant could be derived.
const UnknownMerchant = "Unknown"

// DefaultBudget is the monthly budget used until the user sets one (₹5000).
var DefaultBudget = Money{Paise: 500000}

type (
	TxType string

	Money struct {
		Paise int64
	}

	// Transaction is a single parsed or manually entered money movement.
	// Timestamp is epoch milliseconds: the SMS receipt time for parsed
	// records, the creation time for manual entries.
	Transaction struct {
		ID        int64
		Amount    Money
		Merchant  string
		Type      TxType
		Timestamp int64
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrEmptyMerchant    = errors.New("empty merchant")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

func (t TxType) Valid() bool {
	switch t {
	case Debit, Credit:
		return true
	default:
		return false
	}
}

func (m Money) Validate() error {
	if m.Paise <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Time returns the transaction timestamp as UTC time. Epoch milliseconds
// carry no zone, so all month bucketing works in UTC.
func (t Transaction) Time() time.Time {
	return time.UnixMilli(t.Timestamp).UTC()
}

func (t Transaction) Validate() error {
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Merchant)) == 0 {
		return ErrEmptyMerchant
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.Timestamp <= 0 {
		return ErrInvalidTimestamp
	}
	return nil
}
