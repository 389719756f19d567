package core

import (
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	now := time.Now().UnixMilli()
	good := Transaction{
		Amount:    Money{Paise: 12345},
		Merchant:  "Zomato",
		Type:      Debit,
		Timestamp: now,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Amount: Money{Paise: 0}, Merchant: "Zomato", Type: Debit, Timestamp: now},
		{Amount: Money{Paise: -1}, Merchant: "Zomato", Type: Debit, Timestamp: now},
		{Amount: Money{Paise: 1}, Merchant: "  ", Type: Debit, Timestamp: now},
		{Amount: Money{Paise: 1}, Merchant: "Zomato", Type: "REFUND", Timestamp: now},
		{Amount: Money{Paise: 1}, Merchant: "Zomato", Type: Credit, Timestamp: 0},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Errorf("case %d expected error", i)
		}
	}
}

func TestTransactionTime(t *testing.T) {
	ts := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	tx := Transaction{Timestamp: ts.UnixMilli()}
	if !tx.Time().Equal(ts) {
		t.Fatalf("Time() = %v, want %v", tx.Time(), ts)
	}
	if tx.Time().Location() != time.UTC {
		t.Fatalf("Time() must be UTC")
	}
}

func TestTxTypeValid(t *testing.T) {
	if !Debit.Valid() || !Credit.Valid() {
		t.Fatal("DEBIT and CREDIT must be valid")
	}
	if TxType("").Valid() || TxType("refund").Valid() {
		t.Fatal("unexpected valid type")
	}
}
