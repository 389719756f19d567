package core

import "testing"

func TestParseDecimalToPaise(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12", 1200, true},
		{"0.01", 1, true},
		{"12.345", 1234, true}, // rounds down
		{"12.346", 1235, true}, // rounds up
		{".50", 50, true},
		{"5000", 500000, true},
		{"", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"-1.00", 0, false},
		{"+1.00", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
		{"12a", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToPaise(tc.in)
		if tc.ok && err != nil {
			t.Errorf("ParseDecimalToPaise(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("ParseDecimalToPaise(%q) expected error, got %d", tc.in, got)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDecimalToPaise(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoneyRupees(t *testing.T) {
	if got := (Money{Paise: 1234}).Rupees(); got != 12.34 {
		t.Fatalf("Rupees() = %v, want 12.34", got)
	}
	if got := (Money{Paise: 1234}).String(); got != "12.34" {
		t.Fatalf("String() = %q, want %q", got, "12.34")
	}
}
