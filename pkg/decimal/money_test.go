package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRoundingHalfUp(t *testing.T) {
	// Ties go away from zero at the second decimal place.
	cases := []struct{ in, out string }{
		{"2.004", "2.00"},
		{"2.005", "2.01"},
		{"2.015", "2.02"},
		{"-2.005", "-2.01"},
		{"1234.565", "1234.57"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		got := m.Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct{ in, out string }{
		{"0", "$0.00"},
		{"2.005", "$2.01"},
		{"999.9", "$999.90"},
		{"1234.565", "$1,234.57"},
		{"1234567.891", "$1,234,567.89"},
		{"-1234.565", "$-1,234.57"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.Format(); got != c.out {
			t.Fatalf("Format(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	cases := []struct{ in, out string }{
		{"0.00", "0.00"},
		{"123.45", "123.45"},
		{"1234.00", "1,234.00"},
		{"123456", "123,456"},
		{"1234567.89", "1,234,567.89"},
		{"-1234.57", "-1,234.57"},
	}
	for _, c := range cases {
		if got := GroupThousands(c.in); got != c.out {
			t.Fatalf("GroupThousands(%s) got %s want %s", c.in, got, c.out)
		}
	}
}
