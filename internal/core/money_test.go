package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"25.50", 2550, false},
		{" 7 ", 700, false},
		{"0.01", 1, false},
		{".5", 50, false},
		{"12.345", 1234, false}, // third digit rounds down
		{"12.346", 1235, false}, // third digit rounds up
		{"", 0, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"1.2.3", 0, true},
		{"abc", 0, true},
		{"12x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDecimalToCents(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMoneyUnitsRoundTrip(t *testing.T) {
	tests := []struct {
		units float64
		cents int64
	}{
		{25.5, 2550},
		{0.01, 1},
		{1234.56, 123456},
		{10, 1000},
	}
	for _, tt := range tests {
		m := MoneyFromUnits(tt.units)
		if m.Cents != tt.cents {
			t.Fatalf("MoneyFromUnits(%v) = %d cents, want %d", tt.units, m.Cents, tt.cents)
		}
		if got := m.Units(); got != tt.units {
			t.Fatalf("Units() = %v, want %v", got, tt.units)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{2550, "R$ 25,50"},
		{5, "R$ 0,05"},
		{123456, "R$ 1.234,56"},
		{100000000, "R$ 1.000.000,00"},
		{-2550, "-R$ 25,50"},
	}
	for _, tt := range tests {
		if got := (Money{Cents: tt.cents}).Format(); got != tt.want {
			t.Fatalf("Format(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
