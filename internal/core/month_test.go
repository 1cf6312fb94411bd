package core

import (
	"testing"
	"time"
)

func TestMonthKeyOf(t *testing.T) {
	// Same calendar month, any day -> identical bucket.
	if a, b := MonthKeyOf(NewDate(2024, 3, 1)), MonthKeyOf(NewDate(2024, 3, 31)); a != b {
		t.Fatalf("same month produced different buckets: %s vs %s", a, b)
	}
	if a, b := MonthKeyOf(NewDate(2024, 3, 15)), MonthKeyOf(NewDate(2024, 4, 15)); a == b {
		t.Fatalf("different months produced the same bucket: %s", a)
	}
	// Zero-padded, sortable form.
	if got := MonthKeyOf(NewDate(2024, 1, 5)); got != "2024-01" {
		t.Fatalf("got %s, want 2024-01", got)
	}
}

func TestCurrentMonthKey(t *testing.T) {
	now := time.Date(2024, time.February, 29, 13, 45, 0, 0, time.UTC)
	if got := CurrentMonthKey(now); got != "2024-02" {
		t.Fatalf("got %s, want 2024-02", got)
	}
}

func TestParseMonthKey(t *testing.T) {
	k, err := ParseMonthKey("2024-03")
	if err != nil || k != "2024-03" {
		t.Fatalf("unexpected: key=%s err=%v", k, err)
	}
	for _, bad := range []string{"", "2024", "2024-13", "03-2024", "2024-3-1"} {
		if _, err := ParseMonthKey(bad); err == nil {
			t.Fatalf("ParseMonthKey(%q): expected error", bad)
		}
	}
}

func TestDistinctMonthsDescending(t *testing.T) {
	expenses := []Expense{
		{Date: NewDate(2024, 1, 10)},
		{Date: NewDate(2024, 3, 5)},
		{Date: NewDate(2024, 2, 20)},
		{Date: NewDate(2024, 3, 18)}, // duplicate bucket
	}
	got := DistinctMonths(expenses)
	want := []MonthKey{"2024-03", "2024-02", "2024-01"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDistinctMonthsEmpty(t *testing.T) {
	if got := DistinctMonths(nil); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestMonthKeyDays(t *testing.T) {
	tests := []struct {
		key  MonthKey
		want int
	}{
		{"2024-02", 29}, // leap year
		{"2023-02", 28},
		{"2024-04", 30},
		{"2024-01", 31},
		{"2100-02", 28}, // century, not a leap year
		{"2000-02", 29}, // divisible by 400
	}
	for _, tt := range tests {
		if got := tt.key.Days(); got != tt.want {
			t.Fatalf("%s.Days() = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestMonthKeyLabel(t *testing.T) {
	if got := MonthKey("2024-03").Label(); got != "março de 2024" {
		t.Fatalf("got %q", got)
	}
	if got := MonthKey("garbage").Label(); got != "garbage" {
		t.Fatalf("malformed key should render verbatim, got %q", got)
	}
}
