package core

import (
	"fmt"
	"sort"
	"time"
)

// MonthKey is a year+month bucket in the fixed sortable form "YYYY-MM".
// Lexicographic order on valid keys is chronological order.
type MonthKey string

// MonthKeyOf returns the bucket for a date, discarding the day.
func MonthKeyOf(d Date) MonthKey {
	return MonthKey(fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month())))
}

// CurrentMonthKey returns the bucket for now. It is the default selection and
// the fallback when no expenses exist yet.
func CurrentMonthKey(now time.Time) MonthKey {
	return MonthKey(fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month())))
}

// ParseMonthKey validates a "YYYY-MM" string.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return MonthKey(fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))), nil
}

// DistinctMonths returns the distinct month buckets present in the collection,
// most recent first. An empty collection yields an empty slice; the composing
// layer substitutes the current month in that case.
func DistinctMonths(expenses []Expense) []MonthKey {
	seen := map[MonthKey]struct{}{}
	var keys []MonthKey
	for _, e := range expenses {
		k := MonthKeyOf(e.Date)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })
	return keys
}

func (k MonthKey) parts() (year int, month time.Month) {
	t, err := time.Parse("2006-01", string(k))
	if err != nil {
		return 0, 0
	}
	return t.Year(), t.Month()
}

// Year returns the bucket's year, 0 for a malformed key.
func (k MonthKey) Year() int {
	y, _ := k.parts()
	return y
}

// Month returns the bucket's month (1-12), 0 for a malformed key.
func (k MonthKey) Month() int {
	_, m := k.parts()
	return int(m)
}

// Days returns the number of days in the bucket's month, accounting for
// variable month lengths and leap years. Malformed keys yield 0.
func (k MonthKey) Days() int {
	y, m := k.parts()
	if y == 0 {
		return 0
	}
	// Day zero of the next month is the last day of this one.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Label renders the bucket for the month selector, e.g. "março de 2024".
func (k MonthKey) Label() string {
	y, m := k.parts()
	if y == 0 {
		return string(k)
	}
	return fmt.Sprintf("%s de %d", monthNames[int(m)-1], y)
}

func (k MonthKey) String() string {
	return string(k)
}
