package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Aggregation over expense collections. Every function here is pure and
// recomputes from its inputs on each call; nothing is cached.

// FilterByMonth retains the expenses whose date falls in the given bucket.
func FilterByMonth(expenses []Expense, bucket MonthKey) []Expense {
	var out []Expense
	for _, e := range expenses {
		if MonthKeyOf(e.Date) == bucket {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCategoryAndMonth restricts FilterByMonth to a single category.
func FilterByCategoryAndMonth(expenses []Expense, category Category, bucket MonthKey) []Expense {
	var out []Expense
	for _, e := range expenses {
		if e.Category == category && MonthKeyOf(e.Date) == bucket {
			out = append(out, e)
		}
	}
	return out
}

// SortNewestFirst returns a copy ordered by date descending, most recently
// created first among equal dates. The input slice is left untouched.
func SortNewestFirst(expenses []Expense) []Expense {
	out := make([]Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// TotalOf sums the amounts of a subset; zero for an empty subset.
func TotalOf(expenses []Expense) Money {
	var total Money
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// CountOf returns the cardinality of a subset.
func CountOf(expenses []Expense) int {
	return len(expenses)
}

// DailyAverage divides a monthly total by the bucket's day count, rounding
// half-up to whole cents. Day counts are 28-31, never zero.
func DailyAverage(total Money, bucket MonthKey) Money {
	days := bucket.Days()
	if days == 0 {
		return Money{}
	}
	avg := decimal.NewFromInt(total.Cents).
		Div(decimal.NewFromInt(int64(days))).
		Round(0)
	return Money{Cents: avg.IntPart()}
}

// CategorySummary is the per-category slice of a month overview.
type CategorySummary struct {
	Category Category
	Config   CategoryConfig
	Total    Money
	Count    int
}

// MonthOverview is the full aggregate for one bucket: total, count, daily
// average and the per-category breakdown in registry display order.
type MonthOverview struct {
	Bucket       MonthKey
	Total        Money
	Count        int
	DailyAverage Money
	ByCategory   []CategorySummary
}

// OverviewOf computes the MonthOverview for a bucket over a full collection.
func OverviewOf(expenses []Expense, bucket MonthKey) MonthOverview {
	monthly := FilterByMonth(expenses, bucket)
	total := TotalOf(monthly)

	overview := MonthOverview{
		Bucket:       bucket,
		Total:        total,
		Count:        CountOf(monthly),
		DailyAverage: DailyAverage(total, bucket),
	}
	for _, c := range Categories() {
		subset := FilterByCategoryAndMonth(expenses, c, bucket)
		overview.ByCategory = append(overview.ByCategory, CategorySummary{
			Category: c,
			Config:   c.Config(),
			Total:    TotalOf(subset),
			Count:    CountOf(subset),
		})
	}
	return overview
}
