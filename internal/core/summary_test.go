package core

import "testing"

func sampleCollection() []Expense {
	return []Expense{
		{ID: "1", Description: "Mercado", Amount: Money{Cents: 12000}, Category: CategoryComida, Date: NewDate(2024, 3, 2)},
		{ID: "2", Description: "Ônibus", Amount: Money{Cents: 450}, Category: CategoryTransporte, Date: NewDate(2024, 3, 10)},
		{ID: "3", Description: "Aluguel", Amount: Money{Cents: 150000}, Category: CategoryMoradia, Date: NewDate(2024, 3, 5)},
		{ID: "4", Description: "Cinema", Amount: Money{Cents: 3000}, Category: CategoryLazer, Date: NewDate(2024, 2, 14)},
		{ID: "5", Description: "Restaurante", Amount: Money{Cents: 8000}, Category: CategoryComida, Date: NewDate(2024, 3, 20)},
	}
}

func TestFilterByMonth(t *testing.T) {
	march := FilterByMonth(sampleCollection(), "2024-03")
	if len(march) != 4 {
		t.Fatalf("expected 4 expenses in 2024-03, got %d", len(march))
	}
	if got := FilterByMonth(sampleCollection(), "2023-12"); len(got) != 0 {
		t.Fatalf("expected none in 2023-12, got %d", len(got))
	}
}

func TestFilterByCategoryAndMonth(t *testing.T) {
	comida := FilterByCategoryAndMonth(sampleCollection(), CategoryComida, "2024-03")
	if len(comida) != 2 {
		t.Fatalf("expected 2 comida expenses, got %d", len(comida))
	}
	if got := TotalOf(comida); got.Cents != 20000 {
		t.Fatalf("comida total = %d, want 20000", got.Cents)
	}
}

func TestSortNewestFirst(t *testing.T) {
	in := []Expense{
		{ID: "a", Date: NewDate(2024, 3, 2), CreatedAt: 1},
		{ID: "b", Date: NewDate(2024, 3, 20), CreatedAt: 2},
		{ID: "c", Date: NewDate(2024, 3, 11), CreatedAt: 3},
		{ID: "d", Date: NewDate(2024, 3, 11), CreatedAt: 9},
	}
	got := SortNewestFirst(in)
	want := []string{"b", "d", "c", "a"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
	// The input keeps its insertion order.
	if in[0].ID != "a" || in[3].ID != "d" {
		t.Fatalf("input mutated: %+v", in)
	}
}

func TestTotalAndCount(t *testing.T) {
	march := FilterByMonth(sampleCollection(), "2024-03")
	if got := TotalOf(march); got.Cents != 170450 {
		t.Fatalf("total = %d, want 170450", got.Cents)
	}
	if got := CountOf(march); got != 4 {
		t.Fatalf("count = %d, want 4", got)
	}
	if got := TotalOf(nil); got.Cents != 0 {
		t.Fatalf("empty total = %d, want 0", got.Cents)
	}
}

func TestDailyAverage(t *testing.T) {
	tests := []struct {
		bucket MonthKey
		total  int64
		want   int64
	}{
		{"2024-02", 29000, 1000}, // leap February, 29 days
		{"2024-04", 30000, 1000}, // 30 days
		{"2024-01", 31000, 1000}, // 31 days
		{"2023-02", 2800, 100},   // plain February
		{"2024-03", 0, 0},
		{"2024-03", 1000, 32}, // 1000/31 = 32.26 -> 32
		{"2024-03", 1550, 50}, // 1550/31 = 50.0
	}
	for _, tt := range tests {
		got := DailyAverage(Money{Cents: tt.total}, tt.bucket)
		if got.Cents != tt.want {
			t.Fatalf("DailyAverage(%d, %s) = %d, want %d", tt.total, tt.bucket, got.Cents, tt.want)
		}
	}
}

func TestOverviewOf(t *testing.T) {
	o := OverviewOf(sampleCollection(), "2024-03")
	if o.Bucket != "2024-03" {
		t.Fatalf("bucket = %s", o.Bucket)
	}
	if o.Total.Cents != 170450 || o.Count != 4 {
		t.Fatalf("total=%d count=%d", o.Total.Cents, o.Count)
	}
	// 170450 / 31 = 5498.38... -> 5498
	if o.DailyAverage.Cents != 5498 {
		t.Fatalf("daily average = %d, want 5498", o.DailyAverage.Cents)
	}
	if len(o.ByCategory) != 5 {
		t.Fatalf("expected 5 category summaries, got %d", len(o.ByCategory))
	}
	byCat := map[Category]CategorySummary{}
	for _, cs := range o.ByCategory {
		byCat[cs.Category] = cs
	}
	if byCat[CategoryComida].Total.Cents != 20000 || byCat[CategoryComida].Count != 2 {
		t.Fatalf("comida summary: %+v", byCat[CategoryComida])
	}
	if byCat[CategoryLazer].Total.Cents != 0 || byCat[CategoryLazer].Count != 0 {
		t.Fatalf("lazer should be empty in 2024-03: %+v", byCat[CategoryLazer])
	}
	// Registry display order is preserved.
	if o.ByCategory[0].Category != CategoryComida || o.ByCategory[4].Category != CategoryOutros {
		t.Fatalf("unexpected category order: %v, %v", o.ByCategory[0].Category, o.ByCategory[4].Category)
	}
}
