package http

import "tinocontrol/internal/core"

// Template view models. Handlers build these from core aggregates; templates
// never touch domain types directly.

type monthOption struct {
	Key      string
	Label    string
	Selected bool
}

type categoryView struct {
	ID      string
	Name    string
	Icon    string
	Color   string
	BgColor string
	Total   string
	Count   int
}

type overviewView struct {
	MonthKey     string
	MonthLabel   string
	Total        string
	Count        int
	DailyAverage string
	Months       []monthOption
	Categories   []categoryView
}

type expenseItemView struct {
	ID           string
	Description  string
	Amount       string
	Date         string
	CategoryName string
	Icon         string
	Color        string
	BgColor      string
}

type expenseListView struct {
	MonthKey   string
	MonthLabel string
	Months     []monthOption
	Items      []expenseItemView
}

type formView struct {
	Categories []categoryView
	Today      string
}

func buildMonthOptions(months []core.MonthKey, selected core.MonthKey) []monthOption {
	out := make([]monthOption, 0, len(months))
	for _, m := range months {
		out = append(out, monthOption{
			Key:      m.String(),
			Label:    m.Label(),
			Selected: m == selected,
		})
	}
	return out
}

func buildOverviewView(expenses []core.Expense, months []core.MonthKey, bucket core.MonthKey) overviewView {
	o := core.OverviewOf(expenses, bucket)
	view := overviewView{
		MonthKey:     bucket.String(),
		MonthLabel:   bucket.Label(),
		Total:        o.Total.Format(),
		Count:        o.Count,
		DailyAverage: o.DailyAverage.Format(),
		Months:       buildMonthOptions(months, bucket),
	}
	for _, cs := range o.ByCategory {
		view.Categories = append(view.Categories, categoryView{
			ID:      cs.Category.String(),
			Name:    cs.Config.Name,
			Icon:    cs.Config.Icon,
			Color:   cs.Config.Color,
			BgColor: cs.Config.BgColor,
			Total:   cs.Total.Format(),
			Count:   cs.Count,
		})
	}
	return view
}

func buildExpenseListView(expenses []core.Expense, months []core.MonthKey, bucket core.MonthKey) expenseListView {
	view := expenseListView{
		MonthKey:   bucket.String(),
		MonthLabel: bucket.Label(),
		Months:     buildMonthOptions(months, bucket),
	}
	for _, e := range core.SortNewestFirst(core.FilterByMonth(expenses, bucket)) {
		cfg := e.Category.Config()
		view.Items = append(view.Items, expenseItemView{
			ID:           e.ID,
			Description:  e.Description,
			Amount:       e.Amount.Format(),
			Date:         formatShortDate(e.Date),
			CategoryName: cfg.Name,
			Icon:         cfg.Icon,
			Color:        cfg.Color,
			BgColor:      cfg.BgColor,
		})
	}
	return view
}
