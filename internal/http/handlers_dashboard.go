package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"tinocontrol/internal/core"
	applog "tinocontrol/internal/log"
)

// handleIndex renders the dashboard page shell; the overview and list load
// themselves as partials.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded")
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	form := formView{Today: s.now().Format("2006-01-02")}
	for _, c := range core.Categories() {
		cfg := c.Config()
		form.Categories = append(form.Categories, categoryView{
			ID:   c.String(),
			Name: cfg.Name,
			Icon: cfg.Icon,
		})
	}

	if err := s.templates.ExecuteTemplate(w, "dashboard_page", form); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleMonthOverview returns the overview partial: total, transaction count,
// daily average and the per-category cards for the selected month.
func (s *Server) handleMonthOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	expenses := s.repo.GetAll(r.Context())
	months := s.monthOptions(expenses)
	bucket := s.selectedMonth(r, months)

	// An explicit selection also drives the expense list; it listens for
	// this event and re-fetches with the settled selector value.
	if r.FormValue("month") != "" {
		w.Header().Set("HX-Trigger-After-Settle", fmt.Sprintf(`{"month:changed":{"month":%q}}`, bucket))
	}

	view := buildOverviewView(expenses, months, bucket)
	if err := s.templates.ExecuteTemplate(w, "month_overview", view); err != nil {
		slog.ErrorContext(r.Context(), "Overview template execution failed",
			applog.FieldError, err, applog.FieldMonthKey, bucket.String())
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
