package http

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"tinocontrol/internal/core"
	applog "tinocontrol/internal/log"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error",
			applog.FieldError, err, applog.FieldMethod, r.Method, applog.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Formato de requisição inválido</div>`))
		return
	}

	desc := sanitizeInput(r.Form.Get("description"))
	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	category := core.Category(sanitizeInput(r.Form.Get("category")))
	dateStr := strings.TrimSpace(r.Form.Get("date"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Valor inválido</div>`))
		return
	}

	now := s.now()
	date := core.NewDate(now.Year(), int(now.Month()), now.Day())
	if dateStr != "" {
		date, err = core.ParseDate(dateStr)
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`<div class="error">Data inválida</div>`))
			return
		}
	}

	exp, err := s.repo.Create(desc, core.Money{Cents: cents}, category, date)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Dados inválidos: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	if _, err := s.repo.Add(r.Context(), exp); err != nil {
		slog.ErrorContext(r.Context(), "Failed to save expense",
			applog.FieldError, err,
			applog.FieldExpenseDesc, exp.Description,
			applog.FieldAmountCents, exp.Amount.Cents,
			applog.FieldCategory, exp.Category.String(),
			applog.FieldOperation, applog.OpCreate)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Erro ao salvar o gasto</div>`))
		return
	}

	bucket := core.MonthKeyOf(exp.Date)
	slog.InfoContext(r.Context(), "Expense created",
		applog.FieldExpenseID, exp.ID,
		applog.FieldExpenseDesc, exp.Description,
		applog.FieldAmountCents, exp.Amount.Cents,
		applog.FieldCategory, exp.Category.String(),
		applog.FieldMonthKey, bucket.String())

	// The view re-fetches overview and list after every mutation.
	w.Header().Set("HX-Trigger", fmt.Sprintf(`{"expense:created":{"month":%q}}`, bucket))
	msg := fmt.Sprintf("Gasto registrado: %s — %s (%s)",
		template.HTMLEscapeString(exp.Description), exp.Amount.Format(), exp.Category.Config().Name)
	_, _ = w.Write([]byte(`<div class="success">` + msg + `</div>`))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Formato de requisição inválido</div>`))
		return
	}

	id := strings.TrimSpace(r.Form.Get("id"))
	if id == "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Identificador ausente</div>`))
		return
	}

	remaining, err := s.repo.Remove(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete expense",
			applog.FieldError, err, applog.FieldExpenseID, id, applog.FieldOperation, applog.OpDelete)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Erro ao excluir o gasto</div>`))
		return
	}

	slog.InfoContext(r.Context(), "Expense deleted",
		applog.FieldExpenseID, id, applog.FieldOperation, applog.OpDelete)

	months := s.monthOptions(remaining)
	bucket := s.selectedMonth(r, months)
	w.Header().Set("HX-Trigger", fmt.Sprintf(`{"expense:deleted":{"month":%q}}`, bucket))

	view := buildExpenseListView(remaining, months, bucket)
	if err := s.templates.ExecuteTemplate(w, "expense_list", view); err != nil {
		slog.ErrorContext(r.Context(), "List template execution failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleExpenseList returns the list partial for the selected month.
func (s *Server) handleExpenseList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	expenses := s.repo.GetAll(r.Context())
	months := s.monthOptions(expenses)
	bucket := s.selectedMonth(r, months)

	view := buildExpenseListView(expenses, months, bucket)
	if err := s.templates.ExecuteTemplate(w, "expense_list", view); err != nil {
		slog.ErrorContext(r.Context(), "List template execution failed",
			applog.FieldError, err, applog.FieldMonthKey, bucket.String())
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
