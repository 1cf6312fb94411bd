package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tinocontrol/internal/core"
)

// selectedMonth resolves the month bucket for a request. An absent or
// malformed "month" parameter falls back to the current month; a month not
// present in the collection falls back to the most recent available one, the
// way the original month selector resets itself.
func (s *Server) selectedMonth(r *http.Request, available []core.MonthKey) core.MonthKey {
	current := core.CurrentMonthKey(s.now())
	if len(available) == 0 {
		available = []core.MonthKey{current}
	}

	raw := strings.TrimSpace(r.FormValue("month"))
	if raw == "" {
		raw = string(current)
	}
	key, err := core.ParseMonthKey(raw)
	if err != nil {
		key = current
	}
	for _, m := range available {
		if m == key {
			return key
		}
	}
	return available[0]
}

// monthOptions builds the selector entries, substituting the current month
// when the collection is empty.
func (s *Server) monthOptions(expenses []core.Expense) []core.MonthKey {
	months := core.DistinctMonths(expenses)
	if len(months) == 0 {
		months = []core.MonthKey{core.CurrentMonthKey(s.now())}
	}
	return months
}

// formatShortDate renders a date as DD/MM/YYYY for the expense list.
func formatShortDate(d core.Date) string {
	return d.Format("02/01/2006")
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
