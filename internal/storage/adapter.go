// Package storage is the persistence adapter: the whole expense collection is
// serialized as one JSON blob under a single key of the kv store.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tinocontrol/internal/core"
	"tinocontrol/internal/kv"
	applog "tinocontrol/internal/log"
)

// DefaultKey is the fixed key the collection blob lives under. The name is
// carried over from the original localStorage layout so existing exports
// remain importable.
const DefaultKey = "tino-control-expenses"

// storedExpense is the wire form of one record. Amount is a JSON number in
// currency units; Date is "YYYY-MM-DD". There is no schema version field.
type storedExpense struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	CreatedAt   int64   `json:"createdAt"`
}

// Adapter reads and writes the collection blob.
type Adapter struct {
	store kv.Store
	key   string
}

func NewAdapter(store kv.Store) *Adapter {
	return &Adapter{store: store, key: DefaultKey}
}

// NewAdapterWithKey overrides the storage key; used by tests.
func NewAdapterWithKey(store kv.Store, key string) *Adapter {
	return &Adapter{store: store, key: key}
}

// Save overwrites the blob with the given collection.
func (a *Adapter) Save(ctx context.Context, expenses []core.Expense) error {
	records := make([]storedExpense, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, storedExpense{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount.Units(),
			Category:    string(e.Category),
			Date:        e.Date.String(),
			CreatedAt:   e.CreatedAt,
		})
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal expenses: %w", err)
	}
	if err := a.store.Set(ctx, a.key, blob); err != nil {
		return fmt.Errorf("persist expenses: %w", err)
	}
	return nil
}

// Load returns the persisted collection in insertion order. A missing key
// yields an empty collection. So does an unparseable blob: corrupt state must
// never crash the application, it resets to "no expenses recorded". The
// recovery is logged but not surfaced.
func (a *Adapter) Load(ctx context.Context) []core.Expense {
	blob, found, err := a.store.Get(ctx, a.key)
	if err != nil {
		slog.WarnContext(ctx, "Failed reading expense blob, treating as empty",
			applog.FieldStorageKey, a.key, applog.FieldError, err)
		return []core.Expense{}
	}
	if !found {
		return []core.Expense{}
	}

	var records []storedExpense
	if err := json.Unmarshal(blob, &records); err != nil {
		slog.WarnContext(ctx, "Unparseable expense blob, resetting to empty",
			applog.FieldStorageKey, a.key, applog.FieldError, err)
		return []core.Expense{}
	}

	expenses := make([]core.Expense, 0, len(records))
	for _, r := range records {
		date, err := core.ParseDate(r.Date)
		if err != nil {
			slog.WarnContext(ctx, "Skipping expense with invalid date",
				applog.FieldExpenseID, r.ID, applog.FieldDate, r.Date)
			continue
		}
		expenses = append(expenses, core.Expense{
			ID:          r.ID,
			Description: r.Description,
			Amount:      core.MoneyFromUnits(r.Amount),
			Category:    core.Category(r.Category).Normalize(),
			Date:        date,
			CreatedAt:   r.CreatedAt,
		})
	}
	return expenses
}
