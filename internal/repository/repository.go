// Package repository owns authoritative read/write access to the expense
// collection. Every mutation is a full load-mutate-persist cycle; callers
// re-fetch after mutating instead of patching cached state.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tinocontrol/internal/core"
	applog "tinocontrol/internal/log"
	"tinocontrol/internal/storage"
)

type Repository struct {
	adapter *storage.Adapter
	now     func() time.Time
}

func New(adapter *storage.Adapter) *Repository {
	return &Repository{adapter: adapter, now: time.Now}
}

// NewWithClock injects the clock; used by tests.
func NewWithClock(adapter *storage.Adapter, now func() time.Time) *Repository {
	return &Repository{adapter: adapter, now: now}
}

// NewID returns a collision-resistant expense identifier.
func (r *Repository) NewID() string {
	return uuid.NewString()
}

// Create builds a valid expense from caller input, assigning ID and CreatedAt.
// It does not persist; pass the result to Add.
func (r *Repository) Create(description string, amount core.Money, category core.Category, date core.Date) (core.Expense, error) {
	e := core.Expense{
		ID:          r.NewID(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
		CreatedAt:   r.now().UnixMilli(),
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	return e, nil
}

// Add appends the expense and persists, returning the updated collection.
// Duplicate ids are not rejected; id uniqueness is the generator's concern.
func (r *Repository) Add(ctx context.Context, e core.Expense) ([]core.Expense, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate expense: %w", err)
	}
	expenses := r.adapter.Load(ctx)
	expenses = append(expenses, e)
	if err := r.adapter.Save(ctx, expenses); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Expense added",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldExpenseID, e.ID,
		applog.FieldExpenseDesc, e.Description,
		applog.FieldAmountCents, e.Amount.Cents,
		applog.FieldCategory, e.Category.String(),
		applog.FieldDate, e.Date.String())
	return expenses, nil
}

// Remove deletes every expense whose id matches (all matches, not just one)
// and persists, returning the updated collection.
func (r *Repository) Remove(ctx context.Context, id string) ([]core.Expense, error) {
	expenses := r.adapter.Load(ctx)
	kept := make([]core.Expense, 0, len(expenses))
	removed := 0
	for _, e := range expenses {
		if e.ID == id {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if err := r.adapter.Save(ctx, kept); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Expense removed",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldExpenseID, id,
		applog.FieldMatches, removed)
	return kept, nil
}

// Patch carries the mutable fields of an update; zero-valued fields are left
// untouched.
type Patch struct {
	Description string
	Amount      core.Money
	Category    core.Category
	Date        core.Date
}

// Update applies the patch to every expense matching id and persists,
// following the same load-mutate-persist contract as Add and Remove.
func (r *Repository) Update(ctx context.Context, id string, p Patch) ([]core.Expense, error) {
	expenses := r.adapter.Load(ctx)
	matched := 0
	for i := range expenses {
		if expenses[i].ID != id {
			continue
		}
		updated := expenses[i]
		if p.Description != "" {
			updated.Description = p.Description
		}
		if p.Amount.Cents != 0 {
			updated.Amount = p.Amount
		}
		if p.Category != "" {
			updated.Category = p.Category
		}
		if !p.Date.IsZero() {
			updated.Date = p.Date
		}
		if err := updated.Validate(); err != nil {
			return nil, fmt.Errorf("validate patched expense: %w", err)
		}
		expenses[i] = updated
		matched++
	}
	if matched == 0 {
		return expenses, nil
	}
	if err := r.adapter.Save(ctx, expenses); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Expense updated",
		applog.FieldOperation, applog.OpUpdate,
		applog.FieldExpenseID, id,
		applog.FieldMatches, matched)
	return expenses, nil
}

// GetAll returns the persisted collection verbatim, insertion order preserved.
func (r *Repository) GetAll(ctx context.Context) []core.Expense {
	return r.adapter.Load(ctx)
}
