package quote

import (
	"context"
	"fmt"
	"sync"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
	"github.com/jxt-gindran/jxingwebsite/internal/repository"
)

// Store holds the current quote selection: an ordered list of line items
// unique by composite id. Every successful mutation persists the full
// state and then notifies subscribers. A mutex serializes mutations so
// persisted writes cannot be reordered by concurrent UI commands.
type Store struct {
	mu   sync.Mutex
	repo repository.QuoteStateRepo

	items []domain.QuoteLineItem
	subs  []func()
}

// NewStore creates a store hydrated from the persisted selection.
func NewStore(ctx context.Context, repo repository.QuoteStateRepo) *Store {
	return &Store{
		repo:  repo,
		items: repo.Load(ctx),
	}
}

// Subscribe registers a callback fired after every applied mutation.
// Callbacks run synchronously while the store lock is held; keep them
// cheap and never call back into the store from one.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Toggle adds the sub-service to the selection if absent, or removes it
// if present. Reports whether the item is selected afterwards.
func (s *Store) Toggle(ctx context.Context, category *domain.ServiceCategory, sub domain.SubService) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := domain.LineItemID(category.ID, sub.ID)
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return false, s.commit(ctx)
		}
	}
	s.items = append(s.items, domain.NewLineItem(category, sub))
	return true, s.commit(ctx)
}

// SetNote updates the free-text note on a selected item. Unknown ids and
// unchanged notes are no-ops.
func (s *Store) SetNote(ctx context.Context, id, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Notes == text {
				return nil
			}
			s.items[i].Notes = text
			return s.commit(ctx)
		}
	}
	return nil
}

// Remove drops the item with the given id. Unknown ids are no-ops.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.commit(ctx)
		}
	}
	return nil
}

// Clear empties the selection. Clearing an empty selection is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return nil
	}
	s.items = s.items[:0]
	return s.commit(ctx)
}

// Items returns a snapshot copy of the selection in insertion order.
func (s *Store) Items() []domain.QuoteLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.QuoteLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of selected items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Has reports whether the composite id is currently selected.
func (s *Store) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Totals computes the two-bucket totals of the current selection.
func (s *Store) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotals(s.items)
}

// commit persists the state and notifies subscribers. Callers must hold
// the lock. The in-memory mutation stands even when the save fails; the
// error is surfaced so the UI can warn that state may not survive a
// restart.
func (s *Store) commit(ctx context.Context) error {
	err := s.repo.Save(ctx, s.items)
	for _, fn := range s.subs {
		fn()
	}
	if err != nil {
		return fmt.Errorf("persisting quote selection: %w", err)
	}
	return nil
}
