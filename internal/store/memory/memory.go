// Package memory provides an in-memory store for tests and local development.
package memory

import (
	"context"
	"sync"
	"time"

	"khata/internal/core"
	"khata/internal/store"
)

var ErrNotFound = store.ErrNotFound

type Store struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Transaction
	budget core.Money
}

func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Insert(_ context.Context, tx core.Transaction) (int64, error) {
	if err := tx.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextID
	s.nextID++
	s.items = append(s.items, tx)
	return tx.ID, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.items {
		if tx.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) ListAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...), nil
}

func (s *Store) ListRange(_ context.Context, start, end time.Time) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Transaction
	for _, tx := range s.items {
		ms := tx.Timestamp
		if ms >= start.UnixMilli() && ms < end.UnixMilli() {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.items)), nil
}

func (s *Store) Budget(_ context.Context) (core.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.budget.Paise == 0 {
		return core.DefaultBudget, nil
	}
	return s.budget, nil
}

func (s *Store) SetBudget(_ context.Context, m core.Money) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget = m
	return nil
}
