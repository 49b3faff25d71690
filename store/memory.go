package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"productman/domain"
)

// InMemoryStore is a thread-safe in-memory implementation of
// domain.ProductStore. Ids come from a monotonic counter, so a deleted
// product's id is never handed out again.
type InMemoryStore struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

// NewInMemoryStore constructs a new InMemoryStore
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		products: make(map[int64]domain.Product),
	}
}

// compile-time assertion that InMemoryStore implements domain.ProductStore
var _ domain.ProductStore = (*InMemoryStore)(nil)

func (s *InMemoryStore) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	product.ID = s.nextID
	s.products[product.ID] = product
	return product, nil
}

func (s *InMemoryStore) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, domain.NewNotFoundError(id)
	}
	return p, nil
}

func (s *InMemoryStore) Update(ctx context.Context, id int64, name string, price float64, category string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.NewNotFoundError(id)
	}
	// ID and CreatedDate stay untouched
	p.Name = name
	p.Price = price
	p.Category = category
	s.products[id] = p
	return nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domain.NewNotFoundError(id)
	}
	delete(s.products, id)
	return nil
}

func (s *InMemoryStore) ListAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := strings.Compare(out[i].Category, out[j].Category); c != 0 {
			return c > 0 // category descending
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
