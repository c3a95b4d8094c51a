package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type bookEntry struct {
	mu   sync.RWMutex
	book Book
}

// MemoryRepo holds the catalog for the lifetime of the process.
//
// The isbn index is built once by NewMemoryRepo and never written again, so lookups need
// no lock. Each book carries its own RWMutex: mutations on one book serialize, while
// unrelated books proceed in parallel.
type MemoryRepo struct {
	order []string
	books map[string]*bookEntry
}

// NewMemoryRepo builds a catalog from seed, keeping the seed order for listings.
func NewMemoryRepo(seed []Book) (*MemoryRepo, error) {
	r := &MemoryRepo{
		order: make([]string, 0, len(seed)),
		books: make(map[string]*bookEntry, len(seed)),
	}
	for _, b := range seed {
		if err := RequireField("isbn", b.ISBN); err != nil {
			return nil, fmt.Errorf("seed book %q: %w", b.Title, err)
		}
		if _, exists := r.books[b.ISBN]; exists {
			return nil, fmt.Errorf("seed book %s: %w", b.ISBN, ErrDuplicateISBN)
		}
		seen := make(map[string]bool, len(b.Reviews))
		for _, rv := range b.Reviews {
			if seen[rv.Username] {
				return nil, fmt.Errorf("seed book %s: two reviews by %q: %w", b.ISBN, rv.Username, ErrValidation)
			}
			seen[rv.Username] = true
		}
		r.books[b.ISBN] = &bookEntry{book: b.Clone()}
		r.order = append(r.order, b.ISBN)
	}
	return r, nil
}

func (e *bookEntry) snapshot() Book {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.book.Clone()
}

func (r *MemoryRepo) ListSummaries(_ context.Context) ([]Summary, error) {
	out := make([]Summary, 0, len(r.order))
	for _, isbn := range r.order {
		e := r.books[isbn]
		e.mu.RLock()
		out = append(out, e.book.Summary())
		e.mu.RUnlock()
	}
	return out, nil
}

func (r *MemoryRepo) GetByISBN(_ context.Context, isbn string) (Book, error) {
	e, ok := r.books[isbn]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return e.snapshot(), nil
}

func (r *MemoryRepo) ListByAuthor(_ context.Context, author string) ([]Book, error) {
	return r.filter(func(b *Book) bool { return b.Author == author }), nil
}

func (r *MemoryRepo) SearchByTitle(_ context.Context, query string) ([]Book, error) {
	needle := strings.ToLower(query)
	return r.filter(func(b *Book) bool {
		return strings.Contains(strings.ToLower(b.Title), needle)
	}), nil
}

func (r *MemoryRepo) filter(match func(*Book) bool) []Book {
	out := []Book{}
	for _, isbn := range r.order {
		b := r.books[isbn].snapshot()
		if match(&b) {
			out = append(out, b)
		}
	}
	return out
}

func (r *MemoryRepo) Update(_ context.Context, isbn string, fn func(*Book) error) error {
	e, ok := r.books[isbn]
	if !ok {
		return ErrBookNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	work := e.book.Clone()
	if err := fn(&work); err != nil {
		return err
	}
	// isbn, title and author are not writable through this path.
	e.book.Reviews = work.Reviews
	return nil
}
