package catalog

import (
	"context"
)

// Service provides catalog read operations with input validation.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListSummaries returns the isbn and title of every book in catalog order.
func (s *Service) ListSummaries(ctx context.Context) ([]Summary, error) {
	return s.repo.ListSummaries(ctx)
}

// GetByISBN returns the book with the given ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	if err := RequireField("isbn", isbn); err != nil {
		return Book{}, err
	}
	return s.repo.GetByISBN(ctx, isbn)
}

// ListByAuthor returns the books whose author matches exactly. No match is not an error.
func (s *Service) ListByAuthor(ctx context.Context, author string) ([]Book, error) {
	if err := RequireField("author", author); err != nil {
		return nil, err
	}
	return s.repo.ListByAuthor(ctx, author)
}

// SearchByTitle returns the books whose title contains query, ignoring case.
// An empty query matches every book.
func (s *Service) SearchByTitle(ctx context.Context, query string) ([]Book, error) {
	return s.repo.SearchByTitle(ctx, query)
}

// GetReviews returns the reviews of a book. A book without reviews yields an empty slice.
func (s *Service) GetReviews(ctx context.Context, isbn string) ([]Review, error) {
	b, err := s.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if b.Reviews == nil {
		return []Review{}, nil
	}
	return b.Reviews, nil
}
