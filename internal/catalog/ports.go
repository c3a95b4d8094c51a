package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=catalog

// Repository defines the contract for catalog storage.
type Repository interface {
	ListSummaries(ctx context.Context) ([]Summary, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	ListByAuthor(ctx context.Context, author string) ([]Book, error)
	SearchByTitle(ctx context.Context, query string) ([]Book, error)
	// Update runs fn on a private copy of the book under that book's write lock.
	// Only the review sequence of the copy is committed, and only when fn returns nil.
	Update(ctx context.Context, isbn string, fn func(*Book) error) error
}
