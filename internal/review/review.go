package review

import (
	"context"

	"bookshop/internal/catalog"
)

// BookUpdater is the catalog primitive the manager builds on: fn runs inside the
// book's critical section and its changes are committed only when it returns nil.
type BookUpdater interface {
	Update(ctx context.Context, isbn string, fn func(*catalog.Book) error) error
}

// Outcome describes what an upsert did to the review sequence.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeDeleted Outcome = "deleted"
)

func validate(username, isbn string) error {
	if err := catalog.RequireField("username", username); err != nil {
		return err
	}
	return catalog.RequireField("isbn", isbn)
}

// upsert replaces the comment of username's review in place, or appends a new review.
func upsert(b *catalog.Book, username, comment string) Outcome {
	if i := b.ReviewIndex(username); i >= 0 {
		b.Reviews[i].Comment = comment
		return OutcomeUpdated
	}
	b.Reviews = append(b.Reviews, catalog.Review{Username: username, Comment: comment})
	return OutcomeCreated
}

// remove deletes username's review keeping the order of the others.
func remove(b *catalog.Book, username string) error {
	i := b.ReviewIndex(username)
	if i < 0 {
		return catalog.ErrReviewNotFound
	}
	b.Reviews = append(b.Reviews[:i], b.Reviews[i+1:]...)
	return nil
}
