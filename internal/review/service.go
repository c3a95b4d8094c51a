package review

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bookshop/internal/catalog"
)

const tracerName = "bookshop/internal/review"

// Service enforces one review per user per book.
//
// The username is trusted as the acting identity; it is not cross-checked against a
// login session.
type Service struct {
	books  BookUpdater
	tracer trace.Tracer
}

// NewService creates a review service. A nil tracer falls back to the global provider.
func NewService(books BookUpdater, tracer trace.Tracer) *Service {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Service{books: books, tracer: tracer}
}

// Upsert creates username's review of isbn or replaces its comment in place.
func (s *Service) Upsert(ctx context.Context, username, isbn, comment string) (Outcome, error) {
	ctx, span := s.startSpan(ctx, "review.Upsert", username, isbn)
	defer span.End()

	if err := validate(username, isbn); err != nil {
		return "", fail(span, err)
	}

	var outcome Outcome
	err := s.books.Update(ctx, isbn, func(b *catalog.Book) error {
		outcome = upsert(b, username, comment)
		return nil
	})
	if err != nil {
		return "", fail(span, fmt.Errorf("upsert review: %w", err))
	}

	span.SetAttributes(attribute.String("review.outcome", string(outcome)))
	return outcome, nil
}

// Delete removes username's review of isbn.
func (s *Service) Delete(ctx context.Context, username, isbn string) error {
	ctx, span := s.startSpan(ctx, "review.Delete", username, isbn)
	defer span.End()

	if err := validate(username, isbn); err != nil {
		return fail(span, err)
	}

	err := s.books.Update(ctx, isbn, func(b *catalog.Book) error {
		return remove(b, username)
	})
	if err != nil {
		return fail(span, fmt.Errorf("delete review: %w", err))
	}

	span.SetAttributes(attribute.String("review.outcome", string(OutcomeDeleted)))
	return nil
}

func (s *Service) startSpan(ctx context.Context, name, username, isbn string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("book.isbn", isbn),
		attribute.String("review.username", username),
	))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
