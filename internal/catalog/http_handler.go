package catalog

import (
	"errors"
	"net/http"

	"bookshop/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// WriteError maps catalog errors to the JSON error envelope.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: verr.Field, Message: verr.Message},
		})
	case errors.Is(err, ErrBookNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, ErrReviewNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

// List handles GET /books
// @Summary List books
// @Description List the isbn and title of every book in the shop
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListSummaries(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, summaries, map[string]any{"total": len(summaries)})
}

// GetByISBN handles GET /books/{isbn}
// @Summary Get book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [get]
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.GetByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, book, nil)
}

// ListByAuthor handles GET /books/author/{author}
// @Summary List books by author
// @Description Exact, case-sensitive author match. No match yields an empty list.
// @Tags books
// @Produce json
// @Param author path string true "Author name"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books/author/{author} [get]
func (h *HTTPHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListByAuthor(r.Context(), r.PathValue("author"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// SearchByTitle handles GET /books/title/{title...}
// @Summary Search books by title
// @Description Case-insensitive substring match. An empty title matches every book.
// @Tags books
// @Produce json
// @Param title path string false "Title fragment"
// @Success 200 {object} httpx.SuccessResponse
// @Router /books/title/{title} [get]
func (h *HTTPHandler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.SearchByTitle(r.Context(), r.PathValue("title"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// GetReviews handles GET /books/reviews/{isbn}
// @Summary Get book reviews
// @Tags reviews
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/reviews/{isbn} [get]
func (h *HTTPHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.GetReviews(r.Context(), r.PathValue("isbn"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, reviews, map[string]any{"total": len(reviews)})
}
