package review

import (
	"net/http"

	"bookshop/internal/catalog"
	"bookshop/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type upsertReq struct {
	ISBN    *string `json:"isbn"`
	Comment *string `json:"comment" validate:"required"`
}

// Upsert handles POST /users/{username}/reviews/{isbn}
// @Summary Add or modify a book review
// @Description Creates the user's review of the book, or replaces its comment in place
// @Tags reviews
// @Accept json
// @Produce json
// @Param username path string true "Reviewer"
// @Param isbn path string true "Book ISBN"
// @Param request body upsertReq true "Review"
// @Success 200 {object} httpx.SuccessResponse
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /users/{username}/reviews/{isbn} [post]
func (h *HTTPHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	isbn := r.PathValue("isbn")

	var req upsertReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	if req.ISBN != nil && *req.ISBN != isbn {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "isbn", Message: "isbn must match the isbn in the path"},
		})
		return
	}

	outcome, err := h.service.Upsert(r.Context(), username, isbn, *req.Comment)
	if err != nil {
		catalog.WriteError(w, r, err)
		return
	}

	data := map[string]any{
		"isbn": isbn,
		"review": catalog.Review{
			Username: username,
			Comment:  *req.Comment,
		},
	}
	if outcome == OutcomeCreated {
		httpx.JSONSuccessCreated(w, r, data)
		return
	}
	httpx.JSONSuccess(w, r, data, nil)
}

// Delete handles DELETE /users/{username}/reviews/{isbn}
// @Summary Delete a book review
// @Description Removes the review the user wrote on the book
// @Tags reviews
// @Param username path string true "Reviewer"
// @Param isbn path string true "Book ISBN"
// @Success 204 "No Content"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /users/{username}/reviews/{isbn} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), r.PathValue("username"), r.PathValue("isbn"))
	if err != nil {
		catalog.WriteError(w, r, err)
		return
	}

	httpx.JSONSuccessNoContent(w)
}
