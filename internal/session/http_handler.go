package session

import (
	"net/http"

	"bookshop/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Logout handles POST /users/logout
// @Summary Log out
// @Description Revoke the bearer token used for this request
// @Tags users
// @Security Bearer
// @Success 204 "No Content"
// @Failure 401 {object} httpx.ErrorResponse
// @Router /users/logout [post]
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := httpx.ClaimsFrom(r)
	if claims == nil || claims.ExpiresAt == nil {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	if err := h.service.Revoke(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	httpx.JSONSuccessNoContent(w)
}
