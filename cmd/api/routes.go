package main

import (
	"net/http"

	"bookshop/internal/catalog"
	"bookshop/internal/httpx"
	"bookshop/internal/review"
	"bookshop/internal/session"
	"bookshop/internal/user"
)

type handlers struct {
	books       *catalog.HTTPHandler
	reviews     *review.HTTPHandler
	users       *user.HTTPHandler
	sessions    *session.HTTPHandler
	revoked     httpx.RevocationChecker
	jwtSecret   string
	projectLink string
}

func newRouter(h handlers) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /project-link", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccess(w, r, map[string]string{"link": h.projectLink}, nil)
	})

	router.HandleFunc("GET /books", h.books.List)
	router.HandleFunc("GET /books/{isbn}", h.books.GetByISBN)
	router.HandleFunc("GET /books/author/{author}", h.books.ListByAuthor)
	router.HandleFunc("GET /books/title/{title...}", h.books.SearchByTitle)
	router.HandleFunc("GET /books/reviews/{isbn}", h.books.GetReviews)

	router.HandleFunc("POST /users/register", h.users.RegisterUser)
	router.HandleFunc("POST /users/login", h.users.LoginUser)
	requireAuth := httpx.AuthMiddleware(h.jwtSecret, h.revoked)
	router.Handle("GET /me", requireAuth(http.HandlerFunc(h.users.GetCurrentUser)))
	router.Handle("POST /users/logout", requireAuth(http.HandlerFunc(h.sessions.Logout)))

	router.HandleFunc("POST /users/{username}/reviews/{isbn}", h.reviews.Upsert)
	router.HandleFunc("DELETE /users/{username}/reviews/{isbn}", h.reviews.Delete)

	return router
}
