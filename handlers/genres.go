package handlers

import (
	"net/http"

	"libraryapp/service"
)

type GenresHandler struct {
	Genres *service.GenreService
}

func NewGenresHandler(genres *service.GenreService) *GenresHandler {
	return &GenresHandler{Genres: genres}
}

// List returns the genres currently present in the catalog.
func (h *GenresHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.Genres.AllGenres(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list genres")
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

// ListPossible returns every genre a book may carry.
func (h *GenresHandler) ListPossible(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Genres.PossibleGenres())
}
