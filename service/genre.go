package service

import (
	"context"

	"libraryapp/models"
	"libraryapp/store"
)

// GenreService answers genre lookups: what the catalog currently holds and
// what the closed set allows.
type GenreService struct {
	store store.Store
}

func NewGenreService(s store.Store) *GenreService {
	return &GenreService{store: s}
}

// AllGenres returns the genres present in the catalog, sorted.
func (s *GenreService) AllGenres(ctx context.Context) ([]string, error) {
	return s.store.DistinctGenres(ctx)
}

// PossibleGenres returns every genre a book may carry, in canonical form.
func (s *GenreService) PossibleGenres() []string {
	genres := make([]string, len(models.Genres))
	for i, g := range models.Genres {
		genres[i] = string(g)
	}
	return genres
}
