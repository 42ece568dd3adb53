package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the whole /library API on the given router. main wires the
// same routes the tests exercise.
func Routes(r chi.Router, books *BooksHandler, genres *GenresHandler) {
	r.Route("/library", func(r chi.Router) {
		r.Post("/books", books.Add)
		r.Post("/books-by-list", books.AddBatch)
		r.Get("/books", books.List)
		r.Get("/books/by-title", books.GetByTitle)
		r.Get("/books/by-genre", books.GetByGenre)
		r.Get("/books/most-popular", books.MostPopular)
		r.Get("/books/highest-rated", books.HighestRated)
		r.Get("/books/sorted-by-{param}", books.SortedBy)
		r.Get("/books/sorted-by-score/{genre}", books.SortedScoreByGenre)
		r.Get("/books/{id}", books.Get)
		r.Put("/books/{id}", books.Update)
		r.Put("/books/{id}/rate", books.Rate)
		r.Delete("/books/{id}", books.Delete)
		r.Get("/genres", genres.List)
		r.Get("/possible-genres", genres.ListPossible)
	})
}
