package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"libraryapp/models"
	"libraryapp/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type BooksHandler struct {
	Library  *service.LibraryService
	Validate *validator.Validate
}

func NewBooksHandler(library *service.LibraryService) *BooksHandler {
	return &BooksHandler{
		Library:  library,
		Validate: validator.New(),
	}
}

func (h *BooksHandler) Add(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg, ok := h.validationMessage(book); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	added, err := h.Library.AddBook(r.Context(), book)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (h *BooksHandler) AddBatch(w http.ResponseWriter, r *http.Request) {
	var books []models.Book
	if err := json.NewDecoder(r.Body).Decode(&books); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, book := range books {
		if msg, ok := h.validationMessage(book); !ok {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
	}
	added, err := h.Library.AddBooks(r.Context(), books)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.Library.AllBooks(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	book, err := h.Library.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BooksHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	books, err := h.Library.GetByTitle(r.Context(), title)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BooksHandler) GetByGenre(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")
	books, err := h.Library.GetByGenre(r.Context(), genre)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

// SortedBy serves /library/books/sorted-by-{param} for the four supported
// sort orders. An unknown param answers 500, as the original API did.
func (h *BooksHandler) SortedBy(w http.ResponseWriter, r *http.Request) {
	var books []models.Book
	var err error
	switch param := chi.URLParam(r, "param"); param {
	case "author":
		books, err = h.Library.SortByAuthor(r.Context())
	case "title":
		books, err = h.Library.SortByTitle(r.Context())
	case "score-ascending":
		books, err = h.Library.SortByScoreAscending(r.Context())
	case "score-descending":
		books, err = h.Library.SortByScoreDescending(r.Context())
	default:
		writeError(w, http.StatusInternalServerError, "No endpoint found.")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BooksHandler) MostPopular(w http.ResponseWriter, r *http.Request) {
	books, err := h.Library.MostPopular(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BooksHandler) HighestRated(w http.ResponseWriter, r *http.Request) {
	books, err := h.Library.HighestRated(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BooksHandler) SortedScoreByGenre(w http.ResponseWriter, r *http.Request) {
	genre := chi.URLParam(r, "genre")
	books, err := h.Library.SortedScoreByGenre(r.Context(), genre)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg, ok := h.validationMessage(book); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	updated, err := h.Library.UpdateByID(r.Context(), id, book)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, updated)
}

func (h *BooksHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	rate, err := strconv.Atoi(r.URL.Query().Get("rate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rate")
		return
	}
	rated, err := h.Library.RateByID(r.Context(), id, rate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rated)
}

func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	if err := h.Library.RemoveByID(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validationMessage reports the first not-blank violation in the wording
// clients expect, e.g. "Signature cannot be empty".
func (h *BooksHandler) validationMessage(book models.Book) (string, bool) {
	err := h.Validate.Struct(book)
	if err == nil {
		return "", true
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid book", false
	}
	return fieldErrs[0].Field() + " cannot be empty", false
}

func bookID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return 0, false
	}
	return id, true
}
