package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"

	"libraryapp/models"
	"libraryapp/store"
)

// LibraryService implements the catalog's business rules on top of a Store:
// signature uniqueness, derived views (sorted, filtered, ranked) over the
// full catalog, and the rating average. It holds no catalog state of its own.
type LibraryService struct {
	store store.Store
}

func NewLibraryService(s store.Store) *LibraryService {
	return &LibraryService{store: s}
}

// AddBook inserts the book unless another record already carries its
// signature. Score and registry are reset; clients never supply them.
func (s *LibraryService) AddBook(ctx context.Context, book models.Book) (models.Book, error) {
	existing, err := s.store.FindBySignature(ctx, book.Signature)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.Book{}, err
	}
	if existing != nil {
		return models.Book{}, &DuplicateSignatureError{Signature: book.Signature}
	}
	book.Score = 0.0
	book.ScoreRegistry = []int{}
	inserted, err := s.store.Insert(ctx, &book)
	if err != nil {
		return models.Book{}, err
	}
	return *inserted, nil
}

// AddBooks applies AddBook to each element in input order. The first
// duplicate aborts the batch; earlier inserts stay committed.
func (s *LibraryService) AddBooks(ctx context.Context, books []models.Book) ([]models.Book, error) {
	added := make([]models.Book, 0, len(books))
	for _, book := range books {
		inserted, err := s.AddBook(ctx, book)
		if err != nil {
			return nil, err
		}
		added = append(added, inserted)
	}
	return added, nil
}

func (s *LibraryService) RemoveByID(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// UpdateByID replaces the stored record wholesale, forcing the body's id to
// the path id. Signature uniqueness is not re-checked here.
func (s *LibraryService) UpdateByID(ctx context.Context, id int, book models.Book) (models.Book, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return models.Book{}, err
	}
	book.ID = id
	if book.ScoreRegistry == nil {
		book.ScoreRegistry = []int{}
	}
	if err := s.store.Replace(ctx, &book); err != nil {
		return models.Book{}, err
	}
	return book, nil
}

func (s *LibraryService) GetByID(ctx context.Context, id int) (models.Book, error) {
	book, err := s.store.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Book{}, notFoundByID(id)
	}
	if err != nil {
		return models.Book{}, err
	}
	return *book, nil
}

// GetByTitle returns every book whose title contains the given text,
// ignoring case. Titles are not unique, so this is always a list.
func (s *LibraryService) GetByTitle(ctx context.Context, title string) ([]models.Book, error) {
	books, err := s.store.FindAllByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, notFoundByTitle(title)
	}
	return books, nil
}

// GetByGenre fails only when the genre names nothing in the closed set; a
// known genre with no books returns an empty list.
func (s *LibraryService) GetByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	g, ok := models.ParseGenre(genre)
	if !ok {
		return nil, notFoundByGenre(genre)
	}
	return s.store.FindAllByGenre(ctx, string(g))
}

func (s *LibraryService) AllBooks(ctx context.Context) ([]models.Book, error) {
	return s.store.FindAll(ctx)
}

func (s *LibraryService) SortByAuthor(ctx context.Context) ([]models.Book, error) {
	return s.sortAll(ctx, func(a, b models.Book) bool { return a.Author < b.Author })
}

func (s *LibraryService) SortByTitle(ctx context.Context) ([]models.Book, error) {
	return s.sortAll(ctx, func(a, b models.Book) bool { return a.Title < b.Title })
}

func (s *LibraryService) SortByScoreAscending(ctx context.Context) ([]models.Book, error) {
	return s.sortAll(ctx, func(a, b models.Book) bool { return a.Score < b.Score })
}

// SortByScoreDescending reverses the comparator, not the sorted list, so
// books with equal scores keep their scan order.
func (s *LibraryService) SortByScoreDescending(ctx context.Context) ([]models.Book, error) {
	return s.sortAll(ctx, func(a, b models.Book) bool { return a.Score > b.Score })
}

func (s *LibraryService) sortAll(ctx context.Context, less func(a, b models.Book) bool) ([]models.Book, error) {
	books, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(books, func(i, j int) bool { return less(books[i], books[j]) })
	return books, nil
}

// MostPopular returns every book tied for the highest rating count. An empty
// catalog yields an empty list; a catalog where nothing has been rated yet
// fails with ErrNoVotes.
func (s *LibraryService) MostPopular(ctx context.Context) ([]models.Book, error) {
	books, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return books, nil
	}
	mostVotes := 0
	for _, book := range books {
		if book.Votes() > mostVotes {
			mostVotes = book.Votes()
		}
	}
	if mostVotes == 0 {
		return nil, ErrNoVotes
	}
	popular := []models.Book{}
	for _, book := range books {
		if book.Votes() == mostVotes {
			popular = append(popular, book)
		}
	}
	return popular, nil
}

// HighestRated returns every book tied for the highest score, comparing the
// rounded 2-decimal scores exactly. Fails with ErrAllZero when the maximum
// score is 0.0.
func (s *LibraryService) HighestRated(ctx context.Context) ([]models.Book, error) {
	books, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return books, nil
	}
	highest := books[0].Score
	for _, book := range books[1:] {
		if book.Score > highest {
			highest = book.Score
		}
	}
	if highest == 0.0 {
		return nil, ErrAllZero
	}
	top := []models.Book{}
	for _, book := range books {
		if book.Score == highest {
			top = append(top, book)
		}
	}
	return top, nil
}

// SortedScoreByGenre filters to the given genre and sorts by score
// descending (reversed comparator, ties keep scan order). Unknown genres
// yield an empty list rather than an error.
func (s *LibraryService) SortedScoreByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	g, ok := models.ParseGenre(genre)
	if !ok {
		return []models.Book{}, nil
	}
	books, err := s.store.FindAllByGenre(ctx, string(g))
	if err != nil {
		return nil, err
	}
	matched := []models.Book{}
	for _, book := range books {
		if strings.EqualFold(string(book.Genre), genre) {
			matched = append(matched, book)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Score > matched[j].Score })
	return matched, nil
}

// RateByID appends the rating to the book's registry and recomputes the
// score as the mean of the full history, rounded to 2 decimal places.
func (s *LibraryService) RateByID(ctx context.Context, id, rating int) (models.Book, error) {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Book{}, err
	}
	book.ScoreRegistry = append(book.ScoreRegistry, rating)
	book.Score = averageScore(book.ScoreRegistry)
	if err := s.store.Replace(ctx, &book); err != nil {
		return models.Book{}, err
	}
	return book, nil
}

func averageScore(registry []int) float64 {
	if len(registry) == 0 {
		return 0.0
	}
	sum := 0
	for _, rating := range registry {
		sum += rating
	}
	mean := float64(sum) / float64(len(registry))
	return math.Round(mean*100) / 100
}
