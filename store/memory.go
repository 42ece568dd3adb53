package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"libraryapp/models"
)

// MemoryStore is an in-memory Store used in tests. Scan order is insertion
// order (ascending id), matching what a fresh Mongo collection returns.
type MemoryStore struct {
	mu     sync.RWMutex
	books  map[int]models.Book
	nextID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		books:  make(map[int]models.Book),
		nextID: 1,
	}
}

func (m *MemoryStore) FindByID(_ context.Context, id int) (*models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	book, ok := m.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyBook(book), nil
}

func (m *MemoryStore) FindBySignature(_ context.Context, signature string) (*models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, book := range m.sorted() {
		if book.Signature == signature {
			return copyBook(book), nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindAllByTitle(_ context.Context, title string) ([]models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	needle := strings.ToLower(title)
	matches := []models.Book{}
	for _, book := range m.sorted() {
		if strings.Contains(strings.ToLower(book.Title), needle) {
			matches = append(matches, *copyBook(book))
		}
	}
	return matches, nil
}

func (m *MemoryStore) FindAllByGenre(_ context.Context, genre string) ([]models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	matches := []models.Book{}
	for _, book := range m.sorted() {
		if strings.EqualFold(string(book.Genre), genre) {
			matches = append(matches, *copyBook(book))
		}
	}
	return matches, nil
}

func (m *MemoryStore) FindAll(_ context.Context) ([]models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := []models.Book{}
	for _, book := range m.sorted() {
		all = append(all, *copyBook(book))
	}
	return all, nil
}

func (m *MemoryStore) Insert(_ context.Context, book *models.Book) (*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	book.ID = m.nextID
	m.nextID++
	m.books[book.ID] = *copyBook(*book)
	return book, nil
}

func (m *MemoryStore) Replace(_ context.Context, book *models.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[book.ID]; !ok {
		return ErrNotFound
	}
	m.books[book.ID] = *copyBook(*book)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[id]; !ok {
		return ErrNotFound
	}
	delete(m.books, id)
	return nil
}

func (m *MemoryStore) DistinctGenres(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool)
	genres := []string{}
	for _, book := range m.books {
		g := string(book.Genre)
		if !seen[g] {
			seen[g] = true
			genres = append(genres, g)
		}
	}
	sort.Strings(genres)
	return genres, nil
}

// sorted returns the books in ascending id order. Callers hold the lock.
func (m *MemoryStore) sorted() []models.Book {
	books := make([]models.Book, 0, len(m.books))
	for _, book := range m.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books
}

func copyBook(book models.Book) *models.Book {
	registry := make([]int, len(book.ScoreRegistry))
	copy(registry, book.ScoreRegistry)
	book.ScoreRegistry = registry
	return &book
}
