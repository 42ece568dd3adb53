package store

import (
	"context"
	"errors"

	"libraryapp/models"
)

// ErrNotFound is returned by lookups that matched no document and by
// Replace/Delete when the target id does not exist.
var ErrNotFound = errors.New("book not found")

// Store is the storage contract the service layer depends on. One
// implementation is backed by MongoDB, one is an in-memory double for tests.
//
// Insert assigns the book's id from a monotonically increasing sequence
// before persisting. Title and genre lookups are case-insensitive; the title
// lookup is a substring match.
//
// The contract does not guarantee atomic compare-and-insert on signature or
// atomic append on rating. Concurrent writers racing on the same signature
// or the same book id can interleave between the service's check and its
// write; production use under concurrent writers would need those two
// operations to become atomic here.
type Store interface {
	FindByID(ctx context.Context, id int) (*models.Book, error)
	FindBySignature(ctx context.Context, signature string) (*models.Book, error)
	FindAllByTitle(ctx context.Context, title string) ([]models.Book, error)
	FindAllByGenre(ctx context.Context, genre string) ([]models.Book, error)
	FindAll(ctx context.Context) ([]models.Book, error)
	Insert(ctx context.Context, book *models.Book) (*models.Book, error)
	Replace(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id int) error
	DistinctGenres(ctx context.Context) ([]string, error)
}
