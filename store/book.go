package store

import (
	"context"
	"errors"
	"regexp"
	"sort"

	"libraryapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ Store = (*DB)(nil)

func (db *DB) FindByID(ctx context.Context, id int) (*models.Book, error) {
	var book models.Book
	err := db.Books().FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (db *DB) FindBySignature(ctx context.Context, signature string) (*models.Book, error) {
	var book models.Book
	err := db.Books().FindOne(ctx, bson.M{"signature": signature}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// FindAllByTitle matches the title as a case-insensitive substring.
func (db *DB) FindAllByTitle(ctx context.Context, title string) ([]models.Book, error) {
	filter := bson.M{"title": bson.M{"$regex": regexp.QuoteMeta(title), "$options": "i"}}
	return db.findBooks(ctx, filter)
}

// FindAllByGenre matches the whole genre name, ignoring case.
func (db *DB) FindAllByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	filter := bson.M{"genre": bson.M{"$regex": "^" + regexp.QuoteMeta(genre) + "$", "$options": "i"}}
	return db.findBooks(ctx, filter)
}

func (db *DB) FindAll(ctx context.Context) ([]models.Book, error) {
	return db.findBooks(ctx, bson.M{})
}

func (db *DB) findBooks(ctx context.Context, filter bson.M) ([]models.Book, error) {
	cur, err := db.Books().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	books := []models.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Insert assigns the next sequence id to the book and persists it.
func (db *DB) Insert(ctx context.Context, book *models.Book) (*models.Book, error) {
	id, err := db.nextBookID(ctx)
	if err != nil {
		return nil, err
	}
	book.ID = id
	if _, err := db.Books().InsertOne(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Replace overwrites the stored document with the same id.
func (db *DB) Replace(ctx context.Context, book *models.Book) error {
	res, err := db.Books().ReplaceOne(ctx, bson.M{"_id": book.ID}, book)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) Delete(ctx context.Context, id int) error {
	res, err := db.Books().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DistinctGenres returns the genres currently present in the catalog, sorted.
func (db *DB) DistinctGenres(ctx context.Context) ([]string, error) {
	values, err := db.Books().Distinct(ctx, "genre", bson.M{})
	if err != nil {
		return nil, err
	}
	genres := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			genres = append(genres, s)
		}
	}
	sort.Strings(genres)
	return genres, nil
}
