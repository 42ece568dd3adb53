package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bookSequenceID = "bookId"

// nextBookID increments and returns the book id sequence. The upsert makes
// the first insert create the counter document with seq=1.
func (db *DB) nextBookID(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	res := db.Counters().FindOneAndUpdate(ctx,
		bson.M{"_id": bookSequenceID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts)
	var counter struct {
		Seq int `bson:"seq"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
