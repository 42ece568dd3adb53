package models

// Book is a single catalog record. The numeric ID comes from the counters
// sequence at insert time; Signature is the business key used for duplicate
// detection. Score is derived from ScoreRegistry and never set by clients.
type Book struct {
	ID            int     `bson:"_id,omitempty" json:"id"`
	Signature     string  `bson:"signature" json:"signature" validate:"required"`
	Title         string  `bson:"title" json:"title" validate:"required"`
	Author        string  `bson:"author" json:"author" validate:"required"`
	Description   string  `bson:"description" json:"description" validate:"required"`
	Genre         Genre   `bson:"genre" json:"genre"`
	Score         float64 `bson:"score" json:"score"`
	ScoreRegistry []int   `bson:"scoreRegistry" json:"scoreRegistry"`
}

// Votes returns how many ratings the book has received. Popularity is the
// count of ratings, not the score.
func (b *Book) Votes() int {
	return len(b.ScoreRegistry)
}
