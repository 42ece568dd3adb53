package service

import (
	"errors"
	"fmt"
)

// Ranking failures. Callers depend on the literal wording.
var (
	ErrNoVotes = errors.New("Couldn't get the most popular book. No votes yet.")
	ErrAllZero = errors.New("Couldn't get the highest rated book. All rate to 0.0")
)

// NotFoundError reports a failed lookup by id, title or genre.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string {
	return e.msg
}

func notFoundByID(id int) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf("No requested book with id=%d in a library.", id)}
}

func notFoundByTitle(title string) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf("No requested book with title %s in a library.", title)}
}

func notFoundByGenre(genre string) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf("No genre %s in a library.", genre)}
}

// DuplicateSignatureError reports an insert whose signature already exists.
type DuplicateSignatureError struct {
	Signature string
}

func (e *DuplicateSignatureError) Error() string {
	return fmt.Sprintf("Book with provided signature %s already in a library.", e.Signature)
}
