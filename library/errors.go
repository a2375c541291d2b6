package library

import "errors"

var (
	// ErrBookNotFound is returned when a book id does not resolve.
	ErrBookNotFound = errors.New("book not found")

	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoAvailableCopies is returned when every copy of a book is on loan.
	ErrNoAvailableCopies = errors.New("no available copies")

	// ErrAlreadyBorrowed is returned when a user already holds a copy of the book.
	ErrAlreadyBorrowed = errors.New("book already borrowed by user")

	// ErrNotBorrowed is returned when a user returns a book they do not hold.
	ErrNotBorrowed = errors.New("book not borrowed by user")

	// ErrOutstandingLoans is returned when removing a book with copies on loan.
	ErrOutstandingLoans = errors.New("book has outstanding loans")

	// ErrInvalidCopies is returned for a copy count the operation cannot accept.
	ErrInvalidCopies = errors.New("invalid number of copies")
)
