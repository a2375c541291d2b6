package library

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Book represents a catalogued title and the availability of its copies.
// Copies are fungible; only the counts are tracked.
type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
}

// OnLoan returns the number of copies currently borrowed.
func (b Book) OnLoan() int { return b.TotalCopies - b.AvailableCopies }

func (b Book) String() string {
	return fmt.Sprintf("[%d] %q by %s (ISBN: %s) - available: %d/%d",
		b.ID, b.Title, b.Author, b.ISBN, b.AvailableCopies, b.TotalCopies)
}

// User represents a registered library user.
type User struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	BorrowedBookIDs []int64 `json:"borrowed_book_ids"`
}

// HasBorrowed reports whether the user currently holds a copy of bookID.
func (u User) HasBorrowed(bookID int64) bool {
	return slices.Contains(u.BorrowedBookIDs, bookID)
}

func (u User) String() string {
	if len(u.BorrowedBookIDs) == 0 {
		return fmt.Sprintf("[%d] %s - borrowed: none", u.ID, u.Name)
	}
	ids := make([]string, len(u.BorrowedBookIDs))
	for i, id := range u.BorrowedBookIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("[%d] %s - borrowed: %s", u.ID, u.Name, strings.Join(ids, ", "))
}

// clone returns a copy that shares no memory with u.
func (u User) clone() User {
	u.BorrowedBookIDs = slices.Clone(u.BorrowedBookIDs)
	if u.BorrowedBookIDs == nil {
		u.BorrowedBookIDs = []int64{}
	}
	return u
}
