package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookString(t *testing.T) {
	b := Book{ID: 3, Title: "Clean Code", Author: "Robert C. Martin", ISBN: "333-333", TotalCopies: 3, AvailableCopies: 1}

	assert.Equal(t, `[3] "Clean Code" by Robert C. Martin (ISBN: 333-333) - available: 1/3`, b.String())
	assert.Equal(t, 2, b.OnLoan())
}

func TestUserString(t *testing.T) {
	u := User{ID: 1, Name: "Alice"}
	assert.Equal(t, "[1] Alice - borrowed: none", u.String())

	u.BorrowedBookIDs = []int64{1, 3}
	assert.Equal(t, "[1] Alice - borrowed: 1, 3", u.String())
	assert.True(t, u.HasBorrowed(3))
	assert.False(t, u.HasBorrowed(2))
}
