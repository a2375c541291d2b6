package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportBooks(t *testing.T) {
	c := New()
	input := `title,author,isbn,copies
# classics
C++ Primer, Stanley Lippman, 111-111, 2
"Code, Complete",Steve McConnell,444-444,1
`

	n, err := c.ImportBooks(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	books := c.ListAllBooks()
	require.Len(t, books, 2)
	assert.Equal(t, Book{ID: 1, Title: "C++ Primer", Author: "Stanley Lippman", ISBN: "111-111", TotalCopies: 2, AvailableCopies: 2}, books[0])
	assert.Equal(t, "Code, Complete", books[1].Title)
}

func TestImportBooksWithoutHeader(t *testing.T) {
	c := New()

	n, err := c.ImportBooks(strings.NewReader("Clean Code,Robert C. Martin,333-333,3\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestImportBooksStopsAtBadRow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"copies not a number", "A,B,1,2\nC,D,2,many\n", "line 2"},
		{"negative copies", "A,B,1,2\nC,D,2,-1\n", "invalid number of copies"},
		{"missing column", "A,B,1,2\nC,D,2\n", "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			n, err := c.ImportBooks(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, 1, n)
			assert.Len(t, c.ListAllBooks(), 1)
		})
	}
}

func TestImportBooksFromFile(t *testing.T) {
	c := New()
	tmp := filepath.Join(t.TempDir(), "books.csv")
	require.NoError(t, os.WriteFile(tmp, []byte("Hello,Anon,000,4\n"), 0o644))

	n, err := c.ImportBooksFromFile(tmp)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	b, ok := c.GetBook(1)
	require.True(t, ok)
	assert.Equal(t, 4, b.AvailableCopies)

	_, err = c.ImportBooksFromFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = c.ImportBooksFromFile("  ")
	assert.Error(t, err)
}
