package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunListsImportedBooks(t *testing.T) {
	path := writeList(t, "title,author,isbn,copies\n"+
		"# reference shelf\n"+
		"Clean Code,Robert C. Martin,333-333,3\n"+
		"Cien años de soledad,Gabriel García Márquez,444-444,2\n")
	var out, errOut bytes.Buffer

	code := run([]string{path}, &out, &errOut)

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "Successfully imported: 2 books")
	assert.Contains(t, out.String(), `  [1] "Clean Code" by Robert C. Martin (ISBN: 333-333) - available: 3/3`)
	assert.Contains(t, out.String(), `  [2] "Cien años de soledad" by Gabriel García Márquez (ISBN: 444-444) - available: 2/2`)
	assert.Contains(t, out.String(), "Total copies: 5")
}

func TestRunRejectsBadRow(t *testing.T) {
	path := writeList(t, "Clean Code,Robert C. Martin,333-333,3\nBroken,Nobody,000,many\n")
	var out, errOut bytes.Buffer

	code := run([]string{path}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "1 imported before the error")
	assert.NotContains(t, out.String(), "Import complete!")
}

func TestRunUsage(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, 2, run(nil, &out, &errOut))
	assert.Equal(t, 2, run([]string{"a.csv", "b.csv"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "usage: import_books FILE")
	assert.Empty(t, out.String())
}

func TestRunEmptyList(t *testing.T) {
	path := writeList(t, "# nothing yet\n")
	var out, errOut bytes.Buffer

	code := run([]string{path}, &out, &errOut)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Successfully imported: 0 books")
	assert.NotContains(t, out.String(), "Imported books:")
}
