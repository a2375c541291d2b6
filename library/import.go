package library

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ImportBooks reads CSV rows of title,author,isbn,copies from r and adds each
// as a book. A leading header row and lines starting with '#' are skipped.
// It returns how many books were added; rows before a bad one stay imported.
func (c *Catalog) ImportBooks(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	added := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return added, nil
		}
		if err != nil {
			return added, fmt.Errorf("import books: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if added == 0 && isHeader(rec) {
			continue
		}

		copies, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil {
			return added, fmt.Errorf("import books: line %d: copies %q: %w", line, rec[3], err)
		}
		if _, err := c.AddBook(strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1]), strings.TrimSpace(rec[2]), copies); err != nil {
			return added, fmt.Errorf("import books: line %d: %w", line, err)
		}
		added++
	}
}

// ImportBooksFromFile opens the file at path (relative paths resolve from cwd)
// and imports it with ImportBooks.
func (c *Catalog) ImportBooksFromFile(path string) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, fmt.Errorf("file path cannot be empty")
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return c.ImportBooks(f)
}

func isHeader(rec []string) bool {
	return strings.EqualFold(strings.TrimSpace(rec[0]), "title") &&
		strings.EqualFold(strings.TrimSpace(rec[3]), "copies")
}
