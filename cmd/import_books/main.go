package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"library-catalog/library"
)

// import_books loads a CSV book list (title,author,isbn,copies) into an empty
// catalog and prints the result, so a list can be checked before it is
// passed to `catalog --import`.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: import_books FILE")
		return 2
	}
	path := args[0]

	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cat := library.New(library.WithLogger(logger))

	fmt.Fprintf(out, "Importing books from %s...\n", path)
	n, err := cat.ImportBooksFromFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "Error importing books (%d imported before the error): %v\n", n, err)
		return 1
	}

	fmt.Fprintf(out, "\nImport complete!\n")
	fmt.Fprintf(out, "Successfully imported: %d books\n", n)

	books := cat.ListAllBooks()
	if len(books) == 0 {
		return 0
	}
	copies := 0
	fmt.Fprintln(out, "\nImported books:")
	for _, b := range books {
		fmt.Fprintf(out, "  %s\n", b)
		copies += b.TotalCopies
	}
	fmt.Fprintf(out, "\nTotal copies: %d\n", copies)
	return 0
}
