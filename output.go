package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"library-catalog/library"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func printBooks(w io.Writer, books []library.Book, asJSON bool) error {
	if asJSON {
		return writeJSON(w, books)
	}
	if len(books) == 0 {
		fmt.Fprintln(w, "No books in catalog.")
		return nil
	}

	fmt.Fprintf(w, "%-5s %-30s %-25s %-12s %s\n", "ID", "Title", "Author", "ISBN", "Available")
	fmt.Fprintln(w, strings.Repeat("-", 85))
	for _, b := range books {
		fmt.Fprintf(w, "%-5d %-30s %-25s %-12s %d/%d\n",
			b.ID,
			library.TruncateString(b.Title, 30),
			library.TruncateString(b.Author, 25),
			library.TruncateString(b.ISBN, 12),
			b.AvailableCopies, b.TotalCopies)
	}
	return nil
}

func printUsers(w io.Writer, users []library.User, asJSON bool) error {
	if asJSON {
		return writeJSON(w, users)
	}
	if len(users) == 0 {
		fmt.Fprintln(w, "No users registered.")
		return nil
	}

	fmt.Fprintf(w, "%-5s %-30s %s\n", "ID", "Name", "Borrowed")
	fmt.Fprintln(w, strings.Repeat("-", 55))
	for _, u := range users {
		borrowed := "none"
		if len(u.BorrowedBookIDs) > 0 {
			ids := make([]string, len(u.BorrowedBookIDs))
			for i, id := range u.BorrowedBookIDs {
				ids[i] = strconv.FormatInt(id, 10)
			}
			borrowed = strings.Join(ids, ", ")
		}
		fmt.Fprintf(w, "%-5d %-30s %s\n", u.ID, library.TruncateString(u.Name, 30), borrowed)
	}
	return nil
}
