package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"library-catalog/library"
)

// session is one interactive menu run against a catalog.
type session struct {
	sc          *bufio.Scanner
	out         io.Writer
	cat         *library.Catalog
	logger      *slog.Logger
	interactive bool
	json        bool
}

// isTerminal reports whether r is a terminal. Prompts are only printed for
// terminals so that piped scripts produce clean output.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newSession(in io.Reader, out io.Writer, cat *library.Catalog, logger *slog.Logger, asJSON bool) *session {
	return &session{
		sc:          bufio.NewScanner(in),
		out:         out,
		cat:         cat,
		logger:      logger,
		interactive: isTerminal(in),
		json:        asJSON,
	}
}

func (s *session) printHelp() {
	fmt.Fprintln(s.out, "Available commands:")
	fmt.Fprintln(s.out, "  Books: list books, add book, add copies, remove book, search title, search author")
	fmt.Fprintln(s.out, "  Users: list users, register user, user books")
	fmt.Fprintln(s.out, "  Circulation: borrow, return")
	fmt.Fprintln(s.out, "  System: test, help, exit")
}

func (s *session) run() {
	if s.interactive {
		fmt.Fprintln(s.out, "Welcome to the Library Catalog!")
		s.printHelp()
	}

	for {
		s.prompt("\n> ")
		if !s.sc.Scan() {
			break
		}
		cmd := strings.ToLower(strings.TrimSpace(s.sc.Text()))

		switch cmd {
		case "":
			continue
		case "list books":
			s.handleListBooks()
		case "list users":
			s.handleListUsers()
		case "add book":
			s.handleAddBook()
		case "add copies":
			s.handleAddCopies()
		case "remove book":
			s.handleRemoveBook()
		case "register user":
			s.handleRegisterUser()
		case "user books":
			s.handleUserBooks()
		case "borrow":
			s.handleBorrow()
		case "return":
			s.handleReturn()
		case "search title":
			s.handleSearch(s.cat.SearchByTitle)
		case "search author":
			s.handleSearch(s.cat.SearchByAuthor)
		case "test":
			if err := runSelfTest(s.out, emptyCatalog(s.logger)); err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", err)
			}
		case "help":
			s.printHelp()
		case "exit", "quit":
			fmt.Fprintln(s.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(s.out, "Unknown command. Type 'help' to see the available commands.")
		}
	}
	if err := s.sc.Err(); err != nil {
		fmt.Fprintf(s.out, "Error reading input: %v\n", err)
	}
}

func (s *session) prompt(p string) {
	if s.interactive {
		fmt.Fprint(s.out, p)
	}
}

// readLine prompts for and returns one trimmed line; ok is false at end of input.
func (s *session) readLine(label string) (string, bool) {
	s.prompt(label + ": ")
	if !s.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.sc.Text()), true
}

func (s *session) readInt(label string) (int64, bool) {
	text, ok := s.readLine(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid %s: %s\n", strings.ToLower(label), text)
		return 0, false
	}
	return n, true
}

// ------------------ Books ------------------

func (s *session) handleListBooks() {
	if err := printBooks(s.out, s.cat.ListAllBooks(), s.json); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *session) handleAddBook() {
	title, ok := s.readLine("Title")
	if !ok {
		return
	}
	author, ok := s.readLine("Author")
	if !ok {
		return
	}
	isbn, ok := s.readLine("ISBN")
	if !ok {
		return
	}
	copies, ok := s.readInt("Copies")
	if !ok {
		return
	}

	id, err := s.cat.AddBook(title, author, isbn, int(copies))
	if err != nil {
		fmt.Fprintf(s.out, "Error adding book: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added book ID %d\n", id)
}

func (s *session) handleAddCopies() {
	bookID, ok := s.readInt("Book ID")
	if !ok {
		return
	}
	n, ok := s.readInt("Copies")
	if !ok {
		return
	}

	if err := s.cat.AddCopies(bookID, int(n)); err != nil {
		fmt.Fprintf(s.out, "Error adding copies: %v\n", err)
		return
	}
	b, _ := s.cat.GetBook(bookID)
	fmt.Fprintf(s.out, "Book '%s' now has %d/%d available\n", b.Title, b.AvailableCopies, b.TotalCopies)
}

func (s *session) handleRemoveBook() {
	bookID, ok := s.readInt("Book ID")
	if !ok {
		return
	}

	if err := s.cat.RemoveBook(bookID); err != nil {
		fmt.Fprintf(s.out, "Error removing book: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Removed book ID %d\n", bookID)
}

func (s *session) handleSearch(search func(string) []library.Book) {
	query, ok := s.readLine("Query")
	if !ok {
		return
	}

	books := search(query)
	if !s.json {
		fmt.Fprintf(s.out, "Found %d book(s) matching '%s':\n", len(books), query)
	}
	if err := printBooks(s.out, books, s.json); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

// ------------------ Users ------------------

func (s *session) handleListUsers() {
	if err := printUsers(s.out, s.cat.ListAllUsers(), s.json); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *session) handleRegisterUser() {
	name, ok := s.readLine("Name")
	if !ok {
		return
	}
	if name == "" {
		fmt.Fprintln(s.out, "Error: Name cannot be empty")
		return
	}

	id := s.cat.RegisterUser(name)
	fmt.Fprintf(s.out, "Registered user '%s' with ID %d\n", name, id)
}

func (s *session) handleUserBooks() {
	userID, ok := s.readInt("User ID")
	if !ok {
		return
	}

	books, err := s.cat.BorrowedBooks(userID)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if !s.json {
		u, _ := s.cat.GetUser(userID)
		fmt.Fprintln(s.out, u)
	}
	if err := printBooks(s.out, books, s.json); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

// ------------------ Circulation ------------------

func (s *session) handleBorrow() {
	userID, ok := s.readInt("User ID")
	if !ok {
		return
	}
	bookID, ok := s.readInt("Book ID")
	if !ok {
		return
	}

	if err := s.cat.BorrowBook(userID, bookID); err != nil {
		fmt.Fprintf(s.out, "Error borrowing book: %v\n", err)
		return
	}
	u, _ := s.cat.GetUser(userID)
	b, _ := s.cat.GetBook(bookID)
	fmt.Fprintf(s.out, "Book '%s' borrowed by %s (%d/%d available)\n", b.Title, u.Name, b.AvailableCopies, b.TotalCopies)
}

func (s *session) handleReturn() {
	userID, ok := s.readInt("User ID")
	if !ok {
		return
	}
	bookID, ok := s.readInt("Book ID")
	if !ok {
		return
	}

	if err := s.cat.ReturnBook(userID, bookID); err != nil {
		fmt.Fprintf(s.out, "Error returning book: %v\n", err)
		return
	}
	u, _ := s.cat.GetUser(userID)
	b, _ := s.cat.GetBook(bookID)
	fmt.Fprintf(s.out, "Book '%s' returned by %s (%d/%d available)\n", b.Title, u.Name, b.AvailableCopies, b.TotalCopies)
}
