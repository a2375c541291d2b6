package library

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
)

// Catalog owns every Book and User and is the only place they are mutated.
// Values handed out by its methods are snapshots.
//
// A single RWMutex guards both collections and both id counters: borrow and
// return touch a book and a user together and must not interleave with each
// other or with removal.
type Catalog struct {
	mu sync.RWMutex

	books []Book
	users []User

	nextBookID int64
	nextUserID int64

	logger *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used to report catalog mutations.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns an empty catalog. Book and user ids both start at 1.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		nextBookID: 1,
		nextUserID: 1,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ------------------ Book helpers ------------------

// AddBook catalogues a new title with copies available copies and returns its id.
// Negative copy counts are rejected; zero is allowed.
func (c *Catalog) AddBook(title, author, isbn string, copies int) (int64, error) {
	if copies < 0 {
		c.logger.Info("add book rejected", "title", title, "copies", copies)
		return 0, fmt.Errorf("add book %q with %d copies: %w", title, copies, ErrInvalidCopies)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	b := Book{
		ID:              c.nextBookID,
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		TotalCopies:     copies,
		AvailableCopies: copies,
	}
	c.nextBookID++
	c.books = append(c.books, b)

	c.logger.Debug("book added", "book_id", b.ID, "title", title, "copies", copies)
	return b.ID, nil
}

// AddCopies puts n more copies of an existing book into circulation.
func (c *Catalog) AddCopies(bookID int64, n int) error {
	if n <= 0 {
		c.logger.Info("add copies rejected", "book_id", bookID, "copies", n)
		return fmt.Errorf("add %d copies to book %d: %w", n, bookID, ErrInvalidCopies)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.bookIndex(bookID)
	if i < 0 {
		c.logger.Info("add copies rejected", "book_id", bookID, "err", ErrBookNotFound)
		return fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
	}
	if n > math.MaxInt-c.books[i].TotalCopies {
		c.logger.Info("add copies rejected", "book_id", bookID, "copies", n, "total", c.books[i].TotalCopies)
		return fmt.Errorf("add %d copies to book %d with %d copies: %w", n, bookID, c.books[i].TotalCopies, ErrInvalidCopies)
	}
	c.books[i].TotalCopies += n
	c.books[i].AvailableCopies += n

	c.logger.Debug("copies added", "book_id", bookID, "copies", n, "total", c.books[i].TotalCopies)
	return nil
}

// RemoveBook deletes a book that has no copies on loan. The id is never reused.
func (c *Catalog) RemoveBook(bookID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.bookIndex(bookID)
	if i < 0 {
		c.logger.Info("remove book rejected", "book_id", bookID, "err", ErrBookNotFound)
		return fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
	}
	if b := c.books[i]; b.AvailableCopies < b.TotalCopies {
		c.logger.Info("remove book rejected", "book_id", bookID, "err", ErrOutstandingLoans)
		return fmt.Errorf("remove book %d with %d copies on loan: %w", bookID, b.OnLoan(), ErrOutstandingLoans)
	}
	c.books = slices.Delete(c.books, i, i+1)

	c.logger.Debug("book removed", "book_id", bookID)
	return nil
}

// GetBook looks up a book by id.
func (c *Catalog) GetBook(id int64) (Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.bookIndex(id)
	if i < 0 {
		return Book{}, false
	}
	return c.books[i], true
}

// ListAllBooks returns every book in insertion order.
func (c *Catalog) ListAllBooks() []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]Book{}, c.books...)
}

// ------------------ User helpers ------------------

// RegisterUser adds a user with nothing borrowed and returns its id.
func (c *Catalog) RegisterUser(name string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	u := User{ID: c.nextUserID, Name: name, BorrowedBookIDs: []int64{}}
	c.nextUserID++
	c.users = append(c.users, u)

	c.logger.Debug("user registered", "user_id", u.ID, "name", name)
	return u.ID
}

// GetUser looks up a user by id.
func (c *Catalog) GetUser(id int64) (User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.userIndex(id)
	if i < 0 {
		return User{}, false
	}
	return c.users[i].clone(), true
}

// ListAllUsers returns every user in registration order.
func (c *Catalog) ListAllUsers() []User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	users := make([]User, len(c.users))
	for i, u := range c.users {
		users[i] = u.clone()
	}
	return users
}

// BorrowedBooks returns the books userID currently holds, in borrow order.
func (c *Catalog) BorrowedBooks(userID int64) ([]Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ui := c.userIndex(userID)
	if ui < 0 {
		return nil, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}
	books := make([]Book, 0, len(c.users[ui].BorrowedBookIDs))
	for _, id := range c.users[ui].BorrowedBookIDs {
		if bi := c.bookIndex(id); bi >= 0 {
			books = append(books, c.books[bi])
		}
	}
	return books, nil
}

// ------------------ Circulation ------------------

// BorrowBook lends one copy of bookID to userID. Every precondition is
// checked before anything is mutated.
func (c *Catalog) BorrowBook(userID, bookID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ui, bi, err := c.resolve(userID, bookID)
	if err == nil {
		switch {
		case c.books[bi].AvailableCopies <= 0:
			err = fmt.Errorf("borrow book %d: %w", bookID, ErrNoAvailableCopies)
		case c.users[ui].HasBorrowed(bookID):
			err = fmt.Errorf("user %d borrow book %d: %w", userID, bookID, ErrAlreadyBorrowed)
		}
	}
	if err != nil {
		c.logger.Info("borrow rejected", "user_id", userID, "book_id", bookID, "err", err)
		return err
	}

	c.books[bi].AvailableCopies--
	c.users[ui].BorrowedBookIDs = append(c.users[ui].BorrowedBookIDs, bookID)

	c.logger.Debug("book borrowed", "user_id", userID, "book_id", bookID,
		"available", c.books[bi].AvailableCopies)
	return nil
}

// ReturnBook takes back the copy of bookID held by userID.
func (c *Catalog) ReturnBook(userID, bookID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ui, bi, err := c.resolve(userID, bookID)
	if err != nil {
		c.logger.Info("return rejected", "user_id", userID, "book_id", bookID, "err", err)
		return err
	}

	u := &c.users[ui]
	j := slices.Index(u.BorrowedBookIDs, bookID)
	if j < 0 {
		err := fmt.Errorf("user %d return book %d: %w", userID, bookID, ErrNotBorrowed)
		c.logger.Info("return rejected", "user_id", userID, "book_id", bookID, "err", err)
		return err
	}
	u.BorrowedBookIDs = slices.Delete(u.BorrowedBookIDs, j, j+1)

	if b := &c.books[bi]; b.AvailableCopies < b.TotalCopies {
		b.AvailableCopies++
	}

	c.logger.Debug("book returned", "user_id", userID, "book_id", bookID,
		"available", c.books[bi].AvailableCopies)
	return nil
}

// ------------------ Search ------------------

// SearchByTitle returns the books whose title contains query, ignoring case.
// An empty query matches every book.
func (c *Catalog) SearchByTitle(query string) []Book {
	return c.search(query, func(b Book) string { return b.Title })
}

// SearchByAuthor returns the books whose author contains query, ignoring case.
func (c *Catalog) SearchByAuthor(query string) []Book {
	return c.search(query, func(b Book) string { return b.Author })
}

func (c *Catalog) search(query string, field func(Book) string) []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(query)
	results := []Book{}
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(field(b)), q) {
			results = append(results, b)
		}
	}
	return results
}

// ------------------ Lookups ------------------

// Callers must hold c.mu.

func (c *Catalog) bookIndex(id int64) int {
	return slices.IndexFunc(c.books, func(b Book) bool { return b.ID == id })
}

func (c *Catalog) userIndex(id int64) int {
	return slices.IndexFunc(c.users, func(u User) bool { return u.ID == id })
}

func (c *Catalog) resolve(userID, bookID int64) (ui, bi int, err error) {
	if ui = c.userIndex(userID); ui < 0 {
		return -1, -1, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}
	if bi = c.bookIndex(bookID); bi < 0 {
		return -1, -1, fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
	}
	return ui, bi, nil
}
