package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"library-catalog/library"
)

var errSelfTestFailed = errors.New("self-test failed")

// checker records the outcome of each scripted step.
type checker struct {
	out    io.Writer
	failed int
}

func (c *checker) check(ok bool, what string) {
	if ok {
		fmt.Fprintf(c.out, "ok    %s\n", what)
		return
	}
	c.failed++
	fmt.Fprintf(c.out, "FAIL  %s\n", what)
}

func (c *checker) available(cat *library.Catalog, id int64, want, total int) {
	b, ok := cat.GetBook(id)
	c.check(ok && b.AvailableCopies == want && b.TotalCopies == total,
		fmt.Sprintf("book %d has %d/%d available", id, want, total))
}

// emptyCatalog returns a factory for empty catalogs that log to logger.
func emptyCatalog(logger *slog.Logger) func() *library.Catalog {
	return func() *library.Catalog { return library.New(library.WithLogger(logger)) }
}

// runSelfTest drives a catalog from newCatalog through the
// borrow/return/remove scenario and reports errSelfTestFailed if any step
// misbehaves. The scenario expects newCatalog to return an empty catalog.
func runSelfTest(out io.Writer, newCatalog func() *library.Catalog) error {
	cat := newCatalog()
	c := &checker{out: out}

	primer, _ := cat.AddBook("C++ Primer", "Stanley Lippman", "111-111", 2)
	tcpl, _ := cat.AddBook("The C++ Programming Language", "Bjarne Stroustrup", "222-222", 1)
	_, _ = cat.AddBook("Clean Code", "Robert C. Martin", "333-333", 3)

	alice := cat.RegisterUser("Alice")
	bob := cat.RegisterUser("Bob")

	c.check(cat.BorrowBook(alice, primer) == nil, "Alice borrows C++ Primer")
	c.available(cat, primer, 1, 2)
	c.check(cat.BorrowBook(bob, primer) == nil, "Bob borrows C++ Primer")
	c.available(cat, primer, 0, 2)
	c.check(cat.BorrowBook(alice, primer) != nil, "Alice cannot borrow C++ Primer again")

	c.check(cat.BorrowBook(alice, tcpl) == nil, "Alice borrows The C++ Programming Language")
	c.available(cat, tcpl, 0, 1)

	c.check(cat.ReturnBook(bob, primer) == nil, "Bob returns C++ Primer")
	c.available(cat, primer, 1, 2)
	c.check(cat.ReturnBook(bob, tcpl) != nil, "Bob cannot return The C++ Programming Language")

	c.check(cat.RemoveBook(tcpl) != nil, "borrowed book cannot be removed")
	c.check(cat.ReturnBook(alice, tcpl) == nil, "Alice returns The C++ Programming Language")
	c.check(cat.RemoveBook(tcpl) == nil, "returned book can be removed")

	found := cat.SearchByTitle("clean")
	c.check(len(found) == 1 && found[0].Title == "Clean Code", `title search "clean" finds only Clean Code`)

	if c.failed > 0 {
		fmt.Fprintf(out, "%d check(s) failed\n", c.failed)
		return errSelfTestFailed
	}
	fmt.Fprintln(out, "All tests passed")
	return nil
}
