package main

import (
	"fmt"
	"io"
	"log/slog"

	"library-catalog/library"
)

// config holds the values of the global command-line flags.
type config struct {
	logLevel   string
	json       bool
	importPath string
	noSeed     bool
}

func (c *config) newLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", c.logLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// newCatalog builds the catalog a command works on: the demo books and
// users unless --no-seed is given, followed by the --import file if any.
func (c *config) newCatalog(logger *slog.Logger) (*library.Catalog, error) {
	cat := library.New(library.WithLogger(logger))
	if !c.noSeed {
		seed(cat)
	}
	if c.importPath != "" {
		n, err := cat.ImportBooksFromFile(c.importPath)
		if err != nil {
			return nil, err
		}
		logger.Info("books imported", "path", c.importPath, "count", n)
	}
	return cat, nil
}

func seed(cat *library.Catalog) {
	_, _ = cat.AddBook("C++ Primer", "Stanley Lippman", "111-111", 2)
	_, _ = cat.AddBook("The C++ Programming Language", "Bjarne Stroustrup", "222-222", 1)
	cat.RegisterUser("Alice")
	cat.RegisterUser("Bob")
}
