package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"library-catalog/library"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	var selfTest bool

	root := &cobra.Command{
		Use:          "catalog",
		Short:        "In-memory library catalog with borrowing and search",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if selfTest {
				return selfTestRun(cfg)(cmd, nil)
			}
			return replRun(cfg)(cmd, nil)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&cfg.json, "json", false, "print listings and search results as JSON")
	flags.StringVar(&cfg.importPath, "import", "", "preload books from a CSV file (title,author,isbn,copies)")
	flags.BoolVar(&cfg.noSeed, "no-seed", false, "start without the demo books and users")
	root.Flags().BoolVar(&selfTest, "test", false, "run the built-in self-test and exit")

	root.AddCommand(
		&cobra.Command{
			Use:   "repl",
			Short: "Start the interactive menu",
			Args:  cobra.NoArgs,
			RunE:  replRun(cfg),
		},
		&cobra.Command{
			Use:   "selftest",
			Short: "Run the scripted borrow/return scenario; exit code 1 on failure",
			Args:  cobra.NoArgs,
			RunE:  selfTestRun(cfg),
		},
		&cobra.Command{
			Use:   "books",
			Short: "List all books",
			Args:  cobra.NoArgs,
			RunE: withCatalog(cfg, func(cmd *cobra.Command, cat *library.Catalog, _ *slog.Logger) error {
				return printBooks(cmd.OutOrStdout(), cat.ListAllBooks(), cfg.json)
			}),
		},
		&cobra.Command{
			Use:   "users",
			Short: "List all users",
			Args:  cobra.NoArgs,
			RunE: withCatalog(cfg, func(cmd *cobra.Command, cat *library.Catalog, _ *slog.Logger) error {
				return printUsers(cmd.OutOrStdout(), cat.ListAllUsers(), cfg.json)
			}),
		},
		newSearchCmd(cfg),
	)
	return root
}

func newSearchCmd(cfg *config) *cobra.Command {
	var title, author string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search books by title or author (case-insensitive substring)",
		Args:  cobra.NoArgs,
		RunE: withCatalog(cfg, func(cmd *cobra.Command, cat *library.Catalog, _ *slog.Logger) error {
			books := cat.SearchByTitle(title)
			if cmd.Flags().Changed("author") {
				books = cat.SearchByAuthor(author)
			}
			return printBooks(cmd.OutOrStdout(), books, cfg.json)
		}),
	}
	cmd.Flags().StringVar(&title, "title", "", "substring of the title")
	cmd.Flags().StringVar(&author, "author", "", "substring of the author")
	cmd.MarkFlagsMutuallyExclusive("title", "author")
	return cmd
}

// withCatalog wraps fn as a cobra RunE that first builds the logger and
// catalog described by the global flags.
func withCatalog(cfg *config, fn func(*cobra.Command, *library.Catalog, *slog.Logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logger, err := cfg.newLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		cat, err := cfg.newCatalog(logger)
		if err != nil {
			return err
		}
		return fn(cmd, cat, logger)
	}
}

func replRun(cfg *config) func(*cobra.Command, []string) error {
	return withCatalog(cfg, func(cmd *cobra.Command, cat *library.Catalog, logger *slog.Logger) error {
		newSession(cmd.InOrStdin(), cmd.OutOrStdout(), cat, logger, cfg.json).run()
		return nil
	})
}

func selfTestRun(cfg *config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logger, err := cfg.newLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return runSelfTest(cmd.OutOrStdout(), emptyCatalog(logger))
	}
}
