package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kotaroooo0/facetfish"
	"github.com/kotaroooo0/facetfish/morphology"
)

type rootOptions struct {
	configPath  string
	source      string
	lang        string
	dump        bool
	interactive bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "facetfish [query...]",
		Short: "Faceted shirt catalog search",
		Long: `facetfish filters a shirt catalog by color and size and prints, for every
color and size, how many of the matching shirts carry it.

Example usage:
  facetfish                          # every shirt
  facetfish red or black small       # red and black shirts in small
  facetfish --lang ja 赤のS           # Japanese query
  facetfish -i                       # read one query per line from stdin`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (YAML)")
	cmd.Flags().StringVar(&opts.source, "source", "", "catalog source: fixture or mysql")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "query language: en or ja")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "pretty-print raw results instead of tables")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "read queries from stdin, one per line")

	cmd.AddCommand(newColorsCmd(), newSizesCmd())
	return cmd
}

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List every color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderColors(cmd.OutOrStdout())
		},
	}
}

func newSizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "List every size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderSizes(cmd.OutOrStdout())
		},
	}
}

func runSearch(cmd *cobra.Command, opts *rootOptions, args []string) error {
	// フラグで上書きしてから検証する
	cfg, err := Read(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("source") {
		cfg.Source = opts.source
	}
	if cmd.Flags().Changed("lang") {
		cfg.Lang = opts.lang
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}

	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	searcher, err := openSearcher(cfg, logger)
	if err != nil {
		return err
	}
	parser, err := newQueryParser(cfg.Lang)
	if err != nil {
		return err
	}

	s := &session{
		searcher: searcher,
		parser:   parser,
		logger:   logger,
		out:      cmd.OutOrStdout(),
		dump:     opts.dump,
	}
	if opts.interactive {
		return s.repl(cmd.InOrStdin())
	}
	return s.query(strings.Join(args, " "))
}

func openSearcher(cfg *Config, logger *logrus.Logger) (facetfish.Searcher, error) {
	var engine *facetfish.SearchEngine
	switch cfg.Source {
	case sourceMySQL:
		db, err := facetfish.NewDBClient(facetfish.NewDBConfig(
			cfg.Database.User, cfg.Database.Password, cfg.Database.Addr, cfg.Database.Port, cfg.Database.Name,
		))
		if err != nil {
			return nil, err
		}
		defer db.Close()
		engine, err = facetfish.LoadSearchEngine(facetfish.NewStorageRdbImpl(db))
		if err != nil {
			return nil, err
		}
	default:
		engine = facetfish.NewSearchEngine(fixtureShirts())
	}
	logger.WithField("source", cfg.Source).Debug("catalog loaded")

	if cfg.Cache.Disabled {
		return engine, nil
	}
	return facetfish.NewCachedSearcher(engine, cfg.Cache.Expiration, cfg.Cache.CleanupInterval), nil
}

func newQueryParser(lang string) (*facetfish.QueryParser, error) {
	if lang == langJapanese {
		kagome, err := morphology.NewKagome()
		if err != nil {
			return nil, fmt.Errorf("initialize kagome tokenizer: %w", err)
		}
		return facetfish.NewQueryParser(facetfish.NewJapaneseAnalyzer(kagome)), nil
	}
	return facetfish.NewQueryParser(facetfish.NewEnglishAnalyzer()), nil
}

type session struct {
	searcher facetfish.Searcher
	parser   *facetfish.QueryParser
	logger   *logrus.Logger
	out      io.Writer
	dump     bool
}

func (s *session) query(text string) error {
	options, err := s.parser.Parse(text)
	if err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"query":  text,
		"colors": options.Colors,
		"sizes":  options.Sizes,
	}).Debug("query parsed")

	results, err := s.searcher.Search(options)
	if err != nil {
		return err
	}
	s.logger.WithField("shirts", len(results.Shirts)).Info("search finished")

	if s.dump {
		_, err := pp.Fprintln(s.out, results)
		return err
	}
	return renderResults(s.out, results)
}

// repl runs one query per input line. A bad query is logged and does not stop the loop.
func (s *session) repl(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := s.query(scanner.Text()); err != nil {
			s.logger.WithError(err).Warn("query failed")
		}
	}
	return scanner.Err()
}
