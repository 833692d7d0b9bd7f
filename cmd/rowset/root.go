package main

import (
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	dsn            string
	queries        []string
	params         []string
	envParams      []string
	key            string
	placeholders   string
	bracketQuoting bool
	prolog         string
	noPrepare      bool
	logLevel       string
	logDetails     string
	logQuery       bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "rowset --sql QUERY [--sql QUERY]...",
		Short: "Run queries against PostgreSQL and print rows as JSON lines",
		Long: `rowset runs queries against PostgreSQL and prints every row as a JSON line.
Several --sql queries are executed concurrently, each one streams its own rows.

Named placeholders @name and :name are bound from --param and --env-param flags.
Identifiers in brackets like [Order Id] are quoted for PostgreSQL.

Examples:
  rowset --sql 'SELECT * FROM [orders] WHERE customer_id = @id' --param id=7
  rowset --sql 'SELECT * FROM orders' --sql 'SELECT * FROM customers' --key id
  ROWSET_DSN=postgres://localhost/shop rowset --sql 'SELECT 1' --log-level debug`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.dsn, "dsn", os.Getenv("ROWSET_DSN"), "PostgreSQL connection string (default from ROWSET_DSN)")
	flags.StringArrayVar(&opts.queries, "sql", nil, "Query to run, may be repeated")
	flags.StringArrayVarP(&opts.params, "param", "p", nil, "Query param as name=value, may be repeated")
	flags.StringArrayVar(&opts.envParams, "env-param", nil,
		"Query param as name=ENV, value is read from environment when query is executed")
	flags.StringVar(&opts.key, "key", "", "Column with entity key, rows of the same entity are printed once")
	flags.StringVar(&opts.placeholders, "placeholders", placeholdersNumeric,
		"Placeholders rewrite mode: numeric ($1), positional (?) or none")
	flags.BoolVar(&opts.bracketQuoting, "bracket-quoting", true, "Quote [name] identifiers")
	flags.StringVar(&opts.prolog, "prolog", "", "Text prepended to every query")
	flags.BoolVar(&opts.noPrepare, "no-prepare", false, "Execute queries without prepared statements")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logDetails, "log-details", "", `Regexp of traced events, for example '^rowset\.(rows|param)$'`)
	flags.BoolVar(&opts.logQuery, "log-query", false, "Log query text and param values")
	_ = cmd.MarkFlagRequired("sql")

	return cmd
}
