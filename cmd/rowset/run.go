package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/ydb-platform/ydb-go-rowset"
	"github.com/ydb-platform/ydb-go-rowset/identity"
	"github.com/ydb-platform/ydb-go-rowset/log"
	"github.com/ydb-platform/ydb-go-rowset/query"
	"github.com/ydb-platform/ydb-go-rowset/trace"
)

const (
	placeholdersNumeric    = "numeric"
	placeholdersPositional = "positional"
	placeholdersNone       = "none"
)

var (
	errEmptyDSN            = errors.New("empty DSN, use --dsn or ROWSET_DSN")
	errUnknownPlaceholders = errors.New("unknown placeholders mode")
	errBadParam            = errors.New("param must be name=value")
	errEnvNotSet           = errors.New("environment variable is not set")
)

func run(ctx context.Context, opts *options, w io.Writer) error {
	if opts.dsn == "" {
		return errEmptyDSN
	}

	zl, err := newZapLogger(opts.logLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = zl.Sync()
	}()

	driverOpts, err := opts.driverOptions(log.Zap(zl))
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", opts.dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	d, err := rowset.Open(ctx, db, driverOpts...)
	if err != nil {
		return err
	}

	return runQueries(ctx, d, opts, w)
}

func newZapLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	return cfg.Build()
}

func (o *options) driverOptions(l log.Logger) ([]rowset.Option, error) {
	var logOpts []log.Option
	if o.logQuery {
		logOpts = append(logOpts, log.WithLogQuery())
	}
	opts := []rowset.Option{
		rowset.WithLogger(l,
			trace.MatchDetails(o.logDetails, trace.WithDefaultDetails(trace.RowsetEvents)),
			logOpts...,
		),
	}
	if o.bracketQuoting {
		opts = append(opts, rowset.WithBracketQuoting(pq.QuoteIdentifier))
	}
	switch o.placeholders {
	case placeholdersNumeric:
		opts = append(opts, rowset.WithNumericArgs())
	case placeholdersPositional:
		opts = append(opts, rowset.WithPositionalArgs())
	case placeholdersNone:
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownPlaceholders, o.placeholders)
	}
	if o.prolog != "" {
		opts = append(opts, rowset.WithProlog(o.prolog))
	}
	if o.noPrepare {
		opts = append(opts, rowset.WithoutPrepare())
	}

	return opts, nil
}

// queryParams makes options from name=value and name=ENV flags.
// Environment is read when query is executed.
func queryParams(values, envs []string) ([]query.Option, error) {
	opts := make([]query.Option, 0, len(values)+len(envs))
	for _, v := range values {
		name, value, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", errBadParam, v)
		}
		opts = append(opts, query.WithParam(name, value))
	}
	for _, v := range envs {
		name, env, ok := strings.Cut(v, "=")
		if !ok || name == "" || env == "" {
			return nil, fmt.Errorf("%w: %q", errBadParam, v)
		}
		opts = append(opts, query.WithDeferredParam(name, func() (any, error) {
			value, has := os.LookupEnv(env)
			if !has {
				return nil, fmt.Errorf("%w: %s", errEnvNotSet, env)
			}

			return value, nil
		}))
	}

	return opts, nil
}

func runQueries(ctx context.Context, d *rowset.Driver, opts *options, w io.Writer) error {
	params, err := queryParams(opts.params, opts.envParams)
	if err != nil {
		return err
	}

	out := newOutput(w)
	g, ctx := errgroup.WithContext(ctx)
	for i, text := range opts.queries {
		g.Go(func() error {
			return runQuery(ctx, d, i, text, params, opts.key, out)
		})
	}

	return g.Wait()
}

// runQuery prints rows of one query. With key every entity is printed once.
func runQuery(
	ctx context.Context, d *rowset.Driver, index int, text string, params []query.Option, key string, out *output,
) (finalErr error) {
	var (
		fresh bool
		opts  = append([]query.Option{}, params...)
	)
	if key != "" {
		opts = append(opts,
			query.WithIdentityCache[record](identity.New(func(r record) string {
				return fmt.Sprint(r[key])
			})),
			query.WithAttach(func(record) {
				fresh = true
			}),
		)
	}

	rows := rowset.Query(d, text, query.MapperOf[record](scanRecord), opts...)
	defer func() {
		if err := rows.Close(ctx); err != nil && finalErr == nil {
			finalErr = err
		}
	}()

	for {
		r, err := rows.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("query #%d: %w", index, err)
		}
		if key != "" && !fresh {
			continue
		}
		fresh = false
		if err = out.write(index, r); err != nil {
			return err
		}
	}
}
