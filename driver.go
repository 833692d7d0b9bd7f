package rowset

import (
	"context"
	"database/sql"
	"os"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/config"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
	"github.com/ydb-platform/ydb-go-rowset/internal/xsql"
	"github.com/ydb-platform/ydb-go-rowset/log"
	"github.com/ydb-platform/ydb-go-rowset/trace"
)

// Driver holds backend and configuration shared by queries
type Driver struct {
	logger        log.Logger
	loggerOpts    []log.Option
	loggerDetails trace.Detailer

	config  *config.Config
	options []config.Option

	backend backend.Backend
}

// Open makes Driver over database/sql pool. Driver does not own db, caller closes it.
func Open(ctx context.Context, db *sql.DB, opts ...Option) (_ *Driver, err error) {
	d, err := newDriver(ctx, opts...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	var xsqlOpts []xsql.Option
	if !d.config.Prepare() {
		xsqlOpts = append(xsqlOpts, xsql.WithoutPrepare())
	}
	d.backend, err = xsql.New(db, xsqlOpts...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return d, nil
}

// New makes Driver over custom backend
func New(ctx context.Context, b Backend, opts ...Option) (_ *Driver, err error) {
	if b == nil {
		return nil, xerrors.WithStackTrace(errNilBackend)
	}
	d, err := newDriver(ctx, opts...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	d.backend = b

	return d, nil
}

func newDriver(ctx context.Context, opts ...Option) (*Driver, error) {
	d := &Driver{}
	if logLevel, has := os.LookupEnv("ROWSET_LOG_SEVERITY_LEVEL"); has {
		if l := log.FromString(logLevel); l < log.QUIET {
			opts = append([]Option{
				WithLogger(
					log.Default(os.Stderr,
						log.WithMinLevel(l),
						log.WithColoring(),
					),
					trace.MatchDetails(
						os.Getenv("ROWSET_LOG_DETAILS"),
						trace.WithDefaultDetails(trace.DetailsAll),
					),
					log.WithLogQuery(),
				),
			}, opts...)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			if err := opt(ctx, d); err != nil {
				return nil, xerrors.WithStackTrace(err)
			}
		}
	}
	if d.logger != nil {
		t := log.Rowset(d.logger, d.loggerDetails, d.loggerOpts...)
		d.options = append(d.options, config.WithTrace(&t))
	}
	d.config = config.New(d.options...)

	return d, nil
}
