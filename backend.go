package rowset

import (
	"errors"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/bind"
)

var errNilBackend = errors.New("nil backend")

type (
	Backend   = backend.Backend
	Conn      = backend.Conn
	Command   = backend.Command
	Cursor    = backend.Cursor
	Statement = backend.Statement
	Param     = backend.Param

	// Bind rewrites statement before execution
	Bind = bind.Bind
	// BindFunc is an adapter to allow the use of ordinary functions as Bind
	BindFunc = bind.Func
)
