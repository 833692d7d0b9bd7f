package trace

// tool gtrace: go install github.com/gobwas/gtrace/cmd/gtrace@latest

//go:generate gtrace

import (
	"context"
)

type (
	// Rowset specified trace of query execution and rows materialization activity.
	// gtrace:gen
	Rowset struct {
		OnExecute        func(RowsetExecuteStartInfo) func(RowsetExecuteDoneInfo)
		OnConnOpen       func(RowsetConnOpenStartInfo) func(RowsetConnOpenDoneInfo)
		OnParamResolve   func(RowsetParamResolveStartInfo) func(RowsetParamResolveDoneInfo)
		OnCommandExecute func(RowsetCommandExecuteStartInfo) func(RowsetCommandExecuteDoneInfo)
		OnRelease        func(RowsetReleaseStartInfo) func(RowsetReleaseDoneInfo)

		OnRowsOpen  func(RowsetRowsOpenStartInfo) func(RowsetRowsOpenDoneInfo)
		OnRowsClose func(RowsetRowsCloseStartInfo) func(RowsetRowsCloseDoneInfo)
		OnRowSkip   func(RowsetRowSkipInfo)
		OnIdentity  func(RowsetIdentityInfo)
	}
	RowsetExecuteStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
		Query   string
		Params  int
	}
	RowsetExecuteDoneInfo struct {
		Error error
	}
	RowsetConnOpenStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
	}
	RowsetConnOpenDoneInfo struct {
		Error error
	}
	RowsetParamResolveStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context  *context.Context
		Call     call
		Name     string
		Deferred bool
	}
	RowsetParamResolveDoneInfo struct {
		Value any
		Error error
	}
	RowsetCommandExecuteStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
		Query   string
	}
	RowsetCommandExecuteDoneInfo struct {
		FieldCount int
		Error      error
	}
	RowsetReleaseStartInfo struct {
		Call call
	}
	RowsetReleaseDoneInfo struct {
		Error error
	}
	RowsetRowsOpenStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
		ID      string
		Query   string
		GroupBy bool
	}
	RowsetRowsOpenDoneInfo struct {
		Error error
	}
	RowsetRowsCloseStartInfo struct {
		Call call
		ID   string
		// Rows is a count of values yielded before close
		Rows int
		// Exhausted is true if cursor has been read to the end
		Exhausted bool
	}
	RowsetRowsCloseDoneInfo struct {
		Error error
	}
	RowsetRowSkipInfo struct {
		Call call
		ID   string
		// Index is a zero-based index of the cursor row
		Index int
	}
	RowsetIdentityInfo struct {
		Call call
		ID   string
		// Hit is true if previously materialized instance was returned instead of a new one
		Hit bool
	}
)
