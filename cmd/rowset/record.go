package main

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/ydb-platform/ydb-go-rowset/query"
)

// record is a row as column name to value
type record map[string]any

func scanRecord(row query.Row, _ *query.MappingContext) (record, error) {
	var (
		columns = row.Columns()
		values  = make([]any, len(columns))
		dst     = make([]any, len(columns))
	)
	for i := range values {
		dst[i] = &values[i]
	}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	r := make(record, len(columns))
	for i, c := range columns {
		if b, ok := values[i].([]byte); ok {
			r[c] = string(b)
		} else {
			r[c] = values[i]
		}
	}

	return r, nil
}

type output struct {
	mu  sync.Mutex
	enc *json.Encoder
}

type line struct {
	Query int    `json:"query"`
	Row   record `json:"row"`
}

func newOutput(w io.Writer) *output {
	return &output{
		enc: json.NewEncoder(w),
	}
}

func (o *output) write(index int, r record) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.enc.Encode(line{
		Query: index,
		Row:   r,
	})
}
