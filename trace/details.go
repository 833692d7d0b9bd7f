package trace

import (
	"regexp"
	"sort"
	"strings"
)

type Detailer interface {
	Details() Details
}

var _ Detailer = Details(0)

type Details uint64

func (d Details) Details() Details {
	return d
}

func (d Details) String() string {
	ss := make([]string, 0)
	for bit, name := range detailsMap {
		if d&bit == bit {
			ss = append(ss, name)
		}
	}
	sort.Strings(ss)

	return strings.Join(ss, "|")
}

const (
	RowsetExecutorEvents Details = 1 << iota // for bitmask: 1, 2, 4, 8, 16, 32, ...
	RowsetParamEvents
	RowsetResourceEvents
	RowsetRowsEvents
	RowsetRowEvents
	RowsetIdentityEvents

	RowsetEvents = RowsetExecutorEvents |
		RowsetParamEvents |
		RowsetResourceEvents |
		RowsetRowsEvents |
		RowsetRowEvents |
		RowsetIdentityEvents

	DetailsAll = ^Details(0) // All bits enabled
)

var (
	detailsMap = map[Details]string{
		RowsetExecutorEvents: "rowset.executor",
		RowsetParamEvents:    "rowset.param",
		RowsetResourceEvents: "rowset.resource",
		RowsetRowsEvents:     "rowset.rows",
		RowsetRowEvents:      "rowset.row",
		RowsetIdentityEvents: "rowset.identity",
	}
	defaultDetails = DetailsAll
)

type matchDetailsOptionsHolder struct {
	defaultDetails Details
}

type matchDetailsOption func(h *matchDetailsOptionsHolder)

func WithDefaultDetails(defaultDetails Details) matchDetailsOption {
	return func(h *matchDetailsOptionsHolder) {
		h.defaultDetails = defaultDetails
	}
}

// MatchDetails returns details whose names match pattern, for example `^rowset\.(rows|row)$`.
// Invalid or non-matching pattern gives the default details.
func MatchDetails(pattern string, opts ...matchDetailsOption) (d Details) {
	var (
		h = &matchDetailsOptionsHolder{
			defaultDetails: defaultDetails,
		}
		re, err = regexp.Compile(pattern)
	)

	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	if err != nil {
		return h.defaultDetails
	}
	for k, v := range detailsMap {
		if re.MatchString(v) {
			d |= k
		}
	}
	if d == 0 {
		return h.defaultDetails
	}

	return d
}
