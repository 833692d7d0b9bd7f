package xerrors

import (
	"errors"
	"io"
	"slices"
)

// HideEOF turns the end of sequence into nil, other errors are returned as is
func HideEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

// As fills every target which err matches and reports whether any target matched.
// Single import of xerrors replaces both errors and standard proxies.
func As(err error, targets ...any) bool {
	matched := false
	for _, target := range targets {
		if errors.As(err, target) {
			matched = true
		}
	}

	return matched
}

// Is reports whether err matches any of targets. Is panics without targets.
func Is(err error, targets ...error) bool {
	if len(targets) == 0 {
		panic("xerrors: Is called without targets")
	}

	return slices.ContainsFunc(targets, func(target error) bool {
		return errors.Is(err, target)
	})
}
