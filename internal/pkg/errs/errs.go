// Package errs is a thin facade over cockroachdb/errors. Call sites get
// sentinel marking for errors.Is checks and stack capture for request logs
// without importing the library everywhere.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches sentinel to err so errors.Is(err, sentinel) holds while the
// original cause stays intact.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// ExtractStackLines renders the error with its stack trace and returns at
// most maxLines lines. maxLines <= 0 means no limit.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
