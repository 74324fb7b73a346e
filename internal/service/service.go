// Package service runs each API mutation: it asks policy whether the caller
// may proceed, talks to the store, and maps store failures onto apperr kinds.
package service

import (
	"time"

	"blogapi/internal/apperr"
	"blogapi/internal/db"

	"github.com/pkg/errors"
)

// zeroTime makes the store count every record.
var zeroTime time.Time

// storeError maps a store error onto an API error. conflict is the message
// reported for unique constraint violations.
func storeError(err error, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound):
		return apperr.Wrap(apperr.NotFound, err, notFound)
	case errors.Is(err, db.ErrDuplicate):
		return apperr.Wrap(apperr.Conflict, err, conflict)
	default:
		return apperr.Wrap(apperr.Internal, err, "Internal Server Error")
	}
}

// missingOK drops store misses so policy, given the nil record, decides the
// outcome. Other failures are returned as Internal.
func missingOK(err error) error {
	if err == nil || errors.Is(err, db.ErrNotFound) {
		return nil
	}
	return apperr.Wrap(apperr.Internal, err, "Internal Server Error")
}
