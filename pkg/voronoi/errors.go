package voronoi

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidInput is returned (wrapped) when the sites, the bounds or the
// options cannot produce a diagram.
var ErrInvalidInput = errors.New("voronoi: invalid input")

func invalidInputf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}
