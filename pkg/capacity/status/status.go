// Package status exports errors produced by the capacity package.
package status

import (
	"github.com/oneconcern/zcash-scale-calc/pkg/errors"
)

var (
	// ErrInvalidArgument indicates an input that parses but is rejected by domain validation
	ErrInvalidArgument = errors.New("invalid argument")
)
