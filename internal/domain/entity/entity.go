// Package entity contains the composite physical objects of the domain layer:
// boxes, products, product packages and boxes filled by a packing run.
// Every entity is built from valueobject quantities and only reads them;
// derived values are computed on demand through the conversion engines.
package entity

import (
	"errors"

	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

// Entity errors define domain-specific error conditions.
var (
	// ErrInvalidDimension is returned when a supplied inner box dimension does
	// not fit strictly inside its outer counterpart.
	ErrInvalidDimension = valueobject.ErrInvalidDimension

	// ErrInvalidState is returned when an operation is undefined for the
	// current data, such as density over a non-positive volume.
	ErrInvalidState = errors.New("invalid state")

	ErrInvalidProductSKU = errors.New("product SKU cannot be empty")
	ErrNilProduct        = errors.New("product cannot be nil")
)
