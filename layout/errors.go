package layout

import (
	"errors"
	"fmt"
)

// ErrZeroTotalWeight is reported when a Row or Column has Weight children
// whose weights sum to zero.
var ErrZeroTotalWeight = errors.New("total weight is zero")

// LayoutConfigurationError describes a layout rule that cannot be resolved.
type LayoutConfigurationError struct {
	Axis   Axis
	Parent Rect
	Err    error
}

func (e *LayoutConfigurationError) Error() string {
	return fmt.Sprintf("layout: %s distribution in %s: %v", e.Axis, e.Parent, e.Err)
}

func (e *LayoutConfigurationError) Unwrap() error {
	return e.Err
}
