//go:build !libpostal

package engine

import (
	"fmt"

	"github.com/fahadshabir/poster/errors"
)

// NewLibpostal reports that the binary was built without libpostal
// support. Build with -tags libpostal (requires cgo and an installed
// libpostal) to enable the production engine.
func NewLibpostal() (Engine, error) {
	return nil, errors.WrapFatal(
		fmt.Errorf("%w: built without libpostal support", errors.ErrEngineInit),
		"engine", "NewLibpostal", "load production engine")
}
