package duobit

import (
	"fmt"

	"github.com/rony4d/go-duobit/utils/bits"
)

// Utilities bundles the stateless helpers every buffer delegates its per-byte work to.
type Utilities interface {
	bits.Masker
	bits.Arithmetic
	bits.Counter
}

type utilities struct {
	bits.Masker
	bits.Arithmetic
	bits.Counter
}

var defaultUtilities Utilities = utilities{
	Masker:     bits.Standard{},
	Arithmetic: bits.Standard{},
	Counter:    bits.Standard{},
}

// NewUtilities composes a bundle from its three capabilities.
func NewUtilities(m bits.Masker, a bits.Arithmetic, c bits.Counter) (Utilities, error) {
	if m == nil || a == nil || c == nil {
		return nil, fmt.Errorf("%w: masker, arithmetic and counter are all required", ErrMissingInput)
	}
	return utilities{
		Masker:     m,
		Arithmetic: a,
		Counter:    c,
	}, nil
}

// DefaultUtilities returns the shared bundle backed by bits.Standard. It holds no state and
// may be used from any number of goroutines.
func DefaultUtilities() Utilities {
	return defaultUtilities
}
