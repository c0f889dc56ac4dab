package duobit

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/rony4d/go-duobit/utils/bits"
)

var (
	// ErrOutOfRange is returned when an index, count or capacity is outside of its domain.
	ErrOutOfRange = bits.ErrOutOfRange
	// ErrMissingInput is returned when a required slice or collaborator is nil.
	ErrMissingInput = bits.ErrMissingInput
)

var logger = log.New("module", "duobit")
