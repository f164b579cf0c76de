package flexss

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidShardSize is the value every picker constructor panics
	// with when k < 1.
	ErrInvalidShardSize = errors.New("shard size must be >= 1")

	// ErrFleetTooSmall is the precondition-violation panic message for
	// RendezvousShuffle: it requires fleet_size >= k at pick time and
	// aborts loudly rather than silently degrading, per the picker's
	// contract.
	ErrFleetTooSmall = errors.New("fleet size is smaller than shard size")
)
