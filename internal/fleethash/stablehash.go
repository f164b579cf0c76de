package fleethash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Stable is the picker family's identifier hash: deterministic across
// calls within one process lifetime, fast on the hot path, and with
// avalanche behavior good enough that adjacent ids (tenant 41, 42, 43...)
// land nowhere near each other. xxhash is the standard non-cryptographic
// hash the wider fleet of examples this library was grown alongside
// already depends on, so it is used here rather than hand-rolling one.
type Stable struct{}

var _ Func = Stable{}

// Hash64 hashes an opaque 64-bit id (a TenantId or BackendId) to a stable
// 64-bit score.
func (Stable) Hash64(id uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], id)
	return xxhash.Sum64(buf[:])
}

// HashBytes hashes an arbitrary byte string, used when combining a tenant
// and backend id into a single rendezvous score (hash(tenant ||
// backend.id), as opposed to the cheap Combine mixer used elsewhere).
func (Stable) HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
