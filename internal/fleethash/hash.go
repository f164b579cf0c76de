// Package fleethash provides the two hash primitives the picker family is
// built on: a stable 64-bit identifier hash and a fast, non-cryptographic
// score mixer. Neither is exported outside flexss; callers never hash
// anything themselves, they only supply TenantId/BackendId values.
package fleethash

// Func is the shape of a 64-bit hash function over an opaque id or an
// arbitrary byte string. Quality requirement: a one-bit change in the
// input must substantially reshuffle the output (avalanche), since
// RendezvousShuffle and Rendezvous both derive per-backend scores from
// it. Swappable via flexss.SetHashFunc, so a deployment can pick its
// identifier hash without a recompile against a different module.
type Func interface {
	Hash64(id uint64) uint64
	HashBytes(b []byte) uint64
}
