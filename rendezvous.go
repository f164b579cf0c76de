package flexss

import (
	"encoding/binary"
)

// Rendezvous is classical highest-random-weight hashing: for every Up
// backend it scores hash(tenant, backend.Id) and returns the maximum,
// ties broken by the larger BackendId. Shard size is always 1 — k is
// accepted for constructor uniformity but ignored.
//
// Consequence: every tenant has exactly one reachable backend at any
// instant. A single poisoned backend kills every tenant that hashes to
// it; RendezvousShuffle exists specifically to fix this.
type Rendezvous struct {
	set *backendSet
}

var _ Picker = (*Rendezvous)(nil)

// NewRendezvous constructs a Rendezvous picker. k is ignored.
func NewRendezvous(k int) *Rendezvous {
	if k < 1 {
		panic(ErrInvalidShardSize)
	}
	return &Rendezvous{set: newBackendSet()}
}

// NewRendezvousBuilder returns a Builder for Rendezvous.
func NewRendezvousBuilder(k int) Builder {
	return BuilderFunc(func() Picker { return NewRendezvous(k) })
}

func (p *Rendezvous) Register(id BackendId, health Health) { p.set.upsert(id, health) }
func (p *Rendezvous) Unregister(id BackendId)              { p.set.remove(id) }

func (p *Rendezvous) Pick(tenant TenantId) (BackendId, bool) {
	var best Backend
	var bestScore uint64
	found := false

	for _, b := range p.set.backends {
		if b.Health != Up {
			continue
		}

		score := rendezvousScore(tenant, b.Id)
		if !found || score > bestScore || (score == bestScore && b.Id > best.Id) {
			best, bestScore, found = b, score, true
		}
	}

	if !found {
		return 0, false
	}
	return best.Id, true
}

// rendezvousScore hashes tenant and backend together using the quality
// hash (not the fast mixer): this is the only source of randomness in
// Rendezvous, so it must have good avalanche behavior.
func rendezvousScore(tenant TenantId, backend BackendId) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(tenant))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(backend))
	return stableHash.HashBytes(buf[:])
}
