package flexss

// TenantId names a logical traffic source. Only equality and hashing are
// required of it.
type TenantId uint64

// BackendId names a backend instance. Two BackendIds are distinct even if
// they address the same physical host recycled at different times: a host
// that is decommissioned and rejoins the fleet does so under a fresh id.
type BackendId uint64

// Health is the tri-state health of a registered backend.
type Health uint8

const (
	// Up backends are eligible to serve traffic.
	Up Health = iota
	// Draining backends are being intentionally removed; they should not
	// receive new traffic but this is not a failure.
	Draining
	// Down backends are failing and should not receive traffic.
	Down
)

func (h Health) String() string {
	switch h {
	case Up:
		return "Up"
	case Draining:
		return "Draining"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// Backend is a single registered fleet member. Hash is the stable 64-bit
// hash of Id, precomputed once at registration time and never recomputed:
// a Backend's Hash field must not change for the lifetime of its Id.
type Backend struct {
	Id     BackendId
	Health Health
	Hash   uint64
}
