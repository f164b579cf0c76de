// Package flexss provides a family of multi-tenant backend picker
// algorithms for request-routing code sitting in front of a horizontally
// scaled service: load balancers, RPC clients, gateways.
//
// A picker is constructed once with a shard size k, then fed a stream of
// register/unregister calls describing fleet membership and health, and
// called once per request via Pick(tenant). Six implementations are
// provided, each trading off load distribution, tenant isolation, and
// resilience to poison-pill tenants and rolling restarts differently:
//
//   - RoundRobin: tenant-agnostic rotating selection.
//   - NaiveShuffle: per-tenant deterministic shard via partial shuffle.
//   - DrainAwareShuffle: NaiveShuffle that excludes draining backends.
//   - BlockPicker: deterministic partition of the fleet into k blocks.
//   - Rendezvous: classic highest-random-weight single-backend hashing.
//   - RendezvousShuffle: shard = k lowest-scored backends, random pick
//     among the healthy ones. The recommended default.
//
// None of these pickers talk to a network. Health probing, configuration
// loading, and metrics emission are the caller's responsibility; the
// picker only reacts to register/unregister calls the caller makes on its
// behalf.
package flexss
