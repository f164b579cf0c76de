// Package sim is the simulation harness: it drives register/pick
// sequences against every picker algorithm and enforces the correctness
// contract each one actually claims. It is polymorphic
// over flexss.Picker, so a scenario is written once and run against every
// algorithm's Builder.
package sim

import (
	"github.com/ryanpbrewster/flexss"
	"github.com/samber/lo"
)

// fleet wraps a Picker with the harness's own shadow of backend health.
// A real caller is the only source of truth for what health it last told
// the picker a backend has, so the harness tracks it the same way any
// router embedding one of these pickers would, instead of reaching into
// picker-internal state.
type fleet struct {
	picker flexss.Picker
	health map[flexss.BackendId]flexss.Health
}

func newFleet(picker flexss.Picker) *fleet {
	return &fleet{picker: picker, health: make(map[flexss.BackendId]flexss.Health)}
}

func (f *fleet) register(id flexss.BackendId, h flexss.Health) {
	f.picker.Register(id, h)
	f.health[id] = h
}

func (f *fleet) unregister(id flexss.BackendId) {
	f.picker.Unregister(id)
	delete(f.health, id)
}

// seed registers n backends, ids 0..n-1, all Up.
func (f *fleet) seed(n int) {
	for i := 0; i < n; i++ {
		f.register(flexss.BackendId(i), flexss.Up)
	}
}

func (f *fleet) upCount() int {
	return lo.CountBy(lo.Values(f.health), func(h flexss.Health) bool { return h == flexss.Up })
}

// healthOf reports the harness's last-known health for id, or false if it
// is not currently registered (the picker must never return such an id).
func (f *fleet) healthOf(id flexss.BackendId) (flexss.Health, bool) {
	h, ok := f.health[id]
	return h, ok
}

// pick is a thin passthrough kept for symmetry with register/unregister;
// it returns the picker's raw result unchanged.
func (f *fleet) pick(tenant flexss.TenantId) (flexss.BackendId, bool) {
	return f.picker.Pick(tenant)
}

// shardedBuilders returns every algorithm for which shard containment and
// poison-pill isolation are meaningful: every picker except the two
// tenant-agnostic/unsharded ones, RoundRobin and Rendezvous.
func shardedBuilders(k int) map[string]flexss.Builder {
	return map[string]flexss.Builder{
		"NaiveShuffle":       flexss.NewNaiveShuffleBuilder(k),
		"DrainAwareShuffle":  flexss.NewDrainAwareShuffleBuilder(k),
		"BlockPicker":        flexss.NewBlockPickerBuilder(k),
		"RendezvousShuffle":  flexss.NewRendezvousShuffleBuilder(k),
	}
}

// allBuilders returns every picker algorithm.
func allBuilders(k int) map[string]flexss.Builder {
	b := shardedBuilders(k)
	b["RoundRobin"] = flexss.NewRoundRobinBuilder(k)
	b["Rendezvous"] = flexss.NewRendezvousBuilder(k)
	return b
}

// drainSurvivorBuilders returns the pickers the rolling-restart property holds
// for: draining a third of the fleet at a time and restoring it never
// yields a non-Up pick.
func drainSurvivorBuilders(k int) map[string]flexss.Builder {
	return map[string]flexss.Builder{
		"RoundRobin":         flexss.NewRoundRobinBuilder(k),
		"DrainAwareShuffle":  flexss.NewDrainAwareShuffleBuilder(k),
		"Rendezvous":         flexss.NewRendezvousBuilder(k),
		"RendezvousShuffle":  flexss.NewRendezvousShuffleBuilder(k),
	}
}

// recycleSurvivorBuilders are the pickers the recycle blast-radius
// property holds for.
func recycleSurvivorBuilders(k int) map[string]flexss.Builder {
	return map[string]flexss.Builder{
		"Rendezvous":        flexss.NewRendezvousBuilder(k),
		"RendezvousShuffle": flexss.NewRendezvousShuffleBuilder(k),
	}
}

// loadBalancedBuilders are the pickers the load-distribution property
// holds for; Rendezvous is excluded, it concentrates an entire
// tenant on one backend by design.
func loadBalancedBuilders(k int) map[string]flexss.Builder {
	return map[string]flexss.Builder{
		"RoundRobin":         flexss.NewRoundRobinBuilder(k),
		"NaiveShuffle":       flexss.NewNaiveShuffleBuilder(k),
		"BlockPicker":        flexss.NewBlockPickerBuilder(k),
		"RendezvousShuffle":  flexss.NewRendezvousShuffleBuilder(k),
	}
}
