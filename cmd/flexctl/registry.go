package main

import (
	"fmt"

	"github.com/ryanpbrewster/flexss"
)

// pickerInfo describes one algorithm for list-pickers and for the
// run/bench subcommands' --picker flag.
type pickerInfo struct {
	name        string
	description string
	newBuilder  func(k int) flexss.Builder
}

var pickers = []pickerInfo{
	{
		name:        "roundrobin",
		description: "tenant-agnostic rotation over all Up backends",
		newBuilder:  flexss.NewRoundRobinBuilder,
	},
	{
		name:        "naiveshuffle",
		description: "tenant-seeded k-shard, does not consult health inside the shard",
		newBuilder:  flexss.NewNaiveShuffleBuilder,
	},
	{
		name:        "drainawareshuffle",
		description: "naiveshuffle variant that excludes Draining before sharding",
		newBuilder:  flexss.NewDrainAwareShuffleBuilder,
	},
	{
		name:        "blockpicker",
		description: "fleet partitioned into k fixed buckets, one deterministic slot per bucket",
		newBuilder:  flexss.NewBlockPickerBuilder,
	},
	{
		name:        "rendezvous",
		description: "highest-random-weight hashing, one backend per tenant",
		newBuilder:  flexss.NewRendezvousBuilder,
	},
	{
		name:        "rendezvousshuffle",
		description: "k-member rendezvous shard via a streaming top-k heap",
		newBuilder:  flexss.NewRendezvousShuffleBuilder,
	},
}

func findPicker(name string) (pickerInfo, error) {
	for _, p := range pickers {
		if p.name == name {
			return p, nil
		}
	}
	return pickerInfo{}, fmt.Errorf("unknown picker %q, see 'flexctl list-pickers'", name)
}
