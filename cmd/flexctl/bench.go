package main

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/ryanpbrewster/flexss"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func newBenchCommand() *cobra.Command {
	var (
		pickerName string
		backends   int
		shardSize  int
		tenants    int
		picks      int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure Pick latency and load distribution for one or all pickers",
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := pickers
			if pickerName != "all" {
				info, err := findPicker(pickerName)
				if err != nil {
					return err
				}
				targets = []pickerInfo{info}
			}

			var errs *multierror.Error
			for _, info := range targets {
				if err := benchOne(info, backends, shardSize, tenants, picks); err != nil {
					errs = multierror.Append(errs, errors.Wrapf(err, "benchmarking %s", info.name))
				}
			}
			return errs.ErrorOrNil()
		},
	}

	cmd.Flags().StringVar(&pickerName, "picker", "all", "algorithm to benchmark, or 'all'")
	cmd.Flags().IntVar(&backends, "backends", 50, "fleet size")
	cmd.Flags().IntVar(&shardSize, "shard-size", 5, "shard size k")
	cmd.Flags().IntVar(&tenants, "tenants", 100, "number of synthetic tenants")
	cmd.Flags().IntVar(&picks, "picks", 100, "picks issued per tenant")

	return cmd
}

// benchOne runs a picker under a single configuration, reporting mean/stddev
// Pick latency and mean/stddev of per-backend pick counts (the latter is a
// quick proxy for how evenly the algorithm spreads load). A picker that
// panics during the run (RendezvousShuffle's Pick with backends < k) is
// reported as a benchmark error instead of crashing the whole run.
func benchOne(info pickerInfo, backends, shardSize, tenants, picks int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panicked: %v", r)
		}
	}()

	p := info.newBuilder(shardSize).Build()
	for i := 0; i < backends; i++ {
		p.Register(flexss.BackendId(i), flexss.Up)
	}

	tally := make(map[flexss.BackendId]int)
	latencies := make([]float64, 0, tenants*picks)

	for t := 0; t < tenants; t++ {
		for i := 0; i < picks; i++ {
			start := time.Now()
			id, ok := p.Pick(flexss.TenantId(t))
			latencies = append(latencies, float64(time.Since(start).Nanoseconds()))
			if ok {
				tally[id]++
			}
		}
	}

	counts := make([]float64, 0, backends)
	for i := 0; i < backends; i++ {
		counts = append(counts, float64(tally[flexss.BackendId(i)]))
	}

	latMean, latStdDev := stat.MeanStdDev(latencies, nil)
	countMean, countStdDev := stat.MeanStdDev(counts, nil)

	fmt.Printf("%-20s latency: mean=%.0fns stddev=%.0fns  load: mean=%.1f stddev=%.1f\n",
		info.name, latMean, latStdDev, countMean, countStdDev)
	return nil
}
