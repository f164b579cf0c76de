package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/ryanpbrewster/flexss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	var (
		pickerName string
		backends   int
		shardSize  int
		tenants    int
		picks      int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a synthetic fleet against one picker and tally the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := findPicker(pickerName)
			if err != nil {
				return err
			}
			if backends < 1 || shardSize < 1 || tenants < 1 || picks < 1 {
				return errors.New("--backends, --shard-size, --tenants, --picks must all be >= 1")
			}

			p := info.newBuilder(shardSize).Build()
			for i := 0; i < backends; i++ {
				p.Register(flexss.BackendId(i), flexss.Up)
			}
			logger.Infof("registered %d backends against %s (k=%d)", backends, info.name, shardSize)

			tally := make(map[flexss.BackendId]int)
			misses := 0
			for t := 0; t < tenants; t++ {
				for i := 0; i < picks; i++ {
					id, ok := p.Pick(flexss.TenantId(t))
					if !ok {
						misses++
						continue
					}
					tally[id]++
				}
			}

			ids := lo.Keys(tally)
			fmt.Printf("distinct backends touched: %d\n", len(ids))
			fmt.Printf("misses (no Up candidate found): %d\n", misses)
			for _, id := range ids {
				fmt.Printf("  backend %-6d %d picks\n", id, tally[id])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pickerName, "picker", "rendezvousshuffle", "algorithm to run, see list-pickers")
	cmd.Flags().IntVar(&backends, "backends", 30, "fleet size")
	cmd.Flags().IntVar(&shardSize, "shard-size", 5, "shard size k")
	cmd.Flags().IntVar(&tenants, "tenants", 10, "number of synthetic tenants")
	cmd.Flags().IntVar(&picks, "picks", 100, "picks issued per tenant")

	return cmd
}
