package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListPickersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-pickers",
		Short: "List the available picker algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range pickers {
				fmt.Printf("%-20s %s\n", p.name, p.description)
			}
			return nil
		},
	}
}
