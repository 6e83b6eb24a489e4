package main

import (
	"fmt"
	"math/rand"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vhive-serverless/sortbench/pkg/sorting"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available sorting algorithms",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "KEY\tNAME\tIN PLACE")
		for _, a := range sorting.Registry(rand.New(rand.NewSource(1))) {
			fmt.Fprintf(w, "%s\t%s\t%t\n", a.Key, a.Name, a.InPlace)
		}
		return w.Flush()
	},
}
