package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/vhive-serverless/sortbench/pkg/common"
	mc "github.com/vhive-serverless/sortbench/pkg/metric"
)

// PrintTransposed writes the table with one line per algorithm and one
// column per input size.
func PrintTransposed(w io.Writer, table *mc.ResultsTable) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "Size\t")
	for _, row := range table.Rows {
		fmt.Fprintf(tw, "%d\t", row.Size)
	}
	fmt.Fprintln(tw)

	for i, algorithm := range table.Algorithms {
		fmt.Fprintf(tw, "%s\t", algorithm)
		for _, row := range table.Rows {
			fmt.Fprintf(tw, "%s\t", strconv.FormatFloat(row.Means[i], 'f', common.ResultPrecision, 64))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
