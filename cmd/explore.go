package cmd

import (
	"fmt"
	"strings"

	"github.com/Yannari/app-market-analysis/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	expStart int
	expEnd   int
	expShape bool
)

var exploreCmd = &cobra.Command{
	Use:   "explore <file>",
	Short: "Print a slice of a dataset for eyeballing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Header: %s\n", strings.Join(ds.Header, " | "))
		for _, row := range ds.Slice(expStart, expEnd) {
			fmt.Println(strings.Join(row, " | "))
		}
		if expShape {
			fmt.Printf("Number of rows: %d\n", ds.Len())
			if ds.Len() > 0 {
				fmt.Printf("Number of columns: %d\n", len(ds.Rows[0]))
			}
		}
		return nil
	},
}

func init() {
	exploreCmd.Flags().IntVar(&expStart, "start", 0, "first row index to print (inclusive)")
	exploreCmd.Flags().IntVar(&expEnd, "end", 5, "row index to stop at (exclusive)")
	exploreCmd.Flags().BoolVar(&expShape, "shape", false, "also print row and column counts")
	rootCmd.AddCommand(exploreCmd)
}
