package cmd

import (
	"fmt"
	"os"

	"github.com/Yannari/app-market-analysis/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	anaApplePath  string
	anaGooglePath string
	anaOutputPath string
	anaLimit      int
	anaTopN       int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full cleaning and analysis pipeline over both store exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := pipeline.Options{}
		if cfg != nil {
			opts.ApplePath = cfg.AppleDataset
			opts.GooglePath = cfg.GoogleDataset
			opts.NonASCIILimit = cfg.NonASCIILimit
			opts.TopN = cfg.TopN
		}
		// CLI overrides
		if anaApplePath != "" {
			opts.ApplePath = anaApplePath
		}
		if anaGooglePath != "" {
			opts.GooglePath = anaGooglePath
		}
		if cmd.Flags().Changed("non-ascii-limit") {
			opts.NonASCIILimit = anaLimit
		}
		if cmd.Flags().Changed("top") {
			opts.TopN = anaTopN
		}
		if opts.ApplePath == "" || opts.GooglePath == "" {
			return fmt.Errorf("both dataset paths are required (--apple/--google or config)")
		}

		rep, err := pipeline.Run(opts)
		if err != nil {
			return err
		}
		out := rep.Render()

		if anaOutputPath != "" {
			if err := os.WriteFile(anaOutputPath, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", anaOutputPath)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&anaApplePath, "apple", "", "path to the Apple Store CSV export")
	analyzeCmd.Flags().StringVar(&anaGooglePath, "google", "", "path to the Google Play CSV export")
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "write the report to a file instead of stdout")
	analyzeCmd.Flags().IntVar(&anaLimit, "non-ascii-limit", 0, "non-ASCII code points tolerated by the English heuristic (overrides config)")
	analyzeCmd.Flags().IntVar(&anaTopN, "top", 0, "limit each report table to N entries (0 = all)")
	rootCmd.AddCommand(analyzeCmd)
}
