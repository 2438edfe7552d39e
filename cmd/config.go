package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/Yannari/app-market-analysis/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set appmarket configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("apple_dataset: %s\n", cfg.AppleDataset)
		fmt.Printf("google_dataset: %s\n", cfg.GoogleDataset)
		fmt.Printf("non_ascii_limit: %d\n", cfg.NonASCIILimit)
		fmt.Printf("top_n: %d\n", cfg.TopN)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "apple_dataset":
			cfg.AppleDataset = val
		case "google_dataset":
			cfg.GoogleDataset = val
		case "non_ascii_limit":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid non_ascii_limit: %s", val)
			}
			cfg.NonASCIILimit = n
		case "top_n":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid top_n: %s", val)
			}
			cfg.TopN = n
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
