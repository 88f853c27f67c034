package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/doco-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set doco configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("data_dir: %s\n", cfg.DataDir)
		fmt.Printf("snapshot_key: %s\n", cfg.SnapshotKey)
		fmt.Printf("auto_save: %v\n", cfg.AutoSave)
		fmt.Printf("view_mode: %s\n", cfg.ViewMode)
		fmt.Printf("default_color: %s\n", cfg.DefaultColor)
		fmt.Printf("default_thickness: %.1f\n", cfg.DefaultThickness)
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
		case "data_dir":
			cfg.DataDir = val
		case "snapshot_key":
			cfg.SnapshotKey = val
		case "auto_save":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for auto_save: %v", val)
			}
			cfg.AutoSave = b
		case "view_mode":
			if val != "single" && val != "double" {
				return fmt.Errorf("invalid view_mode: %s (use single or double)", val)
			}
			cfg.ViewMode = val
		case "default_color":
			cfg.DefaultColor = val
		case "default_thickness":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for default_thickness: %v", val)
			}
			cfg.DefaultThickness = f
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
