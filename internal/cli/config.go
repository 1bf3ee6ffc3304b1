package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/trisieve/internal/config"
	"github.com/dshills/trisieve/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage trisieve configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Config file already exists at %s\n", path)
			return nil
		}

		cfg := config.Default()
		if err := config.Save(cfg); err != nil {
			return &runtimeError{fmt.Errorf("writing config: %w", err)}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Config file created at %s\n", path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// A missing file loads as the defaults; a broken one must not be
		// overwritten.
		cfg, err := config.LoadFile()
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}

		if err := config.SetField(&cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := validateConfig(cfg); err != nil {
			return err
		}

		if err := config.Save(cfg); err != nil {
			return &runtimeError{fmt.Errorf("saving config: %w", err)}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}
		if err := validateConfig(cfg); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

// validateConfig rejects values that would only fail later, when a command
// uses them.
func validateConfig(cfg config.Config) error {
	if _, err := output.GetWriter(cfg.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if cfg.MaxSieveLimit < 2 {
		return fmt.Errorf("maxSieveLimit must be at least 2, got %d", cfg.MaxSieveLimit)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
}
