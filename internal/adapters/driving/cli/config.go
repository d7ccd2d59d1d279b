package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hovertip/internal/core/domain"
)

// settingKinds lists the known settings and whether each is a boolean.
var settingKinds = map[string]bool{
	file.KeyVerbose:  true,
	file.KeyPage:     false,
	file.KeyMarkdown: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: `View and change the settings stored in config.toml.

Known keys:
  verbose    log tooltip transitions to stderr (true/false)
  page       page file used when --page is not given
  markdown   render tooltip content as markdown in the tui (true/false)`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		keys := configStore.Keys()
		if len(keys) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No settings configured.")
			return nil
		}
		for _, k := range keys {
			v, _ := configStore.Get(k)
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", k, v)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkSettingKey(args[0]); err != nil {
			return err
		}
		v, ok := configStore.Get(args[0])
		if !ok {
			return fmt.Errorf("setting %q: %w", args[0], domain.ErrNotFound)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, raw := args[0], args[1]
		if err := checkSettingKey(key); err != nil {
			return err
		}

		var value any = raw
		if settingKinds[key] {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, raw)
			}
			value = b
		}

		if err := configStore.Set(key, value); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configStore.Path())
	},
}

func checkSettingKey(key string) error {
	if _, ok := settingKinds[key]; ok {
		return nil
	}
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return fmt.Errorf("%w: unknown setting %q (known: %v)", domain.ErrInvalidInput, key, keys)
}

func init() {
	configCmd.AddCommand(configListCmd, configGetCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
