package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/magic-tree/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change player settings",
	Long: `Show or change the player settings saved between sessions.

Keys:
  ` + strings.Join(settings.Keys(), ", ") + `

Volumes are numbers from 0 to 1. Switches accept on/off, true/false,
yes/no or 1/0.

Examples:
  magictree settings show
  magictree settings set music_volume 0.4
  magictree settings set bell on
  magictree settings reset`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved settings",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		m := openSettings()
		data, err := yaml.Marshal(m.Get())
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		if !m.Persistent() {
			fmt.Fprintln(os.Stderr, "Warning: settings storage is unavailable; showing defaults")
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		m := openSettings()
		if err := m.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := saveSettings(m); err != nil {
			return err
		}
		fmt.Printf("%s updated\n", args[0])
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		m := openSettings()
		m.Reset()
		if err := saveSettings(m); err != nil {
			return err
		}
		fmt.Println("Settings restored to defaults")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func openSettings() *settings.Manager {
	return settings.Open(newLogger(os.Stderr))
}

// errNoSettingsStorage is returned when a change cannot be persisted.
var errNoSettingsStorage = errors.New("settings storage is unavailable")

func saveSettings(m *settings.Manager) error {
	if !m.Persistent() {
		return errNoSettingsStorage
	}
	return m.Save()
}
