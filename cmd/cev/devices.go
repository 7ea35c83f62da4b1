package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// DevicesConfig holds all named device profiles and tracks which one is
// active. The active profile supplies defaults for cev pull.
type DevicesConfig struct {
	Active  string             `toml:"active"`
	Devices map[string]Profile `toml:"devices"`
}

// Profile is a named device.
type Profile struct {
	Serial     string `toml:"serial"`
	RemotePath string `toml:"remote_path,omitempty"`
	EventTypes string `toml:"event_types,omitempty"`
}

func devicesConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "cev")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "devices.toml"), nil
}

func loadDevicesConfig() (DevicesConfig, error) {
	path, err := devicesConfigPath()
	if err != nil {
		return DevicesConfig{}, err
	}
	var dc DevicesConfig
	if _, err := toml.DecodeFile(path, &dc); err != nil {
		if os.IsNotExist(err) {
			return DevicesConfig{Devices: map[string]Profile{}}, nil
		}
		return DevicesConfig{}, err
	}
	if dc.Devices == nil {
		dc.Devices = map[string]Profile{}
	}
	return dc, nil
}

func saveDevicesConfig(dc DevicesConfig) error {
	path, err := devicesConfigPath()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(dc)
}

// Cached active profile, loaded once per process.
var (
	profileOnce   sync.Once
	cachedProfile *Profile
)

func activeProfile() *Profile {
	profileOnce.Do(func() {
		dc, err := loadDevicesConfig()
		if err != nil || dc.Active == "" {
			return
		}
		if p, ok := dc.Devices[dc.Active]; ok {
			cachedProfile = &p
		}
	})
	return cachedProfile
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Manage named device profiles for cev pull",
}

var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List device profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := loadDevicesConfig()
		if err != nil {
			return err
		}
		if len(dc.Devices) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No device profiles configured.")
			return nil
		}
		names := make([]string, 0, len(dc.Devices))
		for name := range dc.Devices {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSERIAL\tREMOTE PATH\tEVENT TYPES")
		for _, name := range names {
			p := dc.Devices[name]
			marker := ""
			if name == dc.Active {
				marker = "*"
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", name, marker, p.Serial, p.RemotePath, p.EventTypes)
		}
		return w.Flush()
	},
}

var (
	addSerial     string
	addRemote     string
	addEventTypes string
)

var devicesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or update a device profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addSerial == "" {
			return fmt.Errorf("--serial is required")
		}
		dc, err := loadDevicesConfig()
		if err != nil {
			return err
		}
		dc.Devices[args[0]] = Profile{
			Serial:     addSerial,
			RemotePath: addRemote,
			EventTypes: addEventTypes,
		}
		if dc.Active == "" {
			dc.Active = args[0]
		}
		if err := saveDevicesConfig(dc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %q\n", args[0])
		return nil
	},
}

var devicesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a device profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := loadDevicesConfig()
		if err != nil {
			return err
		}
		if _, ok := dc.Devices[args[0]]; !ok {
			return fmt.Errorf("no profile named %q", args[0])
		}
		delete(dc.Devices, args[0])
		if dc.Active == args[0] {
			dc.Active = ""
		}
		return saveDevicesConfig(dc)
	},
}

var devicesUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active device profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := loadDevicesConfig()
		if err != nil {
			return err
		}
		if _, ok := dc.Devices[args[0]]; !ok {
			return fmt.Errorf("no profile named %q", args[0])
		}
		dc.Active = args[0]
		return saveDevicesConfig(dc)
	},
}

func init() {
	devicesAddCmd.Flags().StringVar(&addSerial, "serial", "", "device serial (required)")
	devicesAddCmd.Flags().StringVar(&addRemote, "remote", "", "on-device log path override")
	devicesAddCmd.Flags().StringVar(&addEventTypes, "event-types", "", "default kind filter for this device")

	devicesCmd.AddCommand(devicesListCmd)
	devicesCmd.AddCommand(devicesAddCmd)
	devicesCmd.AddCommand(devicesRemoveCmd)
	devicesCmd.AddCommand(devicesUseCmd)
}
