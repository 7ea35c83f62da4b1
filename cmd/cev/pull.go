package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/cevlog/internal/source"
)

var (
	pullDevice string
	pullRemote string
	pullKeep   bool
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull the log from a connected device via adb and display it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		adb := source.ADB{
			Path:       cfg.ADBPath,
			Serial:     pullDevice,
			RemotePath: pullRemote,
		}
		if prof := activeProfile(); prof != nil {
			if adb.Serial == "" {
				adb.Serial = prof.Serial
			}
			if adb.RemotePath == "" {
				adb.RemotePath = prof.RemotePath
			}
			if eventTypes == "" {
				eventTypes = prof.EventTypes
			}
		}
		if adb.RemotePath == "" {
			adb.RemotePath = cfg.RemotePath
		}

		local, cleanup, err := adb.Pull(cmd.Context())
		if err != nil {
			return err
		}
		if pullKeep {
			defer fmt.Fprintf(cmd.OutOrStdout(), "Pulled log kept at %s\n", local)
		} else {
			defer cleanup()
		}

		buf, err := source.ReadFile(local)
		if err != nil {
			return err
		}
		return report(cmd, buf, local)
	},
}

func init() {
	pullCmd.Flags().StringVar(&pullDevice, "device", "", "device serial for adb -s")
	pullCmd.Flags().StringVar(&pullRemote, "remote", "",
		"on-device log path (default "+source.DefaultRemotePath+")")
	pullCmd.Flags().BoolVar(&pullKeep, "keep", false, "keep the pulled temp file")
}
