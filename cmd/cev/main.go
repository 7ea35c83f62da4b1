// cev reads the on-device critical event log (critical_event_log.pb) and
// prints it as a human-readable report, either from a local file, straight
// off a device via adb, or from an S3 archive.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/cevlog/internal/codec"
	"github.com/alfredjeanlab/cevlog/internal/config"
	"github.com/alfredjeanlab/cevlog/internal/model"
	"github.com/alfredjeanlab/cevlog/internal/render"
	"github.com/alfredjeanlab/cevlog/internal/source"
	"github.com/alfredjeanlab/cevlog/internal/ui"
)

var (
	cfg = config.Load()

	eventTypes string
	jsonOutput bool
	s3Spec     string
)

var rootCmd = &cobra.Command{
	Use:   "cev [file]",
	Short: "Read and display critical device event logs",
	Long: `cev decodes a critical_event_log.pb blob and prints its events as a
structured report. Events can be filtered by kind with --event-types, e.g.
--event-types anr,java_crash. Unknown kinds in the filter are accepted and
match nothing.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, label, err := loadBuffer(cmd, args)
		if err != nil {
			return err
		}
		return report(cmd, buf, label)
	},
}

// loadBuffer resolves the input bytes from the positional file path, the
// --s3 flag, or the CEV_S3_BUCKET/CEV_S3_KEY defaults.
func loadBuffer(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if spec := s3SpecOrDefault(args); spec != "" {
		if len(args) > 0 {
			return nil, "", fmt.Errorf("--s3 and a file argument are mutually exclusive")
		}
		buf, err := fetchS3(cmd, spec)
		if err != nil {
			return nil, "", err
		}
		return buf, "s3://" + spec, nil
	}
	if len(args) == 0 {
		return nil, "", fmt.Errorf("no input: pass a file path, --s3 bucket/key, or set CEV_S3_BUCKET and CEV_S3_KEY")
	}
	buf, err := source.ReadFile(args[0])
	if err != nil {
		return nil, "", err
	}
	return buf, args[0], nil
}

// report decodes and renders one buffer. The "Reading N bytes" notice
// always precedes a decode failure, so truncated pulls are diagnosable.
func report(cmd *cobra.Command, buf []byte, label string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Reading %d bytes from %s\n", len(buf), label)

	log, err := codec.Decode(buf)
	if err != nil {
		return err
	}

	filter := model.ParseFilter(eventTypes)
	if jsonOutput {
		return printEventsJSON(out, log, filter)
	}
	n := render.Report(out, log, filter, render.Options{Color: ui.ShouldUseColor()})
	slog.Debug("report rendered", "source", label, "events", n)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&eventTypes, "event-types", "",
		"comma-separated event kinds to show (e.g. anr,java_crash)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output events as JSON")
	rootCmd.PersistentFlags().StringVar(&s3Spec, "s3", "",
		"read the log from S3 as bucket/key instead of a local file")

	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(forwardCmd)
	rootCmd.AddCommand(devicesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
