package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/cevlog/internal/codec"
	"github.com/alfredjeanlab/cevlog/internal/forward"
	"github.com/alfredjeanlab/cevlog/internal/model"
)

var forwardNATSURL string

var forwardCmd = &cobra.Command{
	Use:   "forward [file]",
	Short: "Publish decoded events to NATS for downstream monitoring",
	Long: `forward decodes a log and publishes each event as JSON to
` + forward.SubjectPrefix + `.<kind>. Use --event-types to forward a subset.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if forwardNATSURL == "" {
			return fmt.Errorf("no NATS URL: pass --nats-url or set CEV_NATS_URL")
		}

		buf, label, err := loadBuffer(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reading %d bytes from %s\n", len(buf), label)

		log, err := codec.Decode(buf)
		if err != nil {
			return err
		}

		pub, err := forward.NewPublisher(forwardNATSURL)
		if err != nil {
			return err
		}
		defer pub.Close()

		filter := model.ParseFilter(eventTypes)
		sent := 0
		for _, ev := range log.Events {
			if !filter.Match(ev.Kind()) {
				continue
			}
			if err := pub.Publish(cmd.Context(), ev); err != nil {
				return fmt.Errorf("publishing event: %w", err)
			}
			sent++
		}
		if err := pub.Flush(); err != nil {
			return fmt.Errorf("flushing publisher: %w", err)
		}

		if filter != nil && sent == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No events of type(s) %s forwarded.\n", filterSummary(filter))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Forwarded %d of %d events to %s\n",
			sent, len(log.Events), forwardNATSURL)
		return nil
	},
}

func init() {
	forwardCmd.Flags().StringVar(&forwardNATSURL, "nats-url", cfg.NATSURL, "NATS server URL")
}
