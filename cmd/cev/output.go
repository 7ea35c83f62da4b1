package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alfredjeanlab/cevlog/internal/model"
)

// printEventsJSON writes the filtered events as a JSON document. The shape
// mirrors what the forward command publishes, so piped output and NATS
// consumers see the same envelopes.
func printEventsJSON(w io.Writer, log *model.EventLog, filter model.Filter) error {
	events := make([]model.Event, 0, len(log.Events))
	for _, ev := range log.Events {
		if filter.Match(ev.Kind()) {
			events = append(events, ev)
		}
	}
	doc := struct {
		WindowMS int64         `json:"window_ms,omitempty"`
		Capacity int64         `json:"capacity,omitempty"`
		Total    int           `json:"total"`
		Events   []model.Event `json:"events"`
	}{
		WindowMS: log.WindowMS,
		Capacity: log.Capacity,
		Total:    len(log.Events),
		Events:   events,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling events: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// filterSummary names the requested kinds for user-facing messages.
func filterSummary(filter model.Filter) string {
	names := make([]string, 0, len(filter))
	for _, k := range filter.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
