// Package render turns a decoded event log into the line-oriented report
// the CLI prints. The plain-text layout is a compatibility contract: tests
// and downstream tooling assert on it, so changes here are breaking.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/alfredjeanlab/cevlog/internal/model"
)

const rule = 50

// Options controls presentation details that do not change the report's
// content.
type Options struct {
	// Color bolds the type line with ANSI escapes. Leave unset when the
	// output is not a terminal.
	Color bool
}

// Report writes the full report for log to w: banner, per-event blocks in
// log order (subject to filter), and the trailing summary. It returns the
// total number of events in the log, which is also the count the summary
// shows. Rendering never fails on event content; unknown payloads and
// invalid timestamps degrade to placeholder text.
func Report(w io.Writer, log *model.EventLog, filter model.Filter, opts Options) int {
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintln(w, "CRITICAL EVENT STORAGE")
	fmt.Fprintln(w, strings.Repeat("=", rule))
	if log.WindowMS != 0 {
		fmt.Fprintf(w, "Window (ms): %d\n", log.WindowMS)
	}
	if log.Capacity != 0 {
		fmt.Fprintf(w, "Capacity: %d\n", log.Capacity)
	}
	fmt.Fprintf(w, "Events Count: %d\n", len(log.Events))
	fmt.Fprintln(w, strings.Repeat("-", rule))

	if len(log.Events) == 0 {
		fmt.Fprintln(w, "No events found in storage.")
		return 0
	}

	shown := 0
	for i, ev := range log.Events {
		if !filter.Match(ev.Kind()) {
			continue
		}
		// Numbering is the position in the full log; filtering does not
		// renumber.
		fmt.Fprintf(w, "Event #%d:\n", i+1)
		writeEvent(w, ev, opts)
		fmt.Fprintln(w)
		shown++
	}

	if filter != nil && shown == 0 {
		names := make([]string, 0, len(filter))
		for _, k := range filter.Kinds() {
			names = append(names, k.String())
		}
		fmt.Fprintf(w, "No events of type(s) %s found.\n", strings.Join(names, ", "))
	}
	return len(log.Events)
}

func writeEvent(w io.Writer, ev model.Event, opts Options) {
	fmt.Fprintf(w, "  Time: %s (%d ms)\n", FormatTimestamp(ev.TimestampMS), ev.TimestampMS)

	typeLine := func(label string) {
		if opts.Color {
			fmt.Fprintf(w, "  Type: \x1b[1m%s\x1b[0m\n", label)
		} else {
			fmt.Fprintf(w, "  Type: %s\n", label)
		}
	}
	field := func(name, val string) {
		fmt.Fprintf(w, "    %s: %s\n", name, val)
	}

	switch p := ev.Payload.(type) {
	case model.Watchdog:
		typeLine(ev.Kind().Label())
		field("Subject", p.Subject)
		field("UUID", p.UUID)
	case model.HalfWatchdog:
		typeLine(ev.Kind().Label())
		field("Subject", p.Subject)
	case model.ANR:
		typeLine(ev.Kind().Label())
		field("Subject", orNA(p.Subject))
		field("Process", orNA(p.Process))
		field("PID", fmt.Sprintf("%d", p.PID))
		field("UID", fmt.Sprintf("%d", p.UID))
		field("Process Class", p.ProcessClass.String())
	case model.JavaCrash:
		typeLine(ev.Kind().Label())
		field("Exception", orNA(p.ExceptionClass))
		field("Process", orNA(p.Process))
		field("PID", fmt.Sprintf("%d", p.PID))
		field("UID", fmt.Sprintf("%d", p.UID))
		field("Process Class", p.ProcessClass.String())
	case model.NativeCrash:
		typeLine(ev.Kind().Label())
		field("Process", orNA(p.Process))
		field("PID", fmt.Sprintf("%d", p.PID))
		field("UID", fmt.Sprintf("%d", p.UID))
		field("Process Class", p.ProcessClass.String())
	case model.SystemServerStarted, model.InstallPackages:
		typeLine(ev.Kind().Label())
	case model.ExcessiveBinderCalls:
		typeLine(ev.Kind().Label())
		field("UID", fmt.Sprintf("%d", p.UID))
	case model.Unknown:
		typeLine(fmt.Sprintf("Unknown (%d)", p.Tag))
	default:
		typeLine("Unknown (none)")
	}
}

// orNA substitutes the display placeholder for empty optional strings; the
// report never prints an empty value.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
