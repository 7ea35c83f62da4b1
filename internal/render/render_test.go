package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alfredjeanlab/cevlog/internal/model"
)

func report(log *model.EventLog, filter model.Filter) string {
	var sb strings.Builder
	Report(&sb, log, filter, Options{})
	return sb.String()
}

func countBlocks(s string) int {
	return strings.Count(s, "Event #")
}

func TestReport_BlockCountMatchesEventCount(t *testing.T) {
	log := &model.EventLog{Events: []model.Event{
		{TimestampMS: 1700000000000, Payload: model.Watchdog{Subject: "a", UUID: "u"}},
		{TimestampMS: 1700000001000, Payload: model.SystemServerStarted{}},
		{TimestampMS: 1700000002000, Payload: model.ExcessiveBinderCalls{UID: 7}},
	}}
	out := report(log, nil)
	if got := countBlocks(out); got != 3 {
		t.Errorf("rendered %d blocks, want 3", got)
	}
	if !strings.Contains(out, "Events Count: 3") {
		t.Errorf("missing count line in:\n%s", out)
	}
}

func TestReport_WatchdogScenario(t *testing.T) {
	log := &model.EventLog{Events: []model.Event{
		{TimestampMS: 1700000000000, Payload: model.Watchdog{Subject: "system_server", UUID: "abc-123"}},
	}}
	out := report(log, nil)

	wantDate := time.UnixMilli(1700000000000).Format("2006-01-02 15:04:05.000")
	for _, want := range []string{
		"Events Count: 1",
		"Event #1:",
		fmt.Sprintf("  Time: %s (1700000000000 ms)", wantDate),
		"  Type: Watchdog",
		"    Subject: system_server",
		"    UUID: abc-123",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReport_EmptyLog(t *testing.T) {
	var sb strings.Builder
	n := Report(&sb, &model.EventLog{}, nil, Options{})
	if n != 0 {
		t.Errorf("Report returned %d, want 0", n)
	}
	out := sb.String()
	if !strings.Contains(out, "Events Count: 0") {
		t.Errorf("missing zero count:\n%s", out)
	}
	if !strings.Contains(out, "No events found in storage.") {
		t.Errorf("missing empty-log line:\n%s", out)
	}
}

func TestReport_FilterSubsetAndTotal(t *testing.T) {
	log := &model.EventLog{Events: []model.Event{
		{TimestampMS: 1700000000000, Payload: model.ANR{Process: "com.a", PID: 1, UID: 2}},
		{TimestampMS: 1700000001000, Payload: model.JavaCrash{Process: "com.b", PID: 3, UID: 4}},
	}}
	var sb strings.Builder
	n := Report(&sb, log, model.ParseFilter("java_crash"), Options{})
	out := sb.String()

	if n != 2 {
		t.Errorf("Report returned %d, want total 2", n)
	}
	if got := countBlocks(out); got != 1 {
		t.Errorf("rendered %d blocks, want 1", got)
	}
	if !strings.Contains(out, "  Type: Java Crash") {
		t.Errorf("crash block missing:\n%s", out)
	}
	if strings.Contains(out, "App Not Responding") {
		t.Errorf("anr should be filtered out:\n%s", out)
	}
	// Numbering keeps the event's position in the full log.
	if !strings.Contains(out, "Event #2:") {
		t.Errorf("expected original numbering:\n%s", out)
	}
	if !strings.Contains(out, "Events Count: 2") {
		t.Errorf("summary must reflect the full log:\n%s", out)
	}
}

func TestReport_FilterOrderPreserved(t *testing.T) {
	log := &model.EventLog{Events: []model.Event{
		{TimestampMS: 1, Payload: model.Watchdog{Subject: "w1", UUID: "u1"}},
		{TimestampMS: 2, Payload: model.SystemServerStarted{}},
		{TimestampMS: 3, Payload: model.Watchdog{Subject: "w2", UUID: "u2"}},
	}}
	out := report(log, model.ParseFilter("watchdog"))
	first := strings.Index(out, "    Subject: w1")
	second := strings.Index(out, "    Subject: w2")
	if first < 0 || second < 0 || first > second {
		t.Errorf("filtered events out of order:\n%s", out)
	}
}

func TestReport_FilterNoMatches(t *testing.T) {
	log := &model.EventLog{Events: []model.Event{
		{TimestampMS: 1, Payload: model.SystemServerStarted{}},
	}}
	out := report(log, model.ParseFilter("watchdog,anr"))
	if got := countBlocks(out); got != 0 {
		t.Errorf("rendered %d blocks, want 0", got)
	}
	if !strings.Contains(out, "No events of type(s) anr, watchdog found.") {
		t.Errorf("missing no-match summary:\n%s", out)
	}
}

func TestReport_UnknownTagDoesNotAbort(t *testing.T) {
	log := &model.EventLog{Events: []model.Event{
		{TimestampMS: 1, Payload: model.Unknown{Tag: 14, Raw: []byte{0x08, 0x01}}},
		{TimestampMS: 2, Payload: model.InstallPackages{}},
	}}
	out := report(log, nil)
	if !strings.Contains(out, "  Type: Unknown (14)") {
		t.Errorf("missing unknown type line:\n%s", out)
	}
	if !strings.Contains(out, "  Type: Install Packages") {
		t.Errorf("event after unknown not rendered:\n%s", out)
	}
}

func TestReport_UnknownNeverMatchesKnownFilter(t *testing.T) {
	log := &model.EventLog{Events: []model.Event{
		{TimestampMS: 1, Payload: model.Unknown{Tag: 14}},
	}}
	out := report(log, model.ParseFilter("watchdog"))
	if got := countBlocks(out); got != 0 {
		t.Errorf("unknown payload matched a known-kind filter:\n%s", out)
	}
}

func TestReport_OptionalFieldPlaceholders(t *testing.T) {
	log := &model.EventLog{Events: []model.Event{
		{TimestampMS: 1, Payload: model.ANR{PID: 5, UID: 6, ProcessClass: model.ProcessClass(9)}},
	}}
	out := report(log, nil)
	for _, want := range []string{
		"    Subject: N/A",
		"    Process: N/A",
		"    PID: 5",
		"    UID: 6",
		"    Process Class: UNKNOWN_PROCESS_CLASS(9)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReport_Idempotent(t *testing.T) {
	log := &model.EventLog{Events: []model.Event{
		{TimestampMS: 1700000000000, Payload: model.JavaCrash{ExceptionClass: "E", PID: 1}},
		{TimestampMS: 0, Payload: model.HalfWatchdog{Subject: "s"}},
	}}
	f := model.ParseFilter("java_crash,half_watchdog")
	if a, b := report(log, f), report(log, f); a != b {
		t.Errorf("rendering is not idempotent:\n%s\n---\n%s", a, b)
	}
}

func TestFormatTimestamp(t *testing.T) {
	for _, tc := range []struct {
		ms   int64
		want string
	}{
		{0, "Invalid timestamp"},
		{-1000, "Invalid timestamp"},
		{1700000000000, time.UnixMilli(1700000000000).Format("2006-01-02 15:04:05.000")},
		{1000000000000000, "Invalid timestamp: 1000000000000000"},
	} {
		if got := FormatTimestamp(tc.ms); got != tc.want {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}
