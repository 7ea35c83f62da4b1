package main

import (
	"testing"
)

func TestDevicesConfig_SaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	in := DevicesConfig{
		Active: "bench",
		Devices: map[string]Profile{
			"bench":  {Serial: "R58M123ABC", RemotePath: "/data/misc/critical-events/critical_event_log.pb", EventTypes: "anr,java_crash"},
			"pocket": {Serial: "emulator-5554"},
		},
	}
	if err := saveDevicesConfig(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := loadDevicesConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Active != "bench" {
		t.Errorf("Active = %q, want %q", got.Active, "bench")
	}
	bench := got.Devices["bench"]
	if bench.Serial != "R58M123ABC" || bench.EventTypes != "anr,java_crash" {
		t.Errorf("bench profile = %+v, wrong values", bench)
	}
	if got.Devices == nil {
		t.Error("Devices map must not be nil after load")
	}
}

func TestLoadDevicesConfig_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dc, err := loadDevicesConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dc.Active != "" || len(dc.Devices) != 0 {
		t.Errorf("expected empty config, got %+v", dc)
	}
}
