package model

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies which payload variant an event carries. The string values
// match the oneof field names in the wire schema and are what users pass to
// --event-types.
type Kind string

const (
	KindWatchdog             Kind = "watchdog"
	KindHalfWatchdog         Kind = "half_watchdog"
	KindANR                  Kind = "anr"
	KindJavaCrash            Kind = "java_crash"
	KindNativeCrash          Kind = "native_crash"
	KindSystemServerStarted  Kind = "system_server_started"
	KindInstallPackages      Kind = "install_packages"
	KindExcessiveBinderCalls Kind = "excessive_binder_calls"
)

// unknownKind names an unrecognized payload tag. It is deliberately not in
// the valid set, so filters for known kinds can never match it.
func unknownKind(tag uint32) Kind {
	return Kind(fmt.Sprintf("unknown(%d)", tag))
}

func (k Kind) String() string { return string(k) }

// IsValid reports whether k is one of the known variant kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindWatchdog, KindHalfWatchdog, KindANR, KindJavaCrash,
		KindNativeCrash, KindSystemServerStarted, KindInstallPackages,
		KindExcessiveBinderCalls:
		return true
	}
	return false
}

// Label is the human-readable type name used in rendered output.
func (k Kind) Label() string {
	switch k {
	case KindWatchdog:
		return "Watchdog"
	case KindHalfWatchdog:
		return "Half Watchdog"
	case KindANR:
		return "App Not Responding (ANR)"
	case KindJavaCrash:
		return "Java Crash"
	case KindNativeCrash:
		return "Native Crash"
	case KindSystemServerStarted:
		return "System Server Started"
	case KindInstallPackages:
		return "Install Packages"
	case KindExcessiveBinderCalls:
		return "Excessive Binder Calls"
	}
	return string(k)
}

// Filter is a set of kind names. A nil Filter matches everything. Unknown
// names are kept as given; they simply never match an event.
type Filter map[Kind]struct{}

// ParseFilter builds a Filter from a comma-separated list of kind names.
// Empty input yields a nil filter (no filtering). Whitespace around names
// is trimmed; empty entries are dropped.
func ParseFilter(list string) Filter {
	var f Filter
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if f == nil {
			f = Filter{}
		}
		f[Kind(name)] = struct{}{}
	}
	return f
}

// Match reports whether an event of the given kind passes the filter.
func (f Filter) Match(k Kind) bool {
	if f == nil {
		return true
	}
	_, ok := f[k]
	return ok
}

// Kinds returns the filter entries sorted for stable display.
func (f Filter) Kinds() []Kind {
	out := make([]Kind, 0, len(f))
	for k := range f {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
