// Package codec reads and writes the critical_event_log.pb wire format.
//
// The schema (see proto/critical_event_log.proto) is small and fixed, so the
// codec works directly on the protobuf wire format via protowire instead of
// carrying generated message types. Unknown payload tags are preserved as
// raw bytes so a decoded log re-encodes without loss.
package codec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Storage message fields.
const (
	fieldWindowMS = 1
	fieldCapacity = 2
	fieldEvents   = 3
)

// Event message fields. 2..9 form the payload oneof.
const (
	fieldTimestampMS          = 1
	fieldWatchdog             = 2
	fieldHalfWatchdog         = 3
	fieldANR                  = 4
	fieldJavaCrash            = 5
	fieldNativeCrash          = 6
	fieldSystemServerStarted  = 7
	fieldInstallPackages      = 8
	fieldExcessiveBinderCalls = 9
)

// MalformedInputError reports a buffer that does not parse as the event log
// schema. It is distinct from I/O errors at the read boundary: callers
// match it with errors.As to tell corrupt data from an unreadable file.
type MalformedInputError struct {
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed event log: %s: %v", e.Reason, e.Err)
	}
	return "malformed event log: " + e.Reason
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

func malformed(reason string, n int) error {
	return &MalformedInputError{Reason: reason, Err: protowire.ParseError(n)}
}
