package model

import "fmt"

// ProcessClass classifies the process involved in a crash or ANR. Values
// mirror the wire schema's enum; out-of-range values from newer writers are
// preserved and rendered distinguishably rather than rejected.
type ProcessClass int32

const (
	ProcessClassUnknown      ProcessClass = 0
	ProcessClassDataApp      ProcessClass = 1
	ProcessClassSystemApp    ProcessClass = 2
	ProcessClassSystemServer ProcessClass = 3
)

func (p ProcessClass) String() string {
	switch p {
	case ProcessClassUnknown:
		return "PROCESS_CLASS_UNKNOWN"
	case ProcessClassDataApp:
		return "DATA_APP"
	case ProcessClassSystemApp:
		return "SYSTEM_APP"
	case ProcessClassSystemServer:
		return "SYSTEM_SERVER"
	}
	return fmt.Sprintf("UNKNOWN_PROCESS_CLASS(%d)", int32(p))
}
