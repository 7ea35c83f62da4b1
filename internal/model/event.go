package model

// EventLog is one decoded critical_event_log.pb storage blob. Events are in
// log order, oldest first. WindowMS and Capacity come from the storage
// header; zero means the writer did not record them.
type EventLog struct {
	WindowMS int64
	Capacity int64
	Events   []Event
}

// Event is a single record in the log: a timestamp plus exactly one payload
// variant. TimestampMS values <= 0 occur in real logs and are displayed as
// invalid rather than rejected.
type Event struct {
	TimestampMS int64
	Payload     Payload
}

// Kind returns the variant kind of the event's payload, or an empty Kind
// when the payload is nil.
func (e Event) Kind() Kind {
	if e.Payload == nil {
		return Kind("")
	}
	return e.Payload.kind()
}

// Payload is the closed set of event variants. Exactly one payload is
// populated per event; the decoder picks the variant from the wire tag, so
// there is no field-presence guessing.
type Payload interface {
	kind() Kind
}

// Watchdog is a full system watchdog reset.
type Watchdog struct {
	Subject string `json:"subject"`
	UUID    string `json:"uuid"`
}

// HalfWatchdog is a watchdog that fired at half its timeout.
type HalfWatchdog struct {
	Subject string `json:"subject"`
}

// ANR is an application-not-responding event.
type ANR struct {
	Subject      string       `json:"subject,omitempty"`
	Process      string       `json:"process,omitempty"`
	PID          int32        `json:"pid"`
	UID          int32        `json:"uid"`
	ProcessClass ProcessClass `json:"process_class"`
}

// JavaCrash is an uncaught Java exception.
type JavaCrash struct {
	ExceptionClass string       `json:"exception_class,omitempty"`
	Process        string       `json:"process,omitempty"`
	PID            int32        `json:"pid"`
	UID            int32        `json:"uid"`
	ProcessClass   ProcessClass `json:"process_class"`
}

// NativeCrash is a native process crash.
type NativeCrash struct {
	Process      string       `json:"process,omitempty"`
	PID          int32        `json:"pid"`
	UID          int32        `json:"uid"`
	ProcessClass ProcessClass `json:"process_class"`
}

// SystemServerStarted marks a system_server boot.
type SystemServerStarted struct{}

// InstallPackages marks a package-install burst.
type InstallPackages struct{}

// ExcessiveBinderCalls flags a UID making an abnormal volume of binder
// calls.
type ExcessiveBinderCalls struct {
	UID int32 `json:"uid"`
}

// Unknown carries a payload whose wire tag is outside the known set. Raw
// holds the undecoded payload bytes so the event re-encodes losslessly.
// Its kind names the raw tag and never matches a filter entry for a known
// kind.
type Unknown struct {
	Tag uint32 `json:"tag"`
	Raw []byte `json:"raw,omitempty"`
}

func (Watchdog) kind() Kind             { return KindWatchdog }
func (HalfWatchdog) kind() Kind         { return KindHalfWatchdog }
func (ANR) kind() Kind                  { return KindANR }
func (JavaCrash) kind() Kind            { return KindJavaCrash }
func (NativeCrash) kind() Kind          { return KindNativeCrash }
func (SystemServerStarted) kind() Kind  { return KindSystemServerStarted }
func (InstallPackages) kind() Kind      { return KindInstallPackages }
func (ExcessiveBinderCalls) kind() Kind { return KindExcessiveBinderCalls }

func (u Unknown) kind() Kind { return unknownKind(u.Tag) }
