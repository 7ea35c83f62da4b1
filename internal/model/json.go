package model

import "encoding/json"

// MarshalJSON emits the event as an envelope with the kind spelled out and
// the payload nested under its kind name, e.g.
//
//	{"timestamp_ms":1700000000000,"kind":"watchdog","watchdog":{...}}
//
// Unknown payloads nest under "unknown" with their tag and raw bytes
// (base64). This is the shape --json output and NATS forwarding share.
func (e Event) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"timestamp_ms": e.TimestampMS,
	}
	switch p := e.Payload.(type) {
	case nil:
		out["kind"] = ""
	case Unknown:
		out["kind"] = "unknown"
		out["unknown"] = p
	default:
		k := e.Kind()
		out["kind"] = k.String()
		out[k.String()] = p
	}
	return json.Marshal(out)
}
