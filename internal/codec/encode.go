package codec

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/alfredjeanlab/cevlog/internal/model"
)

// Encode serializes a log back to the wire format. Zero-valued scalar
// fields are omitted, so the result is semantically equivalent to (not
// necessarily byte-identical with) the buffer the log was decoded from.
// Unknown payloads are replayed byte for byte under their original tag.
func Encode(log *model.EventLog) []byte {
	var b []byte
	if log == nil {
		return b
	}
	if log.WindowMS != 0 {
		b = protowire.AppendTag(b, fieldWindowMS, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(log.WindowMS))
	}
	if log.Capacity != 0 {
		b = protowire.AppendTag(b, fieldCapacity, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(log.Capacity))
	}
	for _, ev := range log.Events {
		b = protowire.AppendTag(b, fieldEvents, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeEvent(ev))
	}
	return b
}

func encodeEvent(ev model.Event) []byte {
	var b []byte
	if ev.TimestampMS != 0 {
		b = protowire.AppendTag(b, fieldTimestampMS, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(ev.TimestampMS))
	}
	switch p := ev.Payload.(type) {
	case nil:
		// No payload variant; nothing more to write.
	case model.Watchdog:
		var body []byte
		body = appendString(body, 1, p.Subject)
		body = appendString(body, 2, p.UUID)
		b = appendPayload(b, fieldWatchdog, body)
	case model.HalfWatchdog:
		var body []byte
		body = appendString(body, 1, p.Subject)
		b = appendPayload(b, fieldHalfWatchdog, body)
	case model.ANR:
		var body []byte
		body = appendString(body, 1, p.Subject)
		body = appendString(body, 2, p.Process)
		body = appendVarint(body, 3, uint64(p.PID))
		body = appendVarint(body, 4, uint64(p.UID))
		body = appendVarint(body, 5, uint64(p.ProcessClass))
		b = appendPayload(b, fieldANR, body)
	case model.JavaCrash:
		var body []byte
		body = appendString(body, 1, p.ExceptionClass)
		body = appendString(body, 2, p.Process)
		body = appendVarint(body, 3, uint64(p.PID))
		body = appendVarint(body, 4, uint64(p.UID))
		body = appendVarint(body, 5, uint64(p.ProcessClass))
		b = appendPayload(b, fieldJavaCrash, body)
	case model.NativeCrash:
		var body []byte
		body = appendString(body, 1, p.Process)
		body = appendVarint(body, 2, uint64(p.PID))
		body = appendVarint(body, 3, uint64(p.UID))
		body = appendVarint(body, 4, uint64(p.ProcessClass))
		b = appendPayload(b, fieldNativeCrash, body)
	case model.SystemServerStarted:
		b = appendPayload(b, fieldSystemServerStarted, nil)
	case model.InstallPackages:
		b = appendPayload(b, fieldInstallPackages, nil)
	case model.ExcessiveBinderCalls:
		var body []byte
		body = appendVarint(body, 1, uint64(p.UID))
		b = appendPayload(b, fieldExcessiveBinderCalls, body)
	case model.Unknown:
		b = appendPayload(b, protowire.Number(p.Tag), p.Raw)
	}
	return b
}

func appendPayload(b []byte, num protowire.Number, body []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}
