package codec

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/alfredjeanlab/cevlog/internal/model"
)

// Decode parses a critical event log storage blob. An empty buffer is a
// valid empty log. Unknown storage fields are skipped; unknown event
// payload tags become model.Unknown with their bytes preserved. The only
// failure mode is *MalformedInputError: wire-level garbage, truncation, or
// a wrong-schema buffer.
func Decode(buf []byte) (*model.EventLog, error) {
	log := &model.EventLog{}
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return nil, malformed("storage field tag", n)
		}
		buf = buf[n:]
		switch {
		case num == fieldWindowMS && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, malformed("window_ms", n)
			}
			log.WindowMS = int64(v)
			buf = buf[n:]
		case num == fieldCapacity && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, malformed("capacity", n)
			}
			log.Capacity = int64(v)
			buf = buf[n:]
		case num == fieldEvents && typ == protowire.BytesType:
			rec, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, malformed("event record", n)
			}
			ev, err := decodeEvent(rec)
			if err != nil {
				return nil, err
			}
			log.Events = append(log.Events, ev)
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return nil, malformed("storage field value", n)
			}
			buf = buf[n:]
		}
	}
	return log, nil
}

func decodeEvent(buf []byte) (model.Event, error) {
	var ev model.Event
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return ev, malformed("event field tag", n)
		}
		buf = buf[n:]

		if num == fieldTimestampMS && typ == protowire.VarintType {
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return ev, malformed("timestamp_ms", n)
			}
			ev.TimestampMS = int64(v)
			buf = buf[n:]
			continue
		}

		if typ != protowire.BytesType {
			// Not a payload submessage; tolerate and skip.
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return ev, malformed("event field value", n)
			}
			buf = buf[n:]
			continue
		}

		body, n := protowire.ConsumeBytes(buf)
		if n < 0 {
			return ev, malformed("event payload", n)
		}
		payload, err := decodePayload(num, body)
		if err != nil {
			return ev, err
		}
		// Oneof semantics: a repeated payload keeps the last occurrence.
		ev.Payload = payload
		buf = buf[n:]
	}
	return ev, nil
}

func decodePayload(num protowire.Number, body []byte) (model.Payload, error) {
	switch num {
	case fieldWatchdog:
		var p model.Watchdog
		err := walkFields(body, func(f protowire.Number, v value) {
			switch f {
			case 1:
				p.Subject = v.str
			case 2:
				p.UUID = v.str
			}
		})
		return p, err
	case fieldHalfWatchdog:
		var p model.HalfWatchdog
		err := walkFields(body, func(f protowire.Number, v value) {
			if f == 1 {
				p.Subject = v.str
			}
		})
		return p, err
	case fieldANR:
		var p model.ANR
		err := walkFields(body, func(f protowire.Number, v value) {
			switch f {
			case 1:
				p.Subject = v.str
			case 2:
				p.Process = v.str
			case 3:
				p.PID = int32(v.num)
			case 4:
				p.UID = int32(v.num)
			case 5:
				p.ProcessClass = model.ProcessClass(v.num)
			}
		})
		return p, err
	case fieldJavaCrash:
		var p model.JavaCrash
		err := walkFields(body, func(f protowire.Number, v value) {
			switch f {
			case 1:
				p.ExceptionClass = v.str
			case 2:
				p.Process = v.str
			case 3:
				p.PID = int32(v.num)
			case 4:
				p.UID = int32(v.num)
			case 5:
				p.ProcessClass = model.ProcessClass(v.num)
			}
		})
		return p, err
	case fieldNativeCrash:
		var p model.NativeCrash
		err := walkFields(body, func(f protowire.Number, v value) {
			switch f {
			case 1:
				p.Process = v.str
			case 2:
				p.PID = int32(v.num)
			case 3:
				p.UID = int32(v.num)
			case 4:
				p.ProcessClass = model.ProcessClass(v.num)
			}
		})
		return p, err
	case fieldSystemServerStarted:
		if err := walkFields(body, nil); err != nil {
			return nil, err
		}
		return model.SystemServerStarted{}, nil
	case fieldInstallPackages:
		if err := walkFields(body, nil); err != nil {
			return nil, err
		}
		return model.InstallPackages{}, nil
	case fieldExcessiveBinderCalls:
		var p model.ExcessiveBinderCalls
		err := walkFields(body, func(f protowire.Number, v value) {
			if f == 1 {
				p.UID = int32(v.num)
			}
		})
		return p, err
	}
	// Forward compatibility: keep the bytes so Encode can replay them.
	raw := make([]byte, len(body))
	copy(raw, body)
	return model.Unknown{Tag: uint32(num), Raw: raw}, nil
}

// value holds one decoded scalar field; str for length-delimited fields,
// num for varints.
type value struct {
	str string
	num uint64
}

// walkFields iterates the fields of a submessage, calling visit for each
// string or varint field. Other wire types and unrecognized fields are
// skipped: enum values outside the known range and empty strings are data,
// not corruption. A nil visit just validates the wire structure.
func walkFields(buf []byte, visit func(protowire.Number, value)) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return malformed("payload field tag", n)
		}
		buf = buf[n:]
		switch typ {
		case protowire.BytesType:
			s, n := protowire.ConsumeString(buf)
			if n < 0 {
				return malformed("payload string field", n)
			}
			if visit != nil {
				visit(num, value{str: s})
			}
			buf = buf[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return malformed("payload varint field", n)
			}
			if visit != nil {
				visit(num, value{num: v})
			}
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return malformed("payload field value", n)
			}
			buf = buf[n:]
		}
	}
	return nil
}
