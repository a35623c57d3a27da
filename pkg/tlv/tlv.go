// Package tlv implements the (code, length, value) triple codec
// shared by every option-list and tagged-element protocol extension:
// DHCP options, 802.11 tagged elements, and — mechanically, by the
// same machinery — DHCPv6 and ICMP extensions. Two termination modes
// are supported: a sentinel code (DHCP's END=255, with an optional PAD
// code to skip and collapse on re-serialize), or plain buffer
// exhaustion (802.11 tagged elements have no end sentinel at all).
package tlv

import "github.com/adriancostin6/libtins/pkg/pdu"

// Entry is a single (code, value) pair. Length is always
// len(Value) and is never stored separately — storing it would let it
// drift from the slice it describes.
type Entry struct {
	Code  uint8
	Value []byte
}

// Codec parses and serializes a sequence of Entry values against a
// particular protocol's termination convention.
type Codec struct {
	// EndCode, if non-nil, is the sentinel code that terminates the
	// list on parse and is appended exactly once on serialize. nil means
	// the list runs to the end of the buffer (802.11 tagged elements).
	EndCode *uint8

	// PadCode, if non-nil, is skipped on parse (contributes no Entry)
	// and is never re-emitted as padding on serialize: an all-pad tail
	// collapses to a single EndCode.
	PadCode *uint8
}

// Parse reads (code, length, value) triples from buf until EndCode is
// seen (sentinel mode) or buf is exhausted (buffer-exhaustion mode).
// It returns the entries in insertion order and the number of bytes
// consumed, including the sentinel byte if one was seen.
func (c Codec) Parse(buf []byte) ([]Entry, int, error) {
	var entries []Entry
	i := 0
	for i < len(buf) {
		code := buf[i]

		if c.PadCode != nil && code == *c.PadCode {
			i++
			continue
		}
		if c.EndCode != nil && code == *c.EndCode {
			i++
			return entries, i, nil
		}

		if i+1 >= len(buf) {
			return nil, 0, pdu.ErrTruncatedOption
		}
		length := int(buf[i+1])
		valueStart := i + 2
		if valueStart+length > len(buf) {
			return nil, 0, pdu.ErrTruncatedOption
		}

		value := make([]byte, length)
		copy(value, buf[valueStart:valueStart+length])
		entries = append(entries, Entry{Code: code, Value: value})

		i = valueStart + length
	}
	if c.EndCode != nil {
		// buffer exhausted without seeing the sentinel: still well
		// formed for a truncated capture. The return values do not say
		// whether the sentinel was seen.
		return entries, i, nil
	}
	return entries, i, nil
}

// Serialize writes entries in insertion order, followed by EndCode
// exactly once if the codec has one. It never emits PadCode bytes —
// collapsing any padding that existed in the original capture.
func (c Codec) Serialize(entries []Entry) []byte {
	size := 0
	for _, e := range entries {
		size += 2 + len(e.Value)
	}
	if c.EndCode != nil {
		size++
	}

	buf := make([]byte, 0, size)
	for _, e := range entries {
		buf = append(buf, e.Code, uint8(len(e.Value)))
		buf = append(buf, e.Value...)
	}
	if c.EndCode != nil {
		buf = append(buf, *c.EndCode)
	}
	return buf
}

// First returns the first entry with the given code, mirroring the
// load-bearing "first match wins" convention option lists follow:
// RFC 2131 permits duplicate options but readers use the first.
func First(entries []Entry, code uint8) (Entry, bool) {
	for _, e := range entries {
		if e.Code == code {
			return e, true
		}
	}
	return Entry{}, false
}
