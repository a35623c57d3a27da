// Package options implements the option-list codec of spec.md §4.3:
// a (code, length, value) list terminated by a sentinel end code, with
// an optional pad code skipped on parse and collapsed on serialize.
// DHCP is the protocol detailed in this spec; the same List type
// mechanically serves any other sentinel-terminated option protocol
// (DHCPv6, ICMP extensions) by choosing different End/Pad codes and a
// different MaxSize.
package options

import (
	"encoding/binary"
	"net"

	"github.com/adriancostin6/libtins/pkg/pdu"
	"github.com/adriancostin6/libtins/pkg/tlv"
)

// List holds a protocol's option area: an ordered sequence of entries
// plus the codec describing how to terminate and bound it.
type List struct {
	codec    tlv.Codec
	entries  []tlv.Entry
	maxBytes int // 0 = unbounded; total serialized option-area bytes, sentinel included
}

// New builds an empty option list. endCode/padCode follow tlv.Codec's
// convention (nil disables that sentinel). maxBytes bounds the total
// serialized size of the option area; 0 means unbounded.
func New(endCode, padCode *uint8, maxBytes int) *List {
	return &List{
		codec:    tlv.Codec{EndCode: endCode, PadCode: padCode},
		maxBytes: maxBytes,
	}
}

// NewDHCP builds the option list used by BOOTP/DHCP: END=255, PAD=0,
// bounded to 312 bytes, the options field left over once the 20-byte
// IPv4 header, 8-byte UDP header and BOOTP's 236-byte fixed header are
// subtracted from the RFC 2131 576-byte minimum datagram. The 4-byte
// magic cookie is written by the DHCP PDU and is not counted here.
func NewDHCP() *List {
	end, pad := uint8(255), uint8(0)
	return New(&end, &pad, 312)
}

// Parse replaces the list's contents with the entries decoded from
// buf and returns the number of bytes consumed.
func (l *List) Parse(buf []byte) (int, error) {
	entries, n, err := l.codec.Parse(buf)
	if err != nil {
		return 0, err
	}
	l.entries = entries
	return n, nil
}

// Serialize writes the option area: entries in insertion order, then
// the end sentinel exactly once (if the list has one).
func (l *List) Serialize() []byte {
	return l.codec.Serialize(l.entries)
}

// Entries returns the list's entries in insertion order. The returned
// slice must not be mutated by the caller.
func (l *List) Entries() []tlv.Entry {
	return l.entries
}

// Get returns the first entry with the given code, implementing the
// load-bearing first-match lookup convention (§4.3, §8).
func (l *List) Get(code uint8) (tlv.Entry, bool) {
	return tlv.First(l.entries, code)
}

// Add appends a new option to the end of the list without deduping.
// It fails with ErrOptionTooLarge if value is longer than 255 bytes or
// if appending it would push the option area past maxBytes.
func (l *List) Add(code uint8, value []byte) error {
	if len(value) > 255 {
		return pdu.ErrOptionTooLarge
	}
	if l.maxBytes > 0 {
		projected := l.serializedSize() + 2 + len(value)
		if projected > l.maxBytes {
			return pdu.ErrOptionTooLarge
		}
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	l.entries = append(l.entries, tlv.Entry{Code: code, Value: stored})
	return nil
}

func (l *List) serializedSize() int {
	size := 0
	if l.codec.EndCode != nil {
		size++
	}
	for _, e := range l.entries {
		size += 2 + len(e.Value)
	}
	return size
}

// Clone returns a deep copy: every entry's value is duplicated and the
// copy is fully independent of l.
func (l *List) Clone() *List {
	out := &List{codec: l.codec, maxBytes: l.maxBytes}
	out.entries = make([]tlv.Entry, len(l.entries))
	for i, e := range l.entries {
		v := make([]byte, len(e.Value))
		copy(v, e.Value)
		out.entries[i] = tlv.Entry{Code: e.Code, Value: v}
	}
	return out
}

// --- typed scalar/list/string accessors, shared by every option-bearing protocol ---

// Byte returns a 1-byte option's value, or ErrNotFound if code is
// absent.
func Byte(l *List, code uint8) (uint8, error) {
	e, ok := l.Get(code)
	if !ok {
		return 0, pdu.ErrNotFound
	}
	if len(e.Value) != 1 {
		return 0, pdu.ErrMalformedOption
	}
	return e.Value[0], nil
}

// Uint16 returns a 2-byte big-endian option's value, or ErrNotFound if
// code is absent.
func Uint16(l *List, code uint8) (uint16, error) {
	e, ok := l.Get(code)
	if !ok {
		return 0, pdu.ErrNotFound
	}
	if len(e.Value) != 2 {
		return 0, pdu.ErrMalformedOption
	}
	return binary.BigEndian.Uint16(e.Value), nil
}

// Uint32 returns a 4-byte big-endian option's value, or ErrNotFound if
// code is absent.
func Uint32(l *List, code uint8) (uint32, error) {
	e, ok := l.Get(code)
	if !ok {
		return 0, pdu.ErrNotFound
	}
	if len(e.Value) != 4 {
		return 0, pdu.ErrMalformedOption
	}
	return binary.BigEndian.Uint32(e.Value), nil
}

// IPv4 returns a 4-byte option's value as a net.IP, or ErrNotFound if
// code is absent.
func IPv4(l *List, code uint8) (net.IP, error) {
	v, err := Uint32(l, code)
	if err != nil {
		return nil, err
	}
	ip := make(net.IP, 4)
	binary.BigEndian.PutUint32(ip, v)
	return ip, nil
}

// IPv4List interprets the option's length as n*4 and returns the n
// addresses it encodes; a non-multiple-of-4 length is rejected, and
// ErrNotFound is returned if code is absent.
func IPv4List(l *List, code uint8) ([]net.IP, error) {
	e, ok := l.Get(code)
	if !ok {
		return nil, pdu.ErrNotFound
	}
	if len(e.Value)%4 != 0 {
		return nil, pdu.ErrMalformedOption
	}
	out := make([]net.IP, 0, len(e.Value)/4)
	for i := 0; i < len(e.Value); i += 4 {
		ip := make(net.IP, 4)
		copy(ip, e.Value[i:i+4])
		out = append(out, ip)
	}
	return out, nil
}

// String treats the option's value as a byte string with no implicit
// termination (no trailing NUL is stripped or expected). Returns
// ErrNotFound if code is absent.
func String(l *List, code uint8) (string, error) {
	e, ok := l.Get(code)
	if !ok {
		return "", pdu.ErrNotFound
	}
	return string(e.Value), nil
}

// PutUint32 encodes a 4-byte big-endian value and adds it as code.
func PutUint32(l *List, code uint8, v uint32) error {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return l.Add(code, buf)
}

// PutIPv4 encodes a single IPv4 address and adds it as code.
func PutIPv4(l *List, code uint8, ip net.IP) error {
	v4 := ip.To4()
	if v4 == nil {
		return pdu.ErrFieldOverflow
	}
	return l.Add(code, v4)
}
