// Package loopback implements the DLT_NULL framing used by BSD-style
// loopback captures: a 4-byte host-byte-order address family followed
// by the family's payload.
package loopback

import (
	"encoding/binary"

	"github.com/adriancostin6/libtins/pkg/pdu"
)

// Address family values read straight off the wire field. PFInet
// matches every BSD and Linux's AF_INET/PF_INET (2). PFLLC mirrors
// NetBSD/OpenBSD's PF_LLC loopback family id; no capture in the
// retrieval pack exercises it, so the value is carried for §4.2's
// demux table entry without a round-trip test backing it.
const (
	PFInet uint32 = 2
	PFLLC  uint32 = 9
)

const headerSize = 4

// Loopback is the 4-byte DLT_NULL header.
type Loopback struct {
	pdu.Base
	family   uint32
	unparsed []byte
}

func init() {
	pdu.RegisterDLT(pdu.DLTNull, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
}

// New builds a Loopback PDU with the given family and no inner PDU.
func New(family uint32) *Loopback {
	return &Loopback{family: family}
}

// Family returns the address-family field.
func (l *Loopback) Family() uint32 { return l.family }

// SetFamily sets the address-family field.
func (l *Loopback) SetFamily(family uint32) { l.family = family }

// Unparsed returns the payload bytes left over when the inner PDU's
// constructor failed to decode them (§4.1). Nil unless that happened.
func (l *Loopback) Unparsed() []byte { return l.unparsed }

// FromBytes decodes the 4-byte family field and recurses into the
// demultiplexer for the inner PDU. The family field is host-endian on
// the wire (per original_source/loopback.cpp: no byte swap is
// performed), so it is decoded with the platform's native ordering.
func FromBytes(buf []byte) (*Loopback, error) {
	if len(buf) < headerSize {
		return nil, pdu.ErrBufferTooShort
	}
	l := &Loopback{family: nativeUint32(buf[:headerSize])}

	rest := buf[headerSize:]
	if len(rest) == 0 {
		return l, nil
	}

	inner, err := pdu.Demux(pdu.KindLoopback, l.family, rest)
	if err != nil {
		// fail-soft on bad inner (§4.2): keep the outer PDU, leave Inner unset.
		l.unparsed = append([]byte(nil), rest...)
		return l, nil
	}
	if inner != nil {
		l.SetInner(inner)
	}
	return l, nil
}

func (l *Loopback) Kind() pdu.Kind        { return pdu.KindLoopback }
func (l *Loopback) HeaderSize() uint32    { return headerSize }
func (l *Loopback) Order() pdu.WriteOrder { return pdu.PreOrder }
func (l *Loopback) Size() uint32          { return l.SizeOf(l) }
func (l *Loopback) SetInner(c pdu.PDU)    { l.AttachInner(l, c) }

func (l *Loopback) Clone() pdu.PDU {
	clone := New(l.family)
	clone.unparsed = l.unparsed
	if inner := l.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return clone
}

func (l *Loopback) Serialize() ([]byte, error) { return pdu.Serialize(l) }

func (l *Loopback) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if totalSz < headerSize {
		return pdu.ErrBufferTooShort
	}
	putNativeUint32(buf[:headerSize], l.family)
	return nil
}

// nativeUint32/putNativeUint32 read/write a uint32 in the host's
// native byte order, matching libpcap's DLT_NULL convention for the
// loopback family field (see original_source/loopback.cpp).
func nativeUint32(b []byte) uint32 {
	return binary.NativeEndian.Uint32(b)
}

func putNativeUint32(b []byte, v uint32) {
	binary.NativeEndian.PutUint32(b, v)
}
