// Package ethernet implements the Ethernet II PDU: a 14-byte header
// (destination MAC, source MAC, EtherType) demultiplexing by EtherType
// into IPv4 or ARP inner PDUs. There is no IPv6 layer; an IPv6 payload,
// like any other EtherType without a registered row, decodes as Raw.
package ethernet

import (
	"encoding/binary"

	"github.com/adriancostin6/libtins/pkg/pdu"
)

// EtherType values known to this package. The demux rows for IPv4 and
// ARP are registered by the ipv4 and arp packages; no row is registered
// for TypeIPv6.
const (
	TypeIPv4 uint32 = 0x0800
	TypeARP  uint32 = 0x0806
	TypeIPv6 uint32 = 0x86DD
)

const headerSize = 14

// Ethernet is the Ethernet II header.
type Ethernet struct {
	pdu.Base
	dst, src  [6]byte
	etherType uint16
	unparsed  []byte
}

func init() {
	pdu.RegisterDLT(pdu.DLTEN10MB, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
}

// New builds an Ethernet header with the given addresses/EtherType and
// no inner PDU.
func New(dst, src [6]byte, etherType uint16) *Ethernet {
	return &Ethernet{dst: dst, src: src, etherType: etherType}
}

func (e *Ethernet) DstMAC() [6]byte     { return e.dst }
func (e *Ethernet) SrcMAC() [6]byte     { return e.src }
func (e *Ethernet) EtherType() uint16   { return e.etherType }
func (e *Ethernet) SetDstMAC(m [6]byte) { e.dst = m }
func (e *Ethernet) SetSrcMAC(m [6]byte) { e.src = m }
func (e *Ethernet) SetEtherType(t uint16) { e.etherType = t }

// Unparsed returns the payload bytes left over when the inner PDU's
// constructor failed to decode them (§4.1: inner-layer failures leave
// the outer PDU with no inner, but the unparsed bytes recoverable
// here). Nil unless that happened.
func (e *Ethernet) Unparsed() []byte { return e.unparsed }

// FromBytes decodes the 14-byte header and demultiplexes the payload
// by EtherType into the inner PDU.
func FromBytes(buf []byte) (*Ethernet, error) {
	if len(buf) < headerSize {
		return nil, pdu.ErrBufferTooShort
	}
	e := &Ethernet{}
	copy(e.dst[:], buf[0:6])
	copy(e.src[:], buf[6:12])
	e.etherType = binary.BigEndian.Uint16(buf[12:14])

	rest := buf[headerSize:]
	if len(rest) == 0 {
		return e, nil
	}
	inner, err := pdu.Demux(pdu.KindEthernet, uint32(e.etherType), rest)
	if err != nil {
		e.unparsed = append([]byte(nil), rest...)
		return e, nil // fail-soft on bad inner, §4.2
	}
	if inner != nil {
		e.SetInner(inner)
	}
	return e, nil
}

func (e *Ethernet) Kind() pdu.Kind        { return pdu.KindEthernet }
func (e *Ethernet) HeaderSize() uint32    { return headerSize }
func (e *Ethernet) Order() pdu.WriteOrder { return pdu.PreOrder }
func (e *Ethernet) Size() uint32          { return e.SizeOf(e) }
func (e *Ethernet) SetInner(c pdu.PDU)    { e.AttachInner(e, c) }

func (e *Ethernet) Clone() pdu.PDU {
	clone := New(e.dst, e.src, e.etherType)
	clone.unparsed = e.unparsed
	if inner := e.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return clone
}

func (e *Ethernet) Serialize() ([]byte, error) { return pdu.Serialize(e) }

// nextProtocolTable maps an inner PDU's Kind to the EtherType this
// layer should stamp when the caller hasn't set one explicitly.
var nextProtocolTable = map[pdu.Kind]uint16{
	pdu.KindIPv4: uint16(TypeIPv4),
	pdu.KindARP:  uint16(TypeARP),
}

func (e *Ethernet) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if totalSz < headerSize {
		return pdu.ErrBufferTooShort
	}
	etherType := e.etherType
	if etherType == 0 {
		if inner := e.Inner(); inner != nil {
			if t, ok := nextProtocolTable[inner.Kind()]; ok {
				etherType = t
			}
		}
	}
	copy(buf[0:6], e.dst[:])
	copy(buf[6:12], e.src[:])
	binary.BigEndian.PutUint16(buf[12:14], etherType)
	return nil
}
