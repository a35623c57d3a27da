// Package icmp implements the ICMP echo request/reply header (RFC
// 792): an 8-byte fixed header plus payload, checksummed over the
// whole message (no pseudo-header, unlike TCP/UDP).
package icmp

import (
	"encoding/binary"

	"github.com/adriancostin6/libtins/pkg/checksum"
	"github.com/adriancostin6/libtins/pkg/layers/raw"
	"github.com/adriancostin6/libtins/pkg/pdu"
)

const (
	TypeEchoReply   uint8 = 0
	TypeEchoRequest uint8 = 8
)

const headerSize = 8

// ICMP is the 8-byte fixed echo request/reply header.
type ICMP struct {
	pdu.Base
	typ, code     uint8
	checksumField uint16
	id, seq       uint16
}

func init() {
	pdu.Register(pdu.KindIPv4, 1, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
}

// New builds an ICMP echo message of the given type/id/seq.
func New(typ uint8, id, seq uint16) *ICMP {
	return &ICMP{typ: typ, id: id, seq: seq}
}

func (i *ICMP) Type() uint8   { return i.typ }
func (i *ICMP) Code() uint8   { return i.code }
func (i *ICMP) ID() uint16    { return i.id }
func (i *ICMP) Seq() uint16   { return i.seq }
func (i *ICMP) SetType(t uint8) { i.typ = t }
func (i *ICMP) SetCode(c uint8) { i.code = c }

// FromBytes decodes the 8-byte header; remaining bytes become a
// RawPDU payload.
func FromBytes(buf []byte) (*ICMP, error) {
	if len(buf) < headerSize {
		return nil, pdu.ErrBufferTooShort
	}
	i := &ICMP{
		typ:           buf[0],
		code:          buf[1],
		checksumField: binary.BigEndian.Uint16(buf[2:4]),
		id:            binary.BigEndian.Uint16(buf[4:6]),
		seq:           binary.BigEndian.Uint16(buf[6:8]),
	}
	if rest := buf[headerSize:]; len(rest) > 0 {
		inner, _ := raw.FromBytes(rest)
		i.SetInner(inner)
	}
	return i, nil
}

func (i *ICMP) Kind() pdu.Kind        { return pdu.KindICMP }
func (i *ICMP) HeaderSize() uint32    { return headerSize }
func (i *ICMP) Order() pdu.WriteOrder { return pdu.PostOrder }
func (i *ICMP) Size() uint32          { return i.SizeOf(i) }
func (i *ICMP) SetInner(c pdu.PDU)    { i.AttachInner(i, c) }

func (i *ICMP) Clone() pdu.PDU {
	clone := *i
	clone.Base = pdu.Base{}
	if inner := i.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return &clone
}

func (i *ICMP) Serialize() ([]byte, error) { return pdu.Serialize(i) }

// WriteSerialization computes the checksum over the just-written
// message (header+payload) — hence PostOrder, even though there is no
// pseudo-header to consult on parent.
func (i *ICMP) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if totalSz < headerSize {
		return pdu.ErrBufferTooShort
	}
	buf[0], buf[1] = i.typ, i.code
	buf[2], buf[3] = 0, 0
	binary.BigEndian.PutUint16(buf[4:6], i.id)
	binary.BigEndian.PutUint16(buf[6:8], i.seq)

	sum := checksum.Internet(buf[:totalSz])
	binary.BigEndian.PutUint16(buf[2:4], sum)
	return nil
}
