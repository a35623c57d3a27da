// Package llc implements a minimal IEEE 802.2 LLC header: the 3-byte
// DSAP/SSAP/Control fields, with the remainder of the buffer carried
// as an opaque RawPDU payload. It exists so Loopback's PF_LLC demux
// row (§4.2, §4.7) has somewhere to dispatch to; no SNAP/bridging
// logic is in scope for this spec.
package llc

import (
	"github.com/adriancostin6/libtins/pkg/pdu"
	"github.com/adriancostin6/libtins/pkg/layers/raw"
)

const headerSize = 3

// LLC is the fixed 3-byte 802.2 header.
type LLC struct {
	pdu.Base
	dsap, ssap, control uint8
}

// New builds an LLC header with the given fields and no inner PDU.
func New(dsap, ssap, control uint8) *LLC {
	return &LLC{dsap: dsap, ssap: ssap, control: control}
}

func (l *LLC) DSAP() uint8    { return l.dsap }
func (l *LLC) SSAP() uint8    { return l.ssap }
func (l *LLC) Control() uint8 { return l.control }

// FromBytes decodes the 3-byte header and wraps any remaining bytes in
// a RawPDU.
func FromBytes(buf []byte) (*LLC, error) {
	if len(buf) < headerSize {
		return nil, pdu.ErrBufferTooShort
	}
	l := &LLC{dsap: buf[0], ssap: buf[1], control: buf[2]}
	if rest := buf[headerSize:]; len(rest) > 0 {
		inner, _ := raw.FromBytes(rest)
		l.SetInner(inner)
	}
	return l, nil
}

func (l *LLC) Kind() pdu.Kind        { return pdu.KindLLC }
func (l *LLC) HeaderSize() uint32    { return headerSize }
func (l *LLC) Order() pdu.WriteOrder { return pdu.PreOrder }
func (l *LLC) Size() uint32          { return l.SizeOf(l) }
func (l *LLC) SetInner(c pdu.PDU)    { l.AttachInner(l, c) }

func (l *LLC) Clone() pdu.PDU {
	clone := New(l.dsap, l.ssap, l.control)
	if inner := l.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return clone
}

func (l *LLC) Serialize() ([]byte, error) { return pdu.Serialize(l) }

func (l *LLC) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if totalSz < headerSize {
		return pdu.ErrBufferTooShort
	}
	buf[0], buf[1], buf[2] = l.dsap, l.ssap, l.control
	return nil
}

func init() {
	pdu.Register(pdu.KindLoopback, 9, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
}
