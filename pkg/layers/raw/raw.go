// Package raw implements RawPDU, the catch-all terminal leaf used
// whenever the demultiplexer has no constructor for a selector, or a
// protocol's payload is opaque by design.
package raw

import (
	"github.com/adriancostin6/libtins/pkg/pdu"
)

// Raw holds an opaque byte sequence with no further structure.
type Raw struct {
	pdu.Base
	payload []byte
}

func init() {
	pdu.RegisterRawConstructor(func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
	pdu.RegisterDLT(pdu.DLTRaw, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
}

// New builds a Raw PDU wrapping payload directly (no copy).
func New(payload []byte) *Raw {
	return &Raw{payload: payload}
}

// FromBytes builds a Raw PDU that owns a copy of buf.
func FromBytes(buf []byte) (*Raw, error) {
	payload := make([]byte, len(buf))
	copy(payload, buf)
	return &Raw{payload: payload}, nil
}

// Payload returns the raw bytes owned by this PDU.
func (r *Raw) Payload() []byte { return r.payload }

// SetPayload replaces the raw bytes.
func (r *Raw) SetPayload(p []byte) {
	r.payload = make([]byte, len(p))
	copy(r.payload, p)
}

func (r *Raw) Kind() pdu.Kind        { return pdu.KindRaw }
func (r *Raw) HeaderSize() uint32    { return uint32(len(r.payload)) }
func (r *Raw) Order() pdu.WriteOrder { return pdu.PreOrder }
func (r *Raw) Size() uint32          { return r.SizeOf(r) }
func (r *Raw) SetInner(c pdu.PDU)    { r.AttachInner(r, c) }

func (r *Raw) Clone() pdu.PDU {
	clone := New(append([]byte(nil), r.payload...))
	if inner := r.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return clone
}

func (r *Raw) Serialize() ([]byte, error) { return pdu.Serialize(r) }

func (r *Raw) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if uint32(len(buf)) < uint32(len(r.payload)) {
		return pdu.ErrBufferTooShort
	}
	copy(buf, r.payload)
	return nil
}
