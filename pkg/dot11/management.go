package dot11

import "github.com/adriancostin6/libtins/pkg/pdu"

// Management subtypes this package has no dedicated leaf for; their
// bodies demux to the opaque ManagementFrame catch-all.
const (
	SubtypeAssociationRequest    uint8 = 0
	SubtypeAssociationResponse   uint8 = 1
	SubtypeReassociationRequest  uint8 = 2
	SubtypeReassociationResponse uint8 = 3
	SubtypeDisassociation        uint8 = 10
	SubtypeAuthentication        uint8 = 11
	SubtypeDeauthentication      uint8 = 12
	SubtypeAction                uint8 = 13
)

func init() {
	ctor := func(buf []byte) (pdu.PDU, error) { return ManagementFrameFromBytes(buf) }
	for _, subtype := range []uint8{
		SubtypeAssociationRequest, SubtypeAssociationResponse,
		SubtypeReassociationRequest, SubtypeReassociationResponse,
		SubtypeDisassociation, SubtypeAuthentication,
		SubtypeDeauthentication, SubtypeAction,
	} {
		pdu.Register(pdu.KindDot11, selector(TypeManagement, subtype), ctor)
	}
}

// ManagementFrame is the catch-all body for management subtypes this
// package has no dedicated leaf for (association, authentication,
// disassociation, ...): the body is held opaque, same as RawPDU, but
// tagged with its own kind so callers can still tell it apart from a
// demux miss.
type ManagementFrame struct {
	pdu.Base
	body []byte
}

// ManagementFrameFromBytes wraps buf verbatim.
func ManagementFrameFromBytes(buf []byte) (*ManagementFrame, error) {
	body := make([]byte, len(buf))
	copy(body, buf)
	return &ManagementFrame{body: body}, nil
}

func (m *ManagementFrame) Body() []byte { return m.body }

func (m *ManagementFrame) Kind() pdu.Kind        { return pdu.KindDot11ManagementFrame }
func (m *ManagementFrame) HeaderSize() uint32    { return uint32(len(m.body)) }
func (m *ManagementFrame) Order() pdu.WriteOrder { return pdu.PreOrder }
func (m *ManagementFrame) Size() uint32          { return m.SizeOf(m) }
func (m *ManagementFrame) SetInner(c pdu.PDU)    { m.AttachInner(m, c) }

func (m *ManagementFrame) Clone() pdu.PDU {
	clone := &ManagementFrame{body: append([]byte(nil), m.body...)}
	if inner := m.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return clone
}

func (m *ManagementFrame) Serialize() ([]byte, error) { return pdu.Serialize(m) }

func (m *ManagementFrame) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if uint32(len(buf)) < uint32(len(m.body)) {
		return pdu.ErrBufferTooShort
	}
	copy(buf, m.body)
	return nil
}
