package dot11

import (
	"encoding/binary"

	"github.com/adriancostin6/libtins/pkg/pdu"
)

// ProbeRequest is a client's active-scan probe: no fixed fields, just
// a tagged-element list (typically SSID and supported rates).
type ProbeRequest struct {
	pdu.Base
	elements ElementList
}

func init() {
	pdu.Register(pdu.KindDot11, selector(TypeManagement, SubtypeProbeRequest), func(buf []byte) (pdu.PDU, error) {
		return ProbeRequestFromBytes(buf)
	})
}

// NewProbeRequest builds an empty ProbeRequest.
func NewProbeRequest() *ProbeRequest { return &ProbeRequest{} }

func (p *ProbeRequest) Elements() *ElementList { return &p.elements }

// ProbeRequestFromBytes decodes a probe request body: the entire
// buffer is the tagged-element list.
func ProbeRequestFromBytes(buf []byte) (*ProbeRequest, error) {
	p := &ProbeRequest{}
	if err := p.elements.Parse(buf); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ProbeRequest) Kind() pdu.Kind        { return pdu.KindDot11ProbeRequest }
func (p *ProbeRequest) HeaderSize() uint32    { return p.elements.Size() }
func (p *ProbeRequest) Order() pdu.WriteOrder { return pdu.PreOrder }
func (p *ProbeRequest) Size() uint32          { return p.SizeOf(p) }
func (p *ProbeRequest) SetInner(c pdu.PDU)    { p.AttachInner(p, c) }

func (p *ProbeRequest) Clone() pdu.PDU {
	clone := *p
	clone.Base = pdu.Base{}
	clone.elements = *p.elements.Clone()
	if inner := p.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return &clone
}

func (p *ProbeRequest) Serialize() ([]byte, error) { return pdu.Serialize(p) }

func (p *ProbeRequest) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	copy(buf, p.elements.Serialize())
	return nil
}

const probeResponseFixedSize = 12 // timestamp(8) + interval(2) + capability(2)

// ProbeResponse is an access point's answer to a ProbeRequest: same
// fixed body shape as Beacon.
type ProbeResponse struct {
	pdu.Base

	timestamp  uint64
	interval   uint16
	capability Capabilities
	elements   ElementList
}

func init() {
	pdu.Register(pdu.KindDot11, selector(TypeManagement, SubtypeProbeResponse), func(buf []byte) (pdu.PDU, error) {
		return ProbeResponseFromBytes(buf)
	})
}

// NewProbeResponse builds an empty ProbeResponse with the given interval.
func NewProbeResponse(interval uint16) *ProbeResponse {
	return &ProbeResponse{interval: interval}
}

func (p *ProbeResponse) Timestamp() uint64        { return p.timestamp }
func (p *ProbeResponse) Interval() uint16         { return p.interval }
func (p *ProbeResponse) Capability() Capabilities { return p.capability }
func (p *ProbeResponse) Elements() *ElementList   { return &p.elements }

// ProbeResponseFromBytes decodes the 12-byte fixed body and the
// tagged-element trailer.
func ProbeResponseFromBytes(buf []byte) (*ProbeResponse, error) {
	if len(buf) < probeResponseFixedSize {
		return nil, pdu.ErrBufferTooShort
	}
	p := &ProbeResponse{
		timestamp:  binary.LittleEndian.Uint64(buf[0:8]),
		interval:   binary.LittleEndian.Uint16(buf[8:10]),
		capability: Capabilities(binary.LittleEndian.Uint16(buf[10:12])),
	}
	if err := p.elements.Parse(buf[probeResponseFixedSize:]); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ProbeResponse) Kind() pdu.Kind        { return pdu.KindDot11ProbeResponse }
func (p *ProbeResponse) HeaderSize() uint32    { return probeResponseFixedSize + p.elements.Size() }
func (p *ProbeResponse) Order() pdu.WriteOrder { return pdu.PreOrder }
func (p *ProbeResponse) Size() uint32          { return p.SizeOf(p) }
func (p *ProbeResponse) SetInner(c pdu.PDU)    { p.AttachInner(p, c) }

func (p *ProbeResponse) Clone() pdu.PDU {
	clone := *p
	clone.Base = pdu.Base{}
	clone.elements = *p.elements.Clone()
	if inner := p.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return &clone
}

func (p *ProbeResponse) Serialize() ([]byte, error) { return pdu.Serialize(p) }

func (p *ProbeResponse) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if totalSz < probeResponseFixedSize {
		return pdu.ErrBufferTooShort
	}
	binary.LittleEndian.PutUint64(buf[0:8], p.timestamp)
	binary.LittleEndian.PutUint16(buf[8:10], p.interval)
	binary.LittleEndian.PutUint16(buf[10:12], uint16(p.capability))
	copy(buf[probeResponseFixedSize:], p.elements.Serialize())
	return nil
}
