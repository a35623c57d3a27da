package dot11

import (
	"encoding/binary"

	"github.com/adriancostin6/libtins/pkg/pdu"
)

const beaconFixedSize = 12 // timestamp(8) + interval(2) + capability(2)

// Beacon is the management frame body sent periodically by an access
// point: an 8-byte timestamp, the beacon interval, the capability
// bitfield, and a trailing tagged-element list.
type Beacon struct {
	pdu.Base

	timestamp  uint64
	interval   uint16
	capability Capabilities
	elements   ElementList
}

func init() {
	pdu.Register(pdu.KindDot11, selector(TypeManagement, SubtypeBeacon), func(buf []byte) (pdu.PDU, error) {
		return BeaconFromBytes(buf)
	})
}

// NewBeacon builds an empty Beacon with the given interval.
func NewBeacon(interval uint16) *Beacon {
	return &Beacon{interval: interval}
}

func (b *Beacon) Timestamp() uint64        { return b.timestamp }
func (b *Beacon) Interval() uint16         { return b.interval }
func (b *Beacon) Capability() Capabilities { return b.capability }
func (b *Beacon) Elements() *ElementList   { return &b.elements }
func (b *Beacon) SetTimestamp(t uint64)    { b.timestamp = t }
func (b *Beacon) SetCapability(c Capabilities) { b.capability = c }

// BeaconFromBytes decodes the 12-byte fixed body and the
// buffer-exhaustion-terminated tagged-element trailer.
func BeaconFromBytes(buf []byte) (*Beacon, error) {
	if len(buf) < beaconFixedSize {
		return nil, pdu.ErrBufferTooShort
	}
	b := &Beacon{
		timestamp:  binary.LittleEndian.Uint64(buf[0:8]),
		interval:   binary.LittleEndian.Uint16(buf[8:10]),
		capability: Capabilities(binary.LittleEndian.Uint16(buf[10:12])),
	}
	if err := b.elements.Parse(buf[beaconFixedSize:]); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Beacon) Kind() pdu.Kind     { return pdu.KindDot11Beacon }
func (b *Beacon) HeaderSize() uint32 { return beaconFixedSize + b.elements.Size() }
func (b *Beacon) Order() pdu.WriteOrder { return pdu.PreOrder }
func (b *Beacon) Size() uint32       { return b.SizeOf(b) }
func (b *Beacon) SetInner(c pdu.PDU) { b.AttachInner(b, c) }

func (b *Beacon) Clone() pdu.PDU {
	clone := *b
	clone.Base = pdu.Base{}
	clone.elements = *b.elements.Clone()
	if inner := b.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return &clone
}

func (b *Beacon) Serialize() ([]byte, error) { return pdu.Serialize(b) }

func (b *Beacon) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if totalSz < beaconFixedSize {
		return pdu.ErrBufferTooShort
	}
	binary.LittleEndian.PutUint64(buf[0:8], b.timestamp)
	binary.LittleEndian.PutUint16(buf[8:10], b.interval)
	binary.LittleEndian.PutUint16(buf[10:12], uint16(b.capability))
	copy(buf[beaconFixedSize:], b.elements.Serialize())
	return nil
}
