// Package dot11 implements the IEEE 802.11 MAC header and the
// management-frame body variants this library models: Beacon,
// ProbeRequest and ProbeResponse, plus a generic catch-all for any
// other management subtype. This is the frame-body variant codec of
// spec.md §4.4/§4.5: a flat demux over (frame-control type, subtype)
// selects the leaf at parse time rather than a replicated class
// hierarchy.
package dot11

import (
	"encoding/binary"

	"github.com/adriancostin6/libtins/pkg/pdu"
)

// Frame-control type field values.
const (
	TypeManagement uint8 = 0
	TypeControl    uint8 = 1
	TypeData       uint8 = 2
)

// Management frame-control subtype values this package demuxes.
const (
	SubtypeProbeRequest  uint8 = 4
	SubtypeProbeResponse uint8 = 5
	SubtypeBeacon        uint8 = 8
)

const headerSize = 24

// Dot11 is the 24-byte MAC header common to every frame this package
// models: frame control, duration, three addresses and the sequence
// control field. Address4 (present only on WDS data frames) is out of
// scope.
type Dot11 struct {
	pdu.Base

	version             uint8
	typ, subtype        uint8
	toDS, fromDS        bool
	moreFrag, retry     bool
	pwrMgmt, moreData   bool
	protected, order    bool
	duration            uint16
	addr1, addr2, addr3 [6]byte
	seqCtrl             uint16
	unparsed            []byte
}

func init() {
	pdu.RegisterDLT(pdu.DLTIEEE80211, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
}

func selector(typ, subtype uint8) uint32 { return uint32(typ)<<4 | uint32(subtype) }

// New builds an empty management-type Dot11 header of the given
// subtype.
func New(subtype uint8) *Dot11 {
	return &Dot11{typ: TypeManagement, subtype: subtype}
}

func (d *Dot11) Version() uint8     { return d.version }
func (d *Dot11) Type() uint8        { return d.typ }
func (d *Dot11) Subtype() uint8     { return d.subtype }
func (d *Dot11) ToDS() bool         { return d.toDS }
func (d *Dot11) FromDS() bool       { return d.fromDS }
func (d *Dot11) Retry() bool        { return d.retry }
func (d *Dot11) Protected() bool    { return d.protected }
func (d *Dot11) Duration() uint16   { return d.duration }
func (d *Dot11) Addr1() [6]byte     { return d.addr1 }
func (d *Dot11) Addr2() [6]byte     { return d.addr2 }
func (d *Dot11) Addr3() [6]byte     { return d.addr3 }
func (d *Dot11) SeqCtrl() uint16    { return d.seqCtrl }
func (d *Dot11) SetAddr1(a [6]byte) { d.addr1 = a }
func (d *Dot11) SetAddr2(a [6]byte) { d.addr2 = a }
func (d *Dot11) SetAddr3(a [6]byte) { d.addr3 = a }

// Unparsed returns the frame body bytes left over when the inner PDU's
// constructor failed to decode them (§4.1). Nil unless that happened.
func (d *Dot11) Unparsed() []byte { return d.unparsed }

// FromBytes decodes the 24-byte MAC header and demultiplexes the frame
// body on (type, subtype).
func FromBytes(buf []byte) (*Dot11, error) {
	if len(buf) < headerSize {
		return nil, pdu.ErrBufferTooShort
	}
	fc := binary.LittleEndian.Uint16(buf[0:2])
	d := &Dot11{
		version:   uint8(fc & 0x3),
		typ:       uint8((fc >> 2) & 0x3),
		subtype:   uint8((fc >> 4) & 0xF),
		toDS:      fc&(1<<8) != 0,
		fromDS:    fc&(1<<9) != 0,
		moreFrag:  fc&(1<<10) != 0,
		retry:     fc&(1<<11) != 0,
		pwrMgmt:   fc&(1<<12) != 0,
		moreData:  fc&(1<<13) != 0,
		protected: fc&(1<<14) != 0,
		order:     fc&(1<<15) != 0,
		duration:  binary.LittleEndian.Uint16(buf[2:4]),
		seqCtrl:   binary.LittleEndian.Uint16(buf[22:24]),
	}
	copy(d.addr1[:], buf[4:10])
	copy(d.addr2[:], buf[10:16])
	copy(d.addr3[:], buf[16:22])

	if rest := buf[headerSize:]; len(rest) > 0 {
		inner, err := pdu.Demux(pdu.KindDot11, selector(d.typ, d.subtype), rest)
		if err != nil {
			d.unparsed = append([]byte(nil), rest...)
			return d, nil // fail-soft on bad inner, §4.2
		}
		if inner != nil {
			d.SetInner(inner)
		}
	}
	return d, nil
}

func (d *Dot11) Kind() pdu.Kind        { return pdu.KindDot11 }
func (d *Dot11) HeaderSize() uint32    { return headerSize }
func (d *Dot11) Order() pdu.WriteOrder { return pdu.PreOrder }
func (d *Dot11) Size() uint32          { return d.SizeOf(d) }
func (d *Dot11) SetInner(c pdu.PDU)    { d.AttachInner(d, c) }

func (d *Dot11) Clone() pdu.PDU {
	clone := *d
	clone.Base = pdu.Base{}
	if inner := d.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return &clone
}

func (d *Dot11) Serialize() ([]byte, error) { return pdu.Serialize(d) }

func (d *Dot11) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if totalSz < headerSize {
		return pdu.ErrBufferTooShort
	}
	var fc uint16
	fc |= uint16(d.version) & 0x3
	fc |= (uint16(d.typ) & 0x3) << 2
	fc |= (uint16(d.subtype) & 0xF) << 4
	if d.toDS {
		fc |= 1 << 8
	}
	if d.fromDS {
		fc |= 1 << 9
	}
	if d.moreFrag {
		fc |= 1 << 10
	}
	if d.retry {
		fc |= 1 << 11
	}
	if d.pwrMgmt {
		fc |= 1 << 12
	}
	if d.moreData {
		fc |= 1 << 13
	}
	if d.protected {
		fc |= 1 << 14
	}
	if d.order {
		fc |= 1 << 15
	}
	binary.LittleEndian.PutUint16(buf[0:2], fc)
	binary.LittleEndian.PutUint16(buf[2:4], d.duration)
	copy(buf[4:10], d.addr1[:])
	copy(buf[10:16], d.addr2[:])
	copy(buf[16:22], d.addr3[:])
	binary.LittleEndian.PutUint16(buf[22:24], d.seqCtrl)
	return nil
}
