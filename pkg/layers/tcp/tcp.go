// Package tcp implements the TCP header (RFC 793): the 20-byte fixed
// header (options are out of scope), with a checksum computed over an
// IPv4 pseudo-header supplied by the parent PDU.
package tcp

import (
	"encoding/binary"

	"github.com/adriancostin6/libtins/pkg/checksum"
	"github.com/adriancostin6/libtins/pkg/layers/raw"
	"github.com/adriancostin6/libtins/pkg/pdu"
)

// Flag bits, the lower 6 of byte 13.
const (
	FlagFIN uint8 = 0x01
	FlagSYN uint8 = 0x02
	FlagRST uint8 = 0x04
	FlagPSH uint8 = 0x08
	FlagACK uint8 = 0x10
	FlagURG uint8 = 0x20
)

const headerSize = 20

// TCP is the fixed 20-byte header.
type TCP struct {
	pdu.Base
	srcPort, dstPort uint16
	seqNum, ackNum   uint32
	dataOffset       uint8
	flags            uint8
	window           uint16
	checksumField    uint16
	urgentPtr        uint16
}

func init() {
	pdu.Register(pdu.KindIPv4, 6, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
}

// New builds a TCP header with the given ports, dataOffset defaulted
// to 5 (no options), and no inner PDU.
func New(srcPort, dstPort uint16) *TCP {
	return &TCP{srcPort: srcPort, dstPort: dstPort, dataOffset: 5}
}

func (t *TCP) SrcPort() uint16     { return t.srcPort }
func (t *TCP) DstPort() uint16     { return t.dstPort }
func (t *TCP) SeqNum() uint32      { return t.seqNum }
func (t *TCP) AckNum() uint32      { return t.ackNum }
func (t *TCP) Flags() uint8        { return t.flags }
func (t *TCP) Window() uint16      { return t.window }
func (t *TCP) SetSrcPort(p uint16) { t.srcPort = p }
func (t *TCP) SetDstPort(p uint16) { t.dstPort = p }
func (t *TCP) SetSeqNum(s uint32)  { t.seqNum = s }
func (t *TCP) SetAckNum(a uint32)  { t.ackNum = a }
func (t *TCP) SetFlags(f uint8)    { t.flags = f }
func (t *TCP) SetWindow(w uint16)  { t.window = w }

// FromBytes decodes the TCP header; options beyond the 20-byte fixed
// header are skipped (DataOffset still reflects the full header
// length read off the wire, but extra option bytes are not preserved).
func FromBytes(buf []byte) (*TCP, error) {
	if len(buf) < headerSize {
		return nil, pdu.ErrBufferTooShort
	}
	dataOffset := buf[12] >> 4
	fullHeaderLen := int(dataOffset) * 4
	if fullHeaderLen < headerSize || len(buf) < fullHeaderLen {
		return nil, pdu.ErrBufferTooShort
	}

	t := &TCP{
		srcPort:       binary.BigEndian.Uint16(buf[0:2]),
		dstPort:       binary.BigEndian.Uint16(buf[2:4]),
		seqNum:        binary.BigEndian.Uint32(buf[4:8]),
		ackNum:        binary.BigEndian.Uint32(buf[8:12]),
		dataOffset:    dataOffset,
		flags:         buf[13] & 0x3F,
		window:        binary.BigEndian.Uint16(buf[14:16]),
		checksumField: binary.BigEndian.Uint16(buf[16:18]),
		urgentPtr:     binary.BigEndian.Uint16(buf[18:20]),
	}

	if rest := buf[fullHeaderLen:]; len(rest) > 0 {
		inner, _ := raw.FromBytes(rest)
		t.SetInner(inner)
	}
	return t, nil
}

func (t *TCP) Kind() pdu.Kind        { return pdu.KindTCP }
func (t *TCP) HeaderSize() uint32    { return uint32(dataOffsetOrDefault(t.dataOffset)) * 4 }
func (t *TCP) Order() pdu.WriteOrder { return pdu.PostOrder }
func (t *TCP) Size() uint32          { return t.SizeOf(t) }
func (t *TCP) SetInner(c pdu.PDU)    { t.AttachInner(t, c) }

func dataOffsetOrDefault(d uint8) uint8 {
	if d == 0 {
		return 5
	}
	return d
}

func (t *TCP) Clone() pdu.PDU {
	clone := *t
	clone.Base = pdu.Base{}
	if inner := t.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return &clone
}

func (t *TCP) Serialize() ([]byte, error) { return pdu.Serialize(t) }

type ipv4Endpoints interface {
	SrcIPBytes() [4]byte
	DstIPBytes() [4]byte
}

// WriteSerialization computes the checksum over the IPv4 pseudo-header
// (from parent) plus the already-written TCP segment — hence PostOrder.
func (t *TCP) WriteSerialization(buf []byte, totalSz uint32, parent pdu.PDU) error {
	headerLen := uint32(dataOffsetOrDefault(t.dataOffset)) * 4
	if totalSz < headerLen {
		return pdu.ErrBufferTooShort
	}
	binary.BigEndian.PutUint16(buf[0:2], t.srcPort)
	binary.BigEndian.PutUint16(buf[2:4], t.dstPort)
	binary.BigEndian.PutUint32(buf[4:8], t.seqNum)
	binary.BigEndian.PutUint32(buf[8:12], t.ackNum)
	buf[12] = dataOffsetOrDefault(t.dataOffset) << 4
	buf[13] = t.flags
	binary.BigEndian.PutUint16(buf[14:16], t.window)
	buf[16], buf[17] = 0, 0
	binary.BigEndian.PutUint16(buf[18:20], t.urgentPtr)

	if ep, ok := parent.(ipv4Endpoints); ok {
		pseudo := checksum.Pseudo(ep.SrcIPBytes(), ep.DstIPBytes(), 6, uint16(totalSz))
		sum := checksum.Internet(append(pseudo, buf[:totalSz]...))
		binary.BigEndian.PutUint16(buf[16:18], sum)
	}
	return nil
}
