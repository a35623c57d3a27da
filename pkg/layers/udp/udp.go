// Package udp implements the UDP header (RFC 768): 8 fixed bytes plus
// payload, with a checksum computed over an IPv4 pseudo-header
// supplied by the parent PDU.
package udp

import (
	"encoding/binary"

	"github.com/adriancostin6/libtins/pkg/checksum"
	"github.com/adriancostin6/libtins/pkg/layers/raw"
	"github.com/adriancostin6/libtins/pkg/pdu"
)

const headerSize = 8

// Well-known ports the demultiplexer dispatches on.
const (
	PortDHCPServer uint16 = 67
	PortDHCPClient uint16 = 68
)

// UDP is the 8-byte fixed header.
type UDP struct {
	pdu.Base
	srcPort, dstPort uint16
	length           uint16
	checksumField    uint16
	unparsed         []byte
}

func init() {
	pdu.Register(pdu.KindIPv4, 17, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
}

// New builds a UDP header with the given ports and no inner PDU; the
// caller attaches a payload PDU (DHCP, or RawPDU) via SetInner.
func New(srcPort, dstPort uint16) *UDP {
	return &UDP{srcPort: srcPort, dstPort: dstPort}
}

func (u *UDP) SrcPort() uint16      { return u.srcPort }
func (u *UDP) DstPort() uint16      { return u.dstPort }
func (u *UDP) SetSrcPort(p uint16)  { u.srcPort = p }
func (u *UDP) SetDstPort(p uint16)  { u.dstPort = p }
func (u *UDP) Length() uint16       { return u.length }
func (u *UDP) Checksum() uint16     { return u.checksumField }

// Unparsed returns the payload bytes left over when the inner PDU's
// constructor failed to decode them (§4.1). Nil unless that happened.
func (u *UDP) Unparsed() []byte { return u.unparsed }

// FromBytes decodes the 8-byte header and demultiplexes on the
// (src,dst) port pair: DHCP if either port is 67 or 68, Raw otherwise.
func FromBytes(buf []byte) (*UDP, error) {
	if len(buf) < headerSize {
		return nil, pdu.ErrBufferTooShort
	}
	u := &UDP{
		srcPort:       binary.BigEndian.Uint16(buf[0:2]),
		dstPort:       binary.BigEndian.Uint16(buf[2:4]),
		length:        binary.BigEndian.Uint16(buf[4:6]),
		checksumField: binary.BigEndian.Uint16(buf[6:8]),
	}
	rest := buf[headerSize:]
	if len(rest) == 0 {
		return u, nil
	}

	selector := dhcpSelector(u.srcPort, u.dstPort)
	inner, err := pdu.Demux(pdu.KindUDP, selector, rest)
	if err != nil {
		u.unparsed = append([]byte(nil), rest...)
		return u, nil // fail-soft on bad inner, §4.2
	}
	if inner == nil {
		inner, _ = raw.FromBytes(rest)
	}
	u.SetInner(inner)
	return u, nil
}

// dhcpSelector collapses the (src,dst) port pair to a single demux
// selector: the table has one row for "either port is 67/68".
func dhcpSelector(src, dst uint16) uint32 {
	if src == uint16(PortDHCPServer) || src == uint16(PortDHCPClient) ||
		dst == uint16(PortDHCPServer) || dst == uint16(PortDHCPClient) {
		return uint32(PortDHCPServer)
	}
	return 0
}

func (u *UDP) Kind() pdu.Kind        { return pdu.KindUDP }
func (u *UDP) HeaderSize() uint32    { return headerSize }
func (u *UDP) Order() pdu.WriteOrder { return pdu.PostOrder }
func (u *UDP) Size() uint32          { return u.SizeOf(u) }
func (u *UDP) SetInner(c pdu.PDU)    { u.AttachInner(u, c) }

func (u *UDP) Clone() pdu.PDU {
	clone := *u
	clone.Base = pdu.Base{}
	if inner := u.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return &clone
}

func (u *UDP) Serialize() ([]byte, error) { return pdu.Serialize(u) }

// ipv4Endpoints is satisfied by the ipv4.IPv4 PDU; declared locally to
// avoid an import cycle (ipv4 already imports udp's sibling packages
// indirectly through the demux table, never directly, but importing
// ipv4 from udp would still be a layering violation of §4.2's
// parent-agnostic demux design).
type ipv4Endpoints interface {
	SrcIPBytes() [4]byte
	DstIPBytes() [4]byte
}

// WriteSerialization stamps Length from totalSz and computes the
// checksum over the IPv4 pseudo-header (addresses pulled from parent)
// plus the already-written UDP segment — hence PostOrder.
func (u *UDP) WriteSerialization(buf []byte, totalSz uint32, parent pdu.PDU) error {
	if totalSz < headerSize {
		return pdu.ErrBufferTooShort
	}
	binary.BigEndian.PutUint16(buf[0:2], u.srcPort)
	binary.BigEndian.PutUint16(buf[2:4], u.dstPort)
	binary.BigEndian.PutUint16(buf[4:6], uint16(totalSz))
	buf[6], buf[7] = 0, 0

	if ep, ok := parent.(ipv4Endpoints); ok {
		pseudo := checksum.Pseudo(ep.SrcIPBytes(), ep.DstIPBytes(), 17, uint16(totalSz))
		sum := checksum.Internet(append(pseudo, buf[:totalSz]...))
		if sum == 0 {
			sum = 0xFFFF // RFC 768: a computed zero means "no checksum"
		}
		binary.BigEndian.PutUint16(buf[6:8], sum)
	}
	return nil
}
