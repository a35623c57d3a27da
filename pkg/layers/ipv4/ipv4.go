// Package ipv4 implements the IPv4 header (RFC 791), the first of the
// two representative "generic length + next-protocol" PDU families
// spec.md calls out in §2/§4.5-4.7. Options are out of scope — every
// IPv4 PDU here is the fixed 20-byte header.
package ipv4

import (
	"encoding/binary"
	"net"

	"github.com/adriancostin6/libtins/pkg/checksum"
	"github.com/adriancostin6/libtins/pkg/pdu"
)

// IP protocol numbers this package demultiplexes by.
const (
	ProtoICMP uint8 = 1
	ProtoTCP  uint8 = 6
	ProtoUDP  uint8 = 17
)

const headerSize = 20

// IPv4 is the fixed 20-byte IPv4 header.
type IPv4 struct {
	pdu.Base
	version, ihl          uint8
	tos                   uint8
	totalLength           uint16
	identification        uint16
	flags                 uint8
	fragmentOffset        uint16
	ttl                   uint8
	protocol              uint8
	checksumField         uint16
	src, dst              [4]byte
	unparsed              []byte
}

func init() {
	pdu.Register(pdu.KindEthernet, 0x0800, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
	pdu.Register(pdu.KindLoopback, 2, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
}

// New builds an IPv4 header with protocol and addresses set, TTL
// defaulted to 64, and version/IHL fixed at 4/5 (no options). Length
// and checksum are stamped on serialize.
func New(protocol uint8, src, dst net.IP) *IPv4 {
	ip := &IPv4{version: 4, ihl: 5, ttl: 64, protocol: protocol}
	copy(ip.src[:], src.To4())
	copy(ip.dst[:], dst.To4())
	return ip
}

func (ip *IPv4) Protocol() uint8      { return ip.protocol }
func (ip *IPv4) SetProtocol(p uint8)  { ip.protocol = p }
func (ip *IPv4) TTL() uint8           { return ip.ttl }
func (ip *IPv4) SetTTL(t uint8)       { ip.ttl = t }
func (ip *IPv4) SrcIP() net.IP        { return net.IPv4(ip.src[0], ip.src[1], ip.src[2], ip.src[3]) }
func (ip *IPv4) DstIP() net.IP        { return net.IPv4(ip.dst[0], ip.dst[1], ip.dst[2], ip.dst[3]) }
func (ip *IPv4) SetSrcIP(a net.IP)    { copy(ip.src[:], a.To4()) }
func (ip *IPv4) SetDstIP(a net.IP)    { copy(ip.dst[:], a.To4()) }
func (ip *IPv4) TotalLength() uint16  { return ip.totalLength }
func (ip *IPv4) Checksum() uint16     { return ip.checksumField }
func (ip *IPv4) Identification() uint16 { return ip.identification }
func (ip *IPv4) SetIdentification(v uint16) { ip.identification = v }

// Unparsed returns the payload bytes left over when the inner PDU's
// constructor failed to decode them (§4.1). Nil unless that happened.
func (ip *IPv4) Unparsed() []byte { return ip.unparsed }

// SrcIPBytes/DstIPBytes expose the raw address bytes so that TCP/UDP —
// which must not import this package directly to keep the demux
// layering parent-agnostic (§4.2) — can build the checksum
// pseudo-header via a small structural interface instead.
func (ip *IPv4) SrcIPBytes() [4]byte { return ip.src }
func (ip *IPv4) DstIPBytes() [4]byte { return ip.dst }

// FromBytes decodes the 20-byte header (options, if IHL>5, are
// skipped and not preserved) and demultiplexes on the protocol field.
func FromBytes(buf []byte) (*IPv4, error) {
	if len(buf) < headerSize {
		return nil, pdu.ErrBufferTooShort
	}
	ip := &IPv4{
		version:        buf[0] >> 4,
		ihl:            buf[0] & 0x0F,
		tos:            buf[1],
		totalLength:    binary.BigEndian.Uint16(buf[2:4]),
		identification: binary.BigEndian.Uint16(buf[4:6]),
		flags:          buf[6] >> 5,
		fragmentOffset: binary.BigEndian.Uint16(buf[6:8]) & 0x1FFF,
		ttl:            buf[8],
		protocol:       buf[9],
		checksumField:  binary.BigEndian.Uint16(buf[10:12]),
	}
	copy(ip.src[:], buf[12:16])
	copy(ip.dst[:], buf[16:20])

	optionsLen := int(ip.ihl)*4 - headerSize
	rest := buf[headerSize:]
	if optionsLen > 0 && optionsLen <= len(rest) {
		rest = rest[optionsLen:]
	}
	if len(rest) == 0 {
		return ip, nil
	}
	inner, err := pdu.Demux(pdu.KindIPv4, uint32(ip.protocol), rest)
	if err != nil {
		ip.unparsed = append([]byte(nil), rest...)
		return ip, nil // fail-soft on bad inner, §4.2
	}
	if inner != nil {
		ip.SetInner(inner)
	}
	return ip, nil
}

func (ip *IPv4) Kind() pdu.Kind        { return pdu.KindIPv4 }
func (ip *IPv4) HeaderSize() uint32    { return headerSize }
func (ip *IPv4) Order() pdu.WriteOrder { return pdu.PreOrder }
func (ip *IPv4) Size() uint32          { return ip.SizeOf(ip) }
func (ip *IPv4) SetInner(c pdu.PDU)    { ip.AttachInner(ip, c) }

func (ip *IPv4) Clone() pdu.PDU {
	clone := *ip
	clone.Base = pdu.Base{}
	if inner := ip.Inner(); inner != nil {
		clone.SetInner(inner.Clone())
	}
	return &clone
}

func (ip *IPv4) Serialize() ([]byte, error) { return pdu.Serialize(ip) }

// nextProtocolTable maps an inner PDU's Kind to the IP protocol number
// this layer stamps when the caller hasn't set Protocol explicitly.
var nextProtocolTable = map[pdu.Kind]uint8{
	pdu.KindTCP:  ProtoTCP,
	pdu.KindUDP:  ProtoUDP,
	pdu.KindICMP: ProtoICMP,
}

// WriteSerialization stamps TotalLength from totalSz (the driver
// already sized buf to header+payload) and computes the header
// checksum over the just-written header. IPv4's checksum covers only
// its own 20 bytes, never the payload, so unlike TCP/UDP it can write
// PreOrder: every byte the checksum depends on is already known when
// this method runs.
func (ip *IPv4) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if totalSz < headerSize {
		return pdu.ErrBufferTooShort
	}
	protocol := ip.protocol
	if protocol == 0 {
		if inner := ip.Inner(); inner != nil {
			if p, ok := nextProtocolTable[inner.Kind()]; ok {
				protocol = p
			}
		}
	}

	version := ip.version
	if version == 0 {
		version = 4
	}
	ihl := ip.ihl
	if ihl == 0 {
		ihl = 5
	}

	buf[0] = (version << 4) | (ihl & 0x0F)
	buf[1] = ip.tos
	binary.BigEndian.PutUint16(buf[2:4], uint16(totalSz))
	binary.BigEndian.PutUint16(buf[4:6], ip.identification)
	flagsAndOffset := (uint16(ip.flags) << 13) | (ip.fragmentOffset & 0x1FFF)
	binary.BigEndian.PutUint16(buf[6:8], flagsAndOffset)
	buf[8] = ip.ttl
	buf[9] = protocol
	buf[10], buf[11] = 0, 0 // checksum computed below
	copy(buf[12:16], ip.src[:])
	copy(buf[16:20], ip.dst[:])

	csum := checksum.Internet(buf[:headerSize])
	binary.BigEndian.PutUint16(buf[10:12], csum)
	return nil
}
