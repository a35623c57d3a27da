// Package arp implements the ARP PDU for Ethernet+IPv4 resolution
// (RFC 826), adapted from the teacher repo's flat ARPHeader parser
// into a chain-linked PDU with no inner layer.
package arp

import (
	"encoding/binary"
	"net"

	"github.com/adriancostin6/libtins/pkg/pdu"
)

// Operation codes.
const (
	Request uint16 = 1
	Reply   uint16 = 2
)

const headerSize = 28 // 8 fixed bytes + Ethernet hardware (6) and IPv4 protocol (4) addresses, both directions

// ARP is the Ethernet/IPv4 ARP header. It never has an inner PDU.
type ARP struct {
	pdu.Base
	hardwareType uint16
	protocolType uint16
	hwAddrLen    uint8
	protoAddrLen uint8
	operation    uint16
	srcMAC       [6]byte
	srcIP        [4]byte
	dstMAC       [6]byte
	dstIP        [4]byte
}

func init() {
	pdu.Register(pdu.KindEthernet, 0x0806, func(buf []byte) (pdu.PDU, error) {
		return FromBytes(buf)
	})
}

// New builds an ARP PDU for the given operation and addresses, with
// Ethernet/IPv4 hardware/protocol type and length fields pre-filled.
func New(op uint16, srcMAC net.HardwareAddr, srcIP net.IP, dstMAC net.HardwareAddr, dstIP net.IP) *ARP {
	a := &ARP{
		hardwareType: 1,
		protocolType: 0x0800,
		hwAddrLen:    6,
		protoAddrLen: 4,
		operation:    op,
	}
	copy(a.srcMAC[:], srcMAC)
	copy(a.srcIP[:], srcIP.To4())
	copy(a.dstMAC[:], dstMAC)
	copy(a.dstIP[:], dstIP.To4())
	return a
}

func (a *ARP) Operation() uint16       { return a.operation }
func (a *ARP) SetOperation(op uint16)  { a.operation = op }
func (a *ARP) SrcMAC() net.HardwareAddr { return append(net.HardwareAddr(nil), a.srcMAC[:]...) }
func (a *ARP) DstMAC() net.HardwareAddr { return append(net.HardwareAddr(nil), a.dstMAC[:]...) }
func (a *ARP) SrcIP() net.IP           { return net.IPv4(a.srcIP[0], a.srcIP[1], a.srcIP[2], a.srcIP[3]) }
func (a *ARP) DstIP() net.IP           { return net.IPv4(a.dstIP[0], a.dstIP[1], a.dstIP[2], a.dstIP[3]) }

// FromBytes decodes the 28-byte Ethernet/IPv4 ARP body.
func FromBytes(buf []byte) (*ARP, error) {
	if len(buf) < headerSize {
		return nil, pdu.ErrBufferTooShort
	}
	a := &ARP{
		hardwareType: binary.BigEndian.Uint16(buf[0:2]),
		protocolType: binary.BigEndian.Uint16(buf[2:4]),
		hwAddrLen:    buf[4],
		protoAddrLen: buf[5],
		operation:    binary.BigEndian.Uint16(buf[6:8]),
	}
	copy(a.srcMAC[:], buf[8:14])
	copy(a.srcIP[:], buf[14:18])
	copy(a.dstMAC[:], buf[18:24])
	copy(a.dstIP[:], buf[24:28])
	return a, nil
}

func (a *ARP) Kind() pdu.Kind        { return pdu.KindARP }
func (a *ARP) HeaderSize() uint32    { return headerSize }
func (a *ARP) Order() pdu.WriteOrder { return pdu.PreOrder }
func (a *ARP) Size() uint32          { return a.SizeOf(a) }
func (a *ARP) SetInner(c pdu.PDU)    { a.AttachInner(a, c) }

func (a *ARP) Clone() pdu.PDU {
	clone := *a
	clone.Base = pdu.Base{}
	return &clone
}

func (a *ARP) Serialize() ([]byte, error) { return pdu.Serialize(a) }

func (a *ARP) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if totalSz < headerSize {
		return pdu.ErrBufferTooShort
	}
	binary.BigEndian.PutUint16(buf[0:2], a.hardwareType)
	binary.BigEndian.PutUint16(buf[2:4], a.protocolType)
	buf[4] = a.hwAddrLen
	buf[5] = a.protoAddrLen
	binary.BigEndian.PutUint16(buf[6:8], a.operation)
	copy(buf[8:14], a.srcMAC[:])
	copy(buf[14:18], a.srcIP[:])
	copy(buf[18:24], a.dstMAC[:])
	copy(buf[24:28], a.dstIP[:])
	return nil
}
