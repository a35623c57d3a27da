// Package dhcp implements BOOTP (RFC 951) and DHCP (RFC 2131/2132):
// the 236-byte BOOTP fixed header, the 4-byte magic cookie, and the
// DHCP option area built on pkg/options. This is the option-bearing
// PDU family detailed in spec.md §4.5.
package dhcp

import (
	"encoding/binary"
	"net"

	"github.com/adriancostin6/libtins/pkg/options"
	"github.com/adriancostin6/libtins/pkg/pdu"
	"github.com/adriancostin6/libtins/pkg/layers/udp"
)

// Message type values carried in option 53.
const (
	Discover uint8 = 1
	Offer    uint8 = 2
	Request  uint8 = 3
	Decline  uint8 = 4
	Ack      uint8 = 5
	Nak      uint8 = 6
	Release  uint8 = 7
	Inform   uint8 = 8
)

// BOOTP op codes.
const (
	OpBootRequest uint8 = 1
	OpBootReply   uint8 = 2
)

// Option codes the typed convenience helpers wrap.
const (
	OptSubnetMask        uint8 = 1
	OptRouters           uint8 = 3
	OptDomainNameServers uint8 = 6
	OptBroadcastAddress  uint8 = 28
	OptDomainName        uint8 = 15
	OptRequestedAddress  uint8 = 50
	OptLeaseTime         uint8 = 51
	OptMessageType       uint8 = 53
	OptServerIdentifier  uint8 = 54
)

const (
	magicCookie     uint32 = 0x63825363
	fixedHeaderSize        = 236 // op..file, RFC 951
	cookieSize             = 4
)

// DHCP is a BOOTP packet plus the DHCP magic cookie and option area.
type DHCP struct {
	pdu.Base

	op, htype, hlen, hops uint8
	xid                   uint32
	secs, flags           uint16
	ciaddr, yiaddr        [4]byte
	siaddr, giaddr        [4]byte
	chaddr                [16]byte
	sname                 [64]byte
	file                  [128]byte

	opts *options.List
}

func init() {
	ctor := func(buf []byte) (pdu.PDU, error) { return FromBytes(buf) }
	pdu.Register(pdu.KindUDP, uint32(udp.PortDHCPServer), ctor)
}

// New builds a BOOTREQUEST DHCP packet with an empty option list and
// no inner PDU.
func New() *DHCP {
	return &DHCP{op: OpBootRequest, htype: 1, hlen: 6, opts: options.NewDHCP()}
}

func (d *DHCP) Op() uint8     { return d.op }
func (d *DHCP) XID() uint32   { return d.xid }
func (d *DHCP) SetXID(x uint32) { d.xid = x }
func (d *DHCP) CIAddr() net.IP { return ipOf(d.ciaddr) }
func (d *DHCP) YIAddr() net.IP { return ipOf(d.yiaddr) }
func (d *DHCP) SetYIAddr(ip net.IP) { copy(d.yiaddr[:], ip.To4()) }
func (d *DHCP) SetCIAddr(ip net.IP) { copy(d.ciaddr[:], ip.To4()) }

// pdu_type() convention (§4.5, §9 open question): DHCP reports itself
// as KindUDP rather than a distinct DHCP kind so that find(chain,
// KindUDP) locates a DHCP PDU assembled without an intervening UDP
// layer. This conflates transport and application but is a
// deliberately preserved library convention, not a bug.
func (d *DHCP) Kind() pdu.Kind { return pdu.KindUDP }

func (d *DHCP) HeaderSize() uint32 {
	return fixedHeaderSize + cookieSize + uint32(len(d.opts.Serialize()))
}

func (d *DHCP) Order() pdu.WriteOrder { return pdu.PreOrder }
func (d *DHCP) Size() uint32          { return d.SizeOf(d) }
func (d *DHCP) SetInner(c pdu.PDU)    { d.AttachInner(d, c) }

// FromBytes decodes the BOOTP fixed header, validates the magic
// cookie, and parses the option area. DHCP has no inner PDU of its
// own — it is always the innermost layer.
func FromBytes(buf []byte) (*DHCP, error) {
	if len(buf) < fixedHeaderSize+cookieSize {
		return nil, pdu.ErrBufferTooShort
	}
	d := &DHCP{
		op:    buf[0],
		htype: buf[1],
		hlen:  buf[2],
		hops:  buf[3],
		xid:   binary.BigEndian.Uint32(buf[4:8]),
		secs:  binary.BigEndian.Uint16(buf[8:10]),
		flags: binary.BigEndian.Uint16(buf[10:12]),
	}
	copy(d.ciaddr[:], buf[12:16])
	copy(d.yiaddr[:], buf[16:20])
	copy(d.siaddr[:], buf[20:24])
	copy(d.giaddr[:], buf[24:28])
	copy(d.chaddr[:], buf[28:44])
	copy(d.sname[:], buf[44:108])
	copy(d.file[:], buf[108:236])

	cookie := binary.BigEndian.Uint32(buf[236:240])
	if cookie != magicCookie {
		return nil, pdu.ErrMalformedOption
	}

	d.opts = options.NewDHCP()
	if _, err := d.opts.Parse(buf[240:]); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DHCP) Clone() pdu.PDU {
	clone := *d
	clone.Base = pdu.Base{}
	clone.opts = d.opts.Clone()
	return &clone
}

func (d *DHCP) Serialize() ([]byte, error) { return pdu.Serialize(d) }

func (d *DHCP) WriteSerialization(buf []byte, totalSz uint32, _ pdu.PDU) error {
	if totalSz < fixedHeaderSize+cookieSize {
		return pdu.ErrBufferTooShort
	}
	buf[0], buf[1], buf[2], buf[3] = d.op, d.htype, d.hlen, d.hops
	binary.BigEndian.PutUint32(buf[4:8], d.xid)
	binary.BigEndian.PutUint16(buf[8:10], d.secs)
	binary.BigEndian.PutUint16(buf[10:12], d.flags)
	copy(buf[12:16], d.ciaddr[:])
	copy(buf[16:20], d.yiaddr[:])
	copy(buf[20:24], d.siaddr[:])
	copy(buf[24:28], d.giaddr[:])
	copy(buf[28:44], d.chaddr[:])
	copy(buf[44:108], d.sname[:])
	copy(buf[108:236], d.file[:])
	binary.BigEndian.PutUint32(buf[236:240], magicCookie)
	copy(buf[240:], d.opts.Serialize())
	return nil
}

func ipOf(b [4]byte) net.IP { return net.IPv4(b[0], b[1], b[2], b[3]) }

// --- option convenience helpers (§4.5: "thin adapters over the generic option API") ---

// AddMessageType sets option 53 to one of Discover..Inform.
func (d *DHCP) AddMessageType(t uint8) error { return d.opts.Add(OptMessageType, []byte{t}) }

// SearchMessageType returns option 53's value, or ErrNotFound.
func (d *DHCP) SearchMessageType() (uint8, error) {
	return options.Byte(d.opts, OptMessageType)
}

// AddRequestedAddress sets option 50.
func (d *DHCP) AddRequestedAddress(ip net.IP) error {
	return options.PutIPv4(d.opts, OptRequestedAddress, ip)
}

// SearchRequestedAddress returns option 50's value, or ErrNotFound.
func (d *DHCP) SearchRequestedAddress() (net.IP, error) {
	return options.IPv4(d.opts, OptRequestedAddress)
}

// AddServerIdentifier sets option 54.
func (d *DHCP) AddServerIdentifier(ip net.IP) error {
	return options.PutIPv4(d.opts, OptServerIdentifier, ip)
}

// SearchServerIdentifier returns option 54's value, or ErrNotFound.
func (d *DHCP) SearchServerIdentifier() (net.IP, error) {
	return options.IPv4(d.opts, OptServerIdentifier)
}

// AddLeaseTime sets option 51 (seconds).
func (d *DHCP) AddLeaseTime(seconds uint32) error {
	return options.PutUint32(d.opts, OptLeaseTime, seconds)
}

// SearchLeaseTime returns option 51's value, or ErrNotFound.
func (d *DHCP) SearchLeaseTime() (uint32, error) {
	return options.Uint32(d.opts, OptLeaseTime)
}

// AddSubnetMask sets option 1.
func (d *DHCP) AddSubnetMask(mask net.IP) error {
	return options.PutIPv4(d.opts, OptSubnetMask, mask)
}

// SearchSubnetMask returns option 1's value, or ErrNotFound.
func (d *DHCP) SearchSubnetMask() (net.IP, error) {
	return options.IPv4(d.opts, OptSubnetMask)
}

// AddRoutersOption sets option 3 to the given router addresses.
func (d *DHCP) AddRoutersOption(routers []net.IP) error {
	return addIPv4List(d, OptRouters, routers)
}

// SearchRoutersOption returns option 3's values, or ErrNotFound.
func (d *DHCP) SearchRoutersOption() ([]net.IP, error) {
	return options.IPv4List(d.opts, OptRouters)
}

// AddDNSOption sets option 6 to the given domain name server
// addresses.
func (d *DHCP) AddDNSOption(dns []net.IP) error {
	return addIPv4List(d, OptDomainNameServers, dns)
}

// SearchDNSOption returns option 6's values, or ErrNotFound.
func (d *DHCP) SearchDNSOption() ([]net.IP, error) {
	return options.IPv4List(d.opts, OptDomainNameServers)
}

// AddBroadcastOption sets option 28.
func (d *DHCP) AddBroadcastOption(addr net.IP) error {
	return options.PutIPv4(d.opts, OptBroadcastAddress, addr)
}

// SearchBroadcastOption returns option 28's value, or ErrNotFound.
func (d *DHCP) SearchBroadcastOption() (net.IP, error) {
	return options.IPv4(d.opts, OptBroadcastAddress)
}

// AddDomainName sets option 15.
func (d *DHCP) AddDomainName(name string) error {
	return d.opts.Add(OptDomainName, []byte(name))
}

// SearchDomainName returns option 15's value, or ErrNotFound.
func (d *DHCP) SearchDomainName() (string, error) {
	return options.String(d.opts, OptDomainName)
}

func addIPv4List(d *DHCP, code uint8, addrs []net.IP) error {
	value := make([]byte, 0, 4*len(addrs))
	for _, a := range addrs {
		v4 := a.To4()
		if v4 == nil {
			return pdu.ErrFieldOverflow
		}
		value = append(value, v4...)
	}
	return d.opts.Add(code, value)
}

// RawOption returns the raw entry for code, for callers that need an
// option this package has no typed helper for, or ErrNotFound.
func (d *DHCP) RawOption(code uint8) ([]byte, error) {
	e, found := d.opts.Get(code)
	if !found {
		return nil, pdu.ErrNotFound
	}
	return e.Value, nil
}

// AddOption appends an option this package has no typed helper for.
func (d *DHCP) AddOption(code uint8, value []byte) error {
	return d.opts.Add(code, value)
}
