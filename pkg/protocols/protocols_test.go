// Tests here exercise the fully wired demultiplexer, so they belong
// next to the package whose only job is wiring it.
package protocols

import (
	"net"
	"testing"

	"github.com/adriancostin6/libtins/pkg/dhcp"
	"github.com/adriancostin6/libtins/pkg/layers/ipv4"
	"github.com/adriancostin6/libtins/pkg/layers/loopback"
	"github.com/adriancostin6/libtins/pkg/layers/udp"
	"github.com/adriancostin6/libtins/pkg/pdu"
)

func TestLoopbackIPv4UDPDHCPChain(t *testing.T) {
	lo := loopback.New(loopback.PFInet)
	ip := ipv4.New(ipv4.ProtoUDP, net.IPv4(192, 0, 2, 1), net.IPv4(192, 0, 2, 2))
	u := udp.New(udp.PortDHCPClient, udp.PortDHCPServer)
	d := dhcp.New()
	if err := d.AddMessageType(dhcp.Discover); err != nil {
		t.Fatalf("AddMessageType() error = %v", err)
	}

	u.SetInner(d)
	ip.SetInner(u)
	lo.SetInner(ip)

	input, err := lo.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	parsed, err := pdu.FromBytes(pdu.DLTNull, input)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}

	if found := pdu.Find(parsed, pdu.KindUDP); found == nil {
		t.Fatal("Find(KindUDP) = nil, want the outer UDP layer to be found")
	}

	again, err := pdu.Serialize(parsed)
	if err != nil {
		t.Fatalf("re-Serialize() error = %v", err)
	}
	if string(again) != string(input) {
		t.Errorf("re-serialize does not equal input:\ngot  %x\nwant %x", again, input)
	}
}

// DHCP reports Kind() as KindUDP rather than a distinct tag (§9 open
// question), specifically so that a chain assembled without an
// intervening UDP layer is still locatable via Find(chain, KindUDP).
func TestDHCPFoundAsUDPWithoutUDPLayer(t *testing.T) {
	ip := ipv4.New(ipv4.ProtoUDP, net.IPv4(192, 0, 2, 1), net.IPv4(192, 0, 2, 2))
	d := dhcp.New()
	ip.SetInner(d)

	found := pdu.Find(ip, pdu.KindUDP)
	if found == nil {
		t.Fatal("Find(KindUDP) = nil, want the DHCP PDU located via its UDP-convention kind")
	}
	if _, ok := found.(*dhcp.DHCP); !ok {
		t.Errorf("Find(KindUDP) = %T, want *dhcp.DHCP", found)
	}
}

func TestEthernetLoopbackLinkTypesWired(t *testing.T) {
	if _, err := pdu.FromBytes(pdu.DLTNull, []byte{0x02, 0x00, 0x00, 0x00}); err != nil {
		t.Errorf("FromBytes(DLTNull) error = %v", err)
	}
	if p, err := pdu.FromBytes(pdu.DLTEN10MB, make([]byte, 14)); err != nil || p.Kind() != pdu.KindEthernet {
		t.Errorf("FromBytes(DLTEN10MB) = %v, %v, want an Ethernet PDU, nil", p, err)
	}
}
