package udp_test

import (
	"testing"

	_ "github.com/adriancostin6/libtins/pkg/dhcp"
	"github.com/adriancostin6/libtins/pkg/layers/udp"
)

const headerSize = 8

func TestFromBytesRecoversUnparsedOnBadInner(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5} // far short of DHCP's 240-byte minimum
	buf := make([]byte, headerSize+len(payload))
	buf[0], buf[1] = 0, 68 // srcPort = 68, a DHCP well-known port
	buf[2], buf[3] = 0, 67 // dstPort = 67
	copy(buf[headerSize:], payload)

	u, err := udp.FromBytes(buf)
	if err != nil {
		t.Fatalf("FromBytes() error = %v, want nil (fail-soft on bad inner)", err)
	}
	if u.Inner() != nil {
		t.Errorf("Inner() = %v, want nil for an undecodable DHCP payload", u.Inner())
	}
	if string(u.Unparsed()) != string(payload) {
		t.Errorf("Unparsed() = %v, want %v", u.Unparsed(), payload)
	}
}
