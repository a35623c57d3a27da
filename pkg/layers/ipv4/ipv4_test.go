package ipv4

import (
	"testing"

	_ "github.com/adriancostin6/libtins/pkg/layers/udp"
)

func TestFromBytesRecoversUnparsedOnBadInner(t *testing.T) {
	payload := []byte{0x00, 0x43, 0x00, 0x44} // far short of UDP's 8-byte header
	buf := make([]byte, headerSize+len(payload))
	buf[0] = 0x45 // version 4, IHL 5
	buf[9] = 17   // protocol = UDP
	copy(buf[headerSize:], payload)

	ip, err := FromBytes(buf)
	if err != nil {
		t.Fatalf("FromBytes() error = %v, want nil (fail-soft on bad inner)", err)
	}
	if ip.Inner() != nil {
		t.Errorf("Inner() = %v, want nil for an undecodable UDP payload", ip.Inner())
	}
	if string(ip.Unparsed()) != string(payload) {
		t.Errorf("Unparsed() = %v, want %v", ip.Unparsed(), payload)
	}
}
