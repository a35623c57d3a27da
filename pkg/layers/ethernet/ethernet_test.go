package ethernet

import (
	"testing"

	_ "github.com/adriancostin6/libtins/pkg/layers/ipv4"
)

func TestFromBytesRecoversUnparsedOnBadInner(t *testing.T) {
	payload := []byte{0x45, 0x00, 0x00, 0x14} // far short of IPv4's 20-byte header
	buf := make([]byte, headerSize+len(payload))
	buf[12], buf[13] = 0x08, 0x00 // EtherType = IPv4
	copy(buf[headerSize:], payload)

	e, err := FromBytes(buf)
	if err != nil {
		t.Fatalf("FromBytes() error = %v, want nil (fail-soft on bad inner)", err)
	}
	if e.Inner() != nil {
		t.Errorf("Inner() = %v, want nil for an undecodable IPv4 payload", e.Inner())
	}
	if string(e.Unparsed()) != string(payload) {
		t.Errorf("Unparsed() = %v, want %v", e.Unparsed(), payload)
	}
}
