package loopback

import (
	"testing"

	_ "github.com/adriancostin6/libtins/pkg/layers/ipv4"
	_ "github.com/adriancostin6/libtins/pkg/layers/raw"
)

func TestFromBytesTruncated(t *testing.T) {
	if _, err := FromBytes([]byte{0x02, 0x00, 0x00}); err == nil {
		t.Fatal("FromBytes() error = nil, want ErrBufferTooShort for a 3-byte buffer")
	}
}

func TestFromBytesUnknownFamily(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x01, 0x02, 0x03}
	l, err := FromBytes(buf)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if l.Family() != 0xFFFFFFFF {
		t.Errorf("Family() = %#x, want 0xFFFFFFFF", l.Family())
	}
	if l.Inner() == nil {
		t.Fatal("Inner() = nil, want a RawPDU holding the trailing bytes")
	}
}

func TestFromBytesRecoversUnparsedOnBadInner(t *testing.T) {
	payload := []byte{0x45, 0x00, 0x00, 0x14} // far short of IPv4's 20-byte header
	buf := append([]byte{0x02, 0x00, 0x00, 0x00}, payload...)

	l, err := FromBytes(buf)
	if err != nil {
		t.Fatalf("FromBytes() error = %v, want nil (fail-soft on bad inner)", err)
	}
	if l.Inner() != nil {
		t.Errorf("Inner() = %v, want nil for an undecodable IPv4 payload", l.Inner())
	}
	if string(l.Unparsed()) != string(payload) {
		t.Errorf("Unparsed() = %v, want %v", l.Unparsed(), payload)
	}
}

func TestFamilyRoundTrip(t *testing.T) {
	l := New(PFInet)
	out, err := l.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	parsed, err := FromBytes(out)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if parsed.Family() != PFInet {
		t.Errorf("Family() = %d, want %d", parsed.Family(), PFInet)
	}
}
