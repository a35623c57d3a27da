package options

import (
	"errors"
	"net"
	"testing"

	"github.com/adriancostin6/libtins/pkg/pdu"
)

func TestDHCPOptionRoundTrip(t *testing.T) {
	l := NewDHCP()
	if err := l.Add(53, []byte{3}); err != nil {
		t.Fatalf("Add(53) error = %v", err)
	}
	if err := PutIPv4(l, 50, net.IPv4(192, 0, 2, 5)); err != nil {
		t.Fatalf("PutIPv4(50) error = %v", err)
	}

	out := l.Serialize()

	parsed := NewDHCP()
	if _, err := parsed.Parse(out); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	msgType, err := Byte(parsed, 53)
	if err != nil || msgType != 3 {
		t.Errorf("Byte(53) = %d, %v, want 3, nil", msgType, err)
	}

	addr, err := IPv4(parsed, 50)
	if err != nil || !addr.Equal(net.IPv4(192, 0, 2, 5)) {
		t.Errorf("IPv4(50) = %v, %v, want 192.0.2.5, nil", addr, err)
	}
}

func TestByteNotFound(t *testing.T) {
	l := NewDHCP()
	if _, err := Byte(l, 53); !errors.Is(err, pdu.ErrNotFound) {
		t.Errorf("Byte() error = %v, want ErrNotFound", err)
	}
}

func TestOptionOrderPreserved(t *testing.T) {
	l := NewDHCP()
	l.Add(1, []byte{0xAA})
	l.Add(3, []byte{0xBB})
	l.Add(6, []byte{0xCC})

	out := l.Serialize()
	parsed := NewDHCP()
	parsed.Parse(out)

	var codes []uint8
	for _, e := range parsed.Entries() {
		codes = append(codes, e.Code)
	}
	want := []uint8{1, 3, 6}
	if len(codes) != len(want) {
		t.Fatalf("Entries() = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("Entries()[%d] = %d, want %d", i, codes[i], want[i])
		}
	}
}

func TestAddRejectsOverlongValue(t *testing.T) {
	l := New(nil, nil, 0)
	if err := l.Add(1, make([]byte, 256)); err == nil {
		t.Error("Add() error = nil, want ErrOptionTooLarge for a 256-byte value")
	}
}

func TestAddRejectsOverMaxBytes(t *testing.T) {
	l := New(nil, nil, 4)
	if err := l.Add(1, []byte{1, 2, 3}); err == nil {
		t.Error("Add() error = nil, want ErrOptionTooLarge when exceeding maxBytes")
	}
}

func TestIPv4ListRejectsResidue(t *testing.T) {
	l := New(nil, nil, 0)
	l.Add(3, []byte{1, 2, 3}) // not a multiple of 4
	if _, err := IPv4List(l, 3); err == nil {
		t.Error("IPv4List() error = nil, want ErrMalformedOption for residue")
	}
}
