package pdu_test

import (
	"testing"

	"github.com/adriancostin6/libtins/pkg/layers/raw"
	"github.com/adriancostin6/libtins/pkg/pdu"
)

func TestSizeAdditivity(t *testing.T) {
	inner := raw.New([]byte{1, 2, 3})
	outer := raw.New([]byte{4, 5})
	outer.SetInner(inner)

	if got, want := outer.Size(), uint32(5); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	if got, want := outer.HeaderSize(), uint32(2); got != want {
		t.Errorf("HeaderSize() = %d, want %d", got, want)
	}
}

func TestFindByKind(t *testing.T) {
	inner := raw.New([]byte{1})
	outer := raw.New([]byte{2})
	outer.SetInner(inner)

	if got := pdu.Find(outer, pdu.KindRaw); got == nil {
		t.Fatal("Find(KindRaw) = nil, want non-nil")
	}
	if got := pdu.Find(outer, pdu.KindEthernet); got != nil {
		t.Errorf("Find(KindEthernet) = %v, want nil", got)
	}
}

func TestAttachTransfersOwnership(t *testing.T) {
	child := raw.New([]byte{9})
	firstParent := raw.New([]byte{1})
	secondParent := raw.New([]byte{2})

	firstParent.SetInner(child)
	if firstParent.Inner() == nil {
		t.Fatal("firstParent.Inner() = nil after SetInner")
	}

	secondParent.SetInner(child)
	if firstParent.Inner() != nil {
		t.Errorf("firstParent.Inner() = %v, want nil after child reattached", firstParent.Inner())
	}
	if secondParent.Inner() != pdu.PDU(child) {
		t.Errorf("secondParent.Inner() did not take ownership of child")
	}
	if child.Parent() != pdu.PDU(secondParent) {
		t.Errorf("child.Parent() = %v, want secondParent", child.Parent())
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	outer := raw.New([]byte{0xAA, 0xBB})
	inner := raw.New([]byte{0xCC, 0xDD, 0xEE})
	outer.SetInner(inner)

	out, err := outer.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	want := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE}
	if string(out) != string(want) {
		t.Errorf("Serialize() = %v, want %v", out, want)
	}
}

func TestCloneEquivalence(t *testing.T) {
	outer := raw.New([]byte{1, 2, 3})
	outer.SetInner(raw.New([]byte{4, 5}))

	clone := outer.Clone()
	if clone.Kind() != outer.Kind() {
		t.Errorf("clone.Kind() = %v, want %v", clone.Kind(), outer.Kind())
	}

	origBytes, _ := outer.Serialize()
	cloneBytes, _ := pdu.Serialize(clone)
	if string(origBytes) != string(cloneBytes) {
		t.Errorf("clone.Serialize() = %v, want %v", cloneBytes, origBytes)
	}

	// Mutating the clone's inner payload must not affect the original.
	clone.(*raw.Raw).Inner().(*raw.Raw).SetPayload([]byte{0xFF})
	mutatedBytes, _ := outer.Serialize()
	if string(mutatedBytes) != string(origBytes) {
		t.Errorf("mutating clone affected original: got %v, want %v", mutatedBytes, origBytes)
	}
}

func TestKindString(t *testing.T) {
	if got := pdu.KindDHCP.String(); got != "DHCP" {
		t.Errorf("KindDHCP.String() = %q, want %q", got, "DHCP")
	}
	if got := pdu.Kind(9999).String(); got != "UNKNOWN" {
		t.Errorf("unregistered Kind.String() = %q, want %q", got, "UNKNOWN")
	}
}
