// Package pdu defines the core PDU (protocol data unit) contract: the
// polymorphic interface every protocol body implements, the
// chain-of-PDUs linkage, and the two-pass serialization driver that
// walks that chain. It performs no I/O of its own — callers hand it
// byte buffers and get byte buffers back.
package pdu

// WriteOrder tells the serialization driver whether a layer may write
// its header before its inner PDU has been serialized (PreOrder), or
// must wait until the inner PDU's bytes already sit in the buffer
// because the header depends on the payload, e.g. a checksum
// (PostOrder).
type WriteOrder uint8

const (
	PreOrder WriteOrder = iota
	PostOrder
)

// PDU is the contract every protocol body implements. A PDU owns its
// inner PDU exclusively; attaching a PDU to a new parent detaches it
// from any previous one. parent is a non-owning back-reference used
// only during serialization.
type PDU interface {
	// Kind reports the runtime discriminator for this layer.
	Kind() Kind

	// HeaderSize returns the number of bytes this layer contributes,
	// excluding its inner PDU. It is a pure function of the layer's own
	// fields and never recurses into Inner.
	HeaderSize() uint32

	// Size returns HeaderSize() plus Inner().Size() if an inner PDU is
	// attached, or HeaderSize() alone otherwise.
	Size() uint32

	// Inner returns the attached child PDU, or nil if this is the
	// innermost layer.
	Inner() PDU

	// SetInner attaches child as this PDU's inner layer, detaching any
	// previously attached inner PDU and refreshing back-references.
	SetInner(child PDU)

	// Parent returns the enclosing PDU, or nil if this is the outermost
	// layer. The reference is non-owning.
	Parent() PDU

	// SetParent refreshes the non-owning back-reference. It is called by
	// SetInner and by the serialization driver; library users should not
	// need to call it directly.
	SetParent(parent PDU)

	// Clone returns a deep copy of this layer and its inner chain, with
	// fresh, independent back-references.
	Clone() PDU

	// Order reports whether this layer's header may be written before
	// (PreOrder) or must be written after (PostOrder) its inner PDU has
	// been serialized into the buffer.
	Order() WriteOrder

	// WriteSerialization writes this layer's header into buf[:HeaderSize()].
	// totalSz is the size of buf, i.e. HeaderSize()+payload. parent is the
	// enclosing PDU (nil if this is the outermost layer) so that a layer
	// can stamp fields — next-protocol, length — that depend on the
	// parent/child relationship. It is an engine-internal method; callers
	// should use Serialize instead.
	WriteSerialization(buf []byte, totalSz uint32, parent PDU) error
}

// Serialize allocates a buffer of Size() bytes and runs the
// serialization driver over the chain rooted at p. It is valid to call
// on any layer of a chain; called on an inner layer it serializes only
// the suffix from that layer inward.
func Serialize(p PDU) ([]byte, error) {
	total := p.Size()
	buf := make([]byte, total)
	if err := writeChain(p, buf, p.Parent()); err != nil {
		return nil, err
	}
	return buf, nil
}

// writeChain implements the two-pass write algorithm of §4.6: pre-order
// layers write their header immediately and then recurse into the
// inner PDU's sub-buffer; post-order layers recurse first so that their
// header — typically a checksum — can be computed over the
// already-written suffix.
func writeChain(p PDU, buf []byte, parent PDU) error {
	headerSize := p.HeaderSize()
	if uint32(len(buf)) < headerSize {
		return ErrBufferTooShort
	}

	inner := p.Inner()
	switch p.Order() {
	case PostOrder:
		if inner != nil {
			if err := writeChain(inner, buf[headerSize:], p); err != nil {
				return err
			}
		}
		return p.WriteSerialization(buf, uint32(len(buf)), parent)
	default: // PreOrder
		if err := p.WriteSerialization(buf, uint32(len(buf)), parent); err != nil {
			return err
		}
		if inner != nil {
			return writeChain(inner, buf[headerSize:], p)
		}
		return nil
	}
}

// Find walks the chain rooted at p (p itself, then Inner(), then
// Inner().Inner(), ...) and returns the outermost PDU whose Kind
// equals k, or nil if the chain has none.
func Find(p PDU, k Kind) PDU {
	for cur := p; cur != nil; cur = cur.Inner() {
		if cur.Kind() == k {
			return cur
		}
	}
	return nil
}
