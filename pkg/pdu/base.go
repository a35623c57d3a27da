package pdu

// Base implements the chain-linkage machinery that every concrete PDU
// needs. Embed it by value in a layer struct (as *Layer, so its
// pointer-receiver methods are promoted) and it satisfies Inner,
// Parent and SetParent outright. Size and SetInner need to know the
// concrete layer's own HeaderSize, so each layer forwards to SizeOf
// and AttachInner with itself as the self argument:
//
//	func (e *Ethernet) Size() uint32          { return e.SizeOf(e) }
//	func (e *Ethernet) SetInner(c pdu.PDU)    { e.AttachInner(e, c) }
type Base struct {
	inner  PDU
	parent PDU
}

// Inner returns the attached child PDU, or nil.
func (b *Base) Inner() PDU { return b.inner }

// Parent returns the non-owning back-reference to the enclosing PDU.
func (b *Base) Parent() PDU { return b.parent }

// SetParent refreshes the non-owning back-reference.
func (b *Base) SetParent(parent PDU) { b.parent = parent }

// clearInnerIfEqual lets a former parent release ownership of child
// during SetInner without a type switch over every concrete PDU.
func (b *Base) clearInnerIfEqual(child PDU) {
	if b.inner == child {
		b.inner = nil
	}
}

// SizeOf returns self.HeaderSize() plus the inner PDU's Size(), or
// self.HeaderSize() alone when there is no inner PDU.
func (b *Base) SizeOf(self PDU) uint32 {
	if b.inner == nil {
		return self.HeaderSize()
	}
	return self.HeaderSize() + b.inner.Size()
}

// AttachInner implements SetInner: it detaches child from any prior
// parent, attaches it as self's inner PDU, drops self's previous
// inner PDU's back-reference, and sets child's parent to self.
func (b *Base) AttachInner(self PDU, child PDU) {
	if b.inner != nil {
		b.inner.SetParent(nil)
	}
	if child != nil {
		if prevParent := child.Parent(); prevParent != nil {
			if releaser, ok := prevParent.(interface{ clearInnerIfEqual(PDU) }); ok {
				releaser.clearInnerIfEqual(child)
			}
		}
		child.SetParent(self)
	}
	b.inner = child
}
