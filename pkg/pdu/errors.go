package pdu

import "errors"

// Sentinel errors returned by PDU constructors, setters and the
// option-list codecs. Callers should compare with errors.Is rather
// than matching on message text.
var (
	// ErrBufferTooShort is returned by a byte-buffer constructor when the
	// supplied buffer is smaller than the protocol's minimum header size.
	ErrBufferTooShort = errors.New("pdu: buffer too short")

	// ErrFieldOverflow is returned by a setter whose argument does not fit
	// the protocol's encoded field width.
	ErrFieldOverflow = errors.New("pdu: field overflow")

	// ErrMalformedOption is returned when an option or tagged element's
	// declared length is inconsistent with its expected encoding.
	ErrMalformedOption = errors.New("pdu: malformed option")

	// ErrTruncatedOption is returned when an option's declared length
	// exceeds the remaining buffer.
	ErrTruncatedOption = errors.New("pdu: truncated option")

	// ErrOptionTooLarge is returned when adding an option would exceed
	// 255 bytes of value or the protocol's declared maximum option area.
	ErrOptionTooLarge = errors.New("pdu: option too large")

	// ErrNotFound is the generic search-miss sentinel for typed option
	// lookups that return (value, error). Lookups that return
	// (value, bool), such as the 802.11 element views, report a miss
	// through the bool instead.
	ErrNotFound = errors.New("pdu: not found")
)
