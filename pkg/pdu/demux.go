package pdu

// Constructor builds a PDU from a byte buffer that belongs entirely to
// it and its inner chain. It must not read beyond len(buf).
type Constructor func(buf []byte) (PDU, error)

// demuxKey identifies one row of the (parent kind, selector) -> child
// constructor table described in §4.2.
type demuxKey struct {
	parent   Kind
	selector uint32
}

// demuxTable is the closed, ordered dispatch table. It is populated
// exclusively by each protocol package's init() registering itself —
// the same registration-by-side-effect-import idiom the standard
// library uses for image and compression codecs — never mutated at
// request time.
var demuxTable = make(map[demuxKey]Constructor)

// Register adds a (parentKind, selector) -> constructor row to the
// demultiplexer table. It is meant to be called from a protocol
// package's init() function and panics on a duplicate registration,
// since that indicates two packages claiming the same selector.
func Register(parent Kind, selector uint32, ctor Constructor) {
	key := demuxKey{parent, selector}
	if _, exists := demuxTable[key]; exists {
		panic("pdu: duplicate demux registration for " + parent.String())
	}
	demuxTable[key] = ctor
}

// rawConstructor builds the catch-all RawPDU; it is injected by the
// layers/raw package at init time so that pkg/pdu itself stays free of
// a dependency on any concrete layer.
var rawConstructor Constructor

// RegisterRawConstructor installs the constructor used when a
// demultiplex lookup misses. Called once, from layers/raw's init().
func RegisterRawConstructor(ctor Constructor) {
	rawConstructor = ctor
}

// Demux looks up the constructor registered for (parent, selector) and
// runs it over buf. On a miss it builds a RawPDU holding buf verbatim
// — not an error (§4.2, §7 UnknownNextProtocol). On a hit whose
// constructor itself fails (e.g. ErrBufferTooShort), the failure
// propagates to the caller rather than being downgraded to Raw — this
// is the fail-soft-on-bad-inner, fail-hard-on-bad-outer-header design
// decision from §4.2.
func Demux(parent Kind, selector uint32, buf []byte) (PDU, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	if ctor, ok := demuxTable[demuxKey{parent, selector}]; ok {
		return ctor(buf)
	}
	if rawConstructor == nil {
		return nil, nil
	}
	return rawConstructor(buf)
}

// DLT is a data-link-type hint identifying the outermost framing of a
// captured or synthetic packet (the libpcap DLT_* constant space).
type DLT uint32

const (
	DLTEN10MB    DLT = 1
	DLTRaw       DLT = 101
	DLTLinuxSLL  DLT = 113
	DLTIEEE80211 DLT = 105
	DLTNull      DLT = 0
)

// outerTable maps a DLT hint to the constructor for the outermost PDU.
var outerTable = make(map[DLT]Constructor)

// RegisterDLT installs the outermost constructor for a DLT hint.
// Called from the owning layer package's init().
func RegisterDLT(dlt DLT, ctor Constructor) {
	outerTable[dlt] = ctor
}

// FromBytes builds the outermost PDU (and, recursively, its full inner
// chain) for buf, using dlt to select the outermost constructor. It is
// the library's single entry point for parsing a captured frame.
func FromBytes(dlt DLT, buf []byte) (PDU, error) {
	ctor, ok := outerTable[dlt]
	if !ok {
		if rawConstructor == nil {
			return nil, ErrBufferTooShort
		}
		return rawConstructor(buf)
	}
	return ctor(buf)
}
