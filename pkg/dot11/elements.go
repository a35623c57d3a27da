package dot11

import (
	"encoding/binary"
	"sort"

	"github.com/adriancostin6/libtins/pkg/tlv"
)

// Tagged element (tag) numbers this package decodes into typed views.
const (
	TagSSID                   uint8 = 0
	TagSupportedRates         uint8 = 1
	TagFHParameterSet         uint8 = 2
	TagDSParameterSet         uint8 = 3
	TagTIM                    uint8 = 5
	TagIBSSParameterSet       uint8 = 6
	TagCountry                uint8 = 7
	TagRequestInformation     uint8 = 10
	TagBSSLoad                uint8 = 11
	TagChallengeText          uint8 = 16
	TagPowerConstraint        uint8 = 32
	TagSupportedChannels      uint8 = 36
	TagChannelSwitch          uint8 = 37
	TagQuiet                  uint8 = 40
	TagERPInformation         uint8 = 42
	TagRSN                    uint8 = 48
	TagExtendedSupportedRates uint8 = 50
	TagPowerCapability        uint8 = 33
	TagTPCReport              uint8 = 35
	TagQoSCapability          uint8 = 46
)

// knownTags defines the canonical ascending-tag serialize order; tags
// outside this set are "unknown" and force insertion-order output.
var knownTags = map[uint8]bool{
	TagSSID: true, TagSupportedRates: true, TagFHParameterSet: true,
	TagDSParameterSet: true, TagTIM: true, TagIBSSParameterSet: true,
	TagCountry: true, TagRequestInformation: true, TagBSSLoad: true,
	TagChallengeText: true, TagPowerConstraint: true, TagSupportedChannels: true,
	TagChannelSwitch: true, TagQuiet: true, TagERPInformation: true,
	TagRSN: true, TagExtendedSupportedRates: true,
	TagPowerCapability: true, TagTPCReport: true, TagQoSCapability: true,
}

// ElementList is the tagged-element trailer of §4.4: same (tag,
// length, value) machinery as the option-list codec, but with no end
// sentinel — the list runs to the end of the buffer — and a
// canonical-order serializer that only yields to insertion order once
// an unrecognized tag has been added.
type ElementList struct {
	entries        []tlv.Entry
	unknownInjected bool
}

var codec = tlv.Codec{} // no EndCode, no PadCode: terminate at buffer exhaustion

// Parse replaces the list's contents with the elements decoded from
// buf, consuming it to the end.
func (l *ElementList) Parse(buf []byte) error {
	entries, _, err := codec.Parse(buf)
	if err != nil {
		return err
	}
	l.entries = entries
	for _, e := range entries {
		if !knownTags[e.Code] {
			l.unknownInjected = true
		}
	}
	return nil
}

// Serialize emits elements in tag-ascending order, unless an unknown
// tag has been added, in which case insertion order is preserved
// (§4.4: "the serializer emits in canonical order only if the caller
// has not injected unknown tags").
func (l *ElementList) Serialize() []byte {
	entries := l.entries
	if !l.unknownInjected {
		entries = append([]tlv.Entry(nil), l.entries...)
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	}
	return codec.Serialize(entries)
}

// Size returns the serialized byte length without allocating a buffer
// via Serialize, used by HeaderSize.
func (l *ElementList) Size() uint32 {
	size := 0
	for _, e := range l.entries {
		size += 2 + len(e.Value)
	}
	return uint32(size)
}

// Get returns the first element with the given tag.
func (l *ElementList) Get(tag uint8) (tlv.Entry, bool) { return tlv.First(l.entries, tag) }

// Add appends a new element. Tags outside knownTags flip the list to
// insertion-order serialization permanently.
func (l *ElementList) Add(tag uint8, value []byte) {
	l.entries = append(l.entries, tlv.Entry{Code: tag, Value: append([]byte(nil), value...)})
	if !knownTags[tag] {
		l.unknownInjected = true
	}
}

// Clone deep-copies the list.
func (l *ElementList) Clone() *ElementList {
	out := &ElementList{unknownInjected: l.unknownInjected}
	out.entries = make([]tlv.Entry, len(l.entries))
	for i, e := range l.entries {
		out.entries[i] = tlv.Entry{Code: e.Code, Value: append([]byte(nil), e.Value...)}
	}
	return out
}

// SSID returns the decoded TagSSID element as a string.
func (l *ElementList) SSID() (string, bool) {
	e, ok := l.Get(TagSSID)
	if !ok {
		return "", false
	}
	return string(e.Value), true
}

// SupportedRate is one rate entry: Mbps, and whether it is a basic
// (mandatory) rate per the high bit of the on-wire byte.
type SupportedRate struct {
	Mbps  float64
	Basic bool
}

// SupportedRates decodes TagSupportedRates: each byte's high bit is
// the basic-rate flag, the low 7 bits are the rate in 500 kbps units.
func (l *ElementList) SupportedRates() ([]SupportedRate, bool) {
	return decodeRates(l, TagSupportedRates)
}

// ExtendedSupportedRates decodes TagExtendedSupportedRates, the
// overflow element used once a BSS advertises more rates than fit in
// TagSupportedRates. Same byte encoding as SupportedRates.
func (l *ElementList) ExtendedSupportedRates() ([]SupportedRate, bool) {
	return decodeRates(l, TagExtendedSupportedRates)
}

func decodeRates(l *ElementList, tag uint8) ([]SupportedRate, bool) {
	e, ok := l.Get(tag)
	if !ok {
		return nil, false
	}
	rates := make([]SupportedRate, len(e.Value))
	for i, b := range e.Value {
		rates[i] = SupportedRate{
			Mbps:  float64(b&0x7F) * 0.5,
			Basic: b&0x80 != 0,
		}
	}
	return rates, true
}

// DSParameterSet decodes TagDSParameterSet: the single-byte current
// channel number.
func (l *ElementList) DSParameterSet() (uint8, bool) {
	e, ok := l.Get(TagDSParameterSet)
	if !ok || len(e.Value) < 1 {
		return 0, false
	}
	return e.Value[0], true
}

// FHParams is the decoded TagFHParameterSet element.
type FHParams struct {
	DwellTime  uint16
	HopSet     uint8
	HopPattern uint8
	HopIndex   uint8
}

// FHParameterSet decodes TagFHParameterSet.
func (l *ElementList) FHParameterSet() (FHParams, bool) {
	e, ok := l.Get(TagFHParameterSet)
	if !ok || len(e.Value) < 5 {
		return FHParams{}, false
	}
	return FHParams{
		DwellTime:  binary.LittleEndian.Uint16(e.Value[0:2]),
		HopSet:     e.Value[2],
		HopPattern: e.Value[3],
		HopIndex:   e.Value[4],
	}, true
}

// IBSSParameterSet decodes TagIBSSParameterSet: the 2-byte ATIM
// window.
func (l *ElementList) IBSSParameterSet() (uint16, bool) {
	e, ok := l.Get(TagIBSSParameterSet)
	if !ok || len(e.Value) < 2 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(e.Value[0:2]), true
}

// RequestInformation decodes TagRequestInformation: a list of element
// tag numbers the station requested from the responder.
func (l *ElementList) RequestInformation() ([]uint8, bool) {
	e, ok := l.Get(TagRequestInformation)
	if !ok {
		return nil, false
	}
	return append([]uint8(nil), e.Value...), true
}

// BSSLoadInfo is the decoded TagBSSLoad element.
type BSSLoadInfo struct {
	StationCount              uint16
	ChannelUtilization        uint8
	AvailableAdmissionCapacity uint16
}

// BSSLoad decodes TagBSSLoad.
func (l *ElementList) BSSLoad() (BSSLoadInfo, bool) {
	e, ok := l.Get(TagBSSLoad)
	if !ok || len(e.Value) < 5 {
		return BSSLoadInfo{}, false
	}
	return BSSLoadInfo{
		StationCount:               binary.LittleEndian.Uint16(e.Value[0:2]),
		ChannelUtilization:         e.Value[2],
		AvailableAdmissionCapacity: binary.LittleEndian.Uint16(e.Value[3:5]),
	}, true
}

// ChallengeText decodes TagChallengeText as a string.
func (l *ElementList) ChallengeText() (string, bool) {
	e, ok := l.Get(TagChallengeText)
	if !ok {
		return "", false
	}
	return string(e.Value), true
}

// PowerConstraint decodes TagPowerConstraint: the single-byte local
// power constraint, in dB.
func (l *ElementList) PowerConstraint() (uint8, bool) {
	e, ok := l.Get(TagPowerConstraint)
	if !ok || len(e.Value) < 1 {
		return 0, false
	}
	return e.Value[0], true
}

// ChannelRange is one (first channel, channel count) pair of a
// TagSupportedChannels element.
type ChannelRange struct {
	FirstChannel uint8
	NumChannels  uint8
}

// SupportedChannels decodes TagSupportedChannels.
func (l *ElementList) SupportedChannels() ([]ChannelRange, bool) {
	e, ok := l.Get(TagSupportedChannels)
	if !ok {
		return nil, false
	}
	var out []ChannelRange
	for i := 0; i+2 <= len(e.Value); i += 2 {
		out = append(out, ChannelRange{FirstChannel: e.Value[i], NumChannels: e.Value[i+1]})
	}
	return out, true
}

// ChannelSwitchInfo is the decoded TagChannelSwitch element.
type ChannelSwitchInfo struct {
	SwitchMode  uint8
	NewChannel  uint8
	SwitchCount uint8
}

// ChannelSwitch decodes TagChannelSwitch.
func (l *ElementList) ChannelSwitch() (ChannelSwitchInfo, bool) {
	e, ok := l.Get(TagChannelSwitch)
	if !ok || len(e.Value) < 3 {
		return ChannelSwitchInfo{}, false
	}
	return ChannelSwitchInfo{SwitchMode: e.Value[0], NewChannel: e.Value[1], SwitchCount: e.Value[2]}, true
}

// QuietInfo is the decoded TagQuiet element.
type QuietInfo struct {
	Count    uint8
	Period   uint8
	Duration uint16
	Offset   uint16
}

// Quiet decodes TagQuiet.
func (l *ElementList) Quiet() (QuietInfo, bool) {
	e, ok := l.Get(TagQuiet)
	if !ok || len(e.Value) < 6 {
		return QuietInfo{}, false
	}
	return QuietInfo{
		Count:    e.Value[0],
		Period:   e.Value[1],
		Duration: binary.LittleEndian.Uint16(e.Value[2:4]),
		Offset:   binary.LittleEndian.Uint16(e.Value[4:6]),
	}, true
}

// ERPInformation decodes TagERPInformation: the single-byte ERP flags
// byte.
func (l *ElementList) ERPInformation() (uint8, bool) {
	e, ok := l.Get(TagERPInformation)
	if !ok || len(e.Value) < 1 {
		return 0, false
	}
	return e.Value[0], true
}

// PowerCapabilityInfo is the decoded TagPowerCapability element: the
// station's minimum and maximum transmit power, in dBm.
type PowerCapabilityInfo struct {
	MinTxPower uint8
	MaxTxPower uint8
}

// PowerCapability decodes TagPowerCapability.
func (l *ElementList) PowerCapability() (PowerCapabilityInfo, bool) {
	e, ok := l.Get(TagPowerCapability)
	if !ok || len(e.Value) < 2 {
		return PowerCapabilityInfo{}, false
	}
	return PowerCapabilityInfo{MinTxPower: e.Value[0], MaxTxPower: e.Value[1]}, true
}

// TPCReportInfo is the decoded TagTPCReport element: the transmit
// power used to send the frame carrying it, and the measured link
// margin.
type TPCReportInfo struct {
	TxPower    uint8
	LinkMargin uint8
}

// TPCReport decodes TagTPCReport.
func (l *ElementList) TPCReport() (TPCReportInfo, bool) {
	e, ok := l.Get(TagTPCReport)
	if !ok || len(e.Value) < 2 {
		return TPCReportInfo{}, false
	}
	return TPCReportInfo{TxPower: e.Value[0], LinkMargin: e.Value[1]}, true
}

// QoSCapability decodes TagQoSCapability: the single-byte QoS info
// field.
func (l *ElementList) QoSCapability() (uint8, bool) {
	e, ok := l.Get(TagQoSCapability)
	if !ok || len(e.Value) < 1 {
		return 0, false
	}
	return e.Value[0], true
}

// CountryTriple is one (first_channel, number_channels, max_txpower)
// entry of a country element.
type CountryTriple struct {
	FirstChannel  uint8
	NumChannels   uint8
	MaxTxPowerDBm uint8
}

// CountryInfo is the decoded TagCountry element: a 3-byte country code
// followed by a sequence of channel triples.
type CountryInfo struct {
	Country string
	Triples []CountryTriple
}

// Country decodes TagCountry (§4.4).
func (l *ElementList) Country() (CountryInfo, bool) {
	e, ok := l.Get(TagCountry)
	if !ok || len(e.Value) < 3 {
		return CountryInfo{}, false
	}
	info := CountryInfo{Country: string(e.Value[:3])}
	rest := e.Value[3:]
	for i := 0; i+3 <= len(rest); i += 3 {
		info.Triples = append(info.Triples, CountryTriple{
			FirstChannel:  rest[i],
			NumChannels:   rest[i+1],
			MaxTxPowerDBm: rest[i+2],
		})
	}
	return info, true
}

// TIMInfo is the decoded TagTIM element (RFC/802.11 Traffic Indication
// Map).
type TIMInfo struct {
	DTIMCount          uint8
	DTIMPeriod         uint8
	BitmapControl      uint8
	PartialVirtualBitmap []byte
}

// TIM decodes TagTIM.
func (l *ElementList) TIM() (TIMInfo, bool) {
	e, ok := l.Get(TagTIM)
	if !ok || len(e.Value) < 3 {
		return TIMInfo{}, false
	}
	return TIMInfo{
		DTIMCount:            e.Value[0],
		DTIMPeriod:           e.Value[1],
		BitmapControl:        e.Value[2],
		PartialVirtualBitmap: append([]byte(nil), e.Value[3:]...),
	}, true
}

// RSNInfo is the decoded TagRSN element: version, group cipher suite,
// the pairwise and AKM suite lists, and the RSN capabilities field.
type RSNInfo struct {
	Version        uint16
	GroupSuiteOUI  [3]byte
	GroupSuiteType uint8
	PairwiseSuites [][4]byte
	AKMSuites      [][4]byte
	Capabilities   uint16
}

// RSN decodes TagRSN (IEEE 802.11-2012 §8.4.2.27).
func (l *ElementList) RSN() (RSNInfo, bool) {
	e, ok := l.Get(TagRSN)
	if !ok || len(e.Value) < 8 {
		return RSNInfo{}, false
	}
	v := e.Value
	info := RSNInfo{Version: binary.LittleEndian.Uint16(v[0:2])}
	copy(info.GroupSuiteOUI[:], v[2:5])
	info.GroupSuiteType = v[5]

	offset := 6
	if offset+2 > len(v) {
		return info, true
	}
	pairwiseCount := int(binary.LittleEndian.Uint16(v[offset : offset+2]))
	offset += 2
	for i := 0; i < pairwiseCount && offset+4 <= len(v); i++ {
		var suite [4]byte
		copy(suite[:], v[offset:offset+4])
		info.PairwiseSuites = append(info.PairwiseSuites, suite)
		offset += 4
	}

	if offset+2 > len(v) {
		return info, true
	}
	akmCount := int(binary.LittleEndian.Uint16(v[offset : offset+2]))
	offset += 2
	for i := 0; i < akmCount && offset+4 <= len(v); i++ {
		var suite [4]byte
		copy(suite[:], v[offset:offset+4])
		info.AKMSuites = append(info.AKMSuites, suite)
		offset += 4
	}

	if offset+2 <= len(v) {
		info.Capabilities = binary.LittleEndian.Uint16(v[offset : offset+2])
	}
	return info, true
}
