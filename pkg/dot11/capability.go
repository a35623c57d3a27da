package dot11

// Capabilities is the 16-bit capability information field carried by
// Beacon and ProbeResponse bodies. Bit order is fixed by the standard;
// Reserved (bit 12) has no accessor.
type Capabilities uint16

const (
	capESS uint16 = 1 << iota
	capIBSS
	capCFPollable
	capCFPollRequest
	capPrivacy
	capShortPreamble
	capPBCC
	capChannelAgility
	capSpectrumMgmt
	capQoS
	capShortSlotTime
	capAPSD
	_ // reserved, bit 12
	capDSSSOFDM
	capDelayedBA
	capImmediateBA
)

func (c Capabilities) ESS() bool            { return uint16(c)&capESS != 0 }
func (c Capabilities) IBSS() bool           { return uint16(c)&capIBSS != 0 }
func (c Capabilities) CFPollable() bool     { return uint16(c)&capCFPollable != 0 }
func (c Capabilities) CFPollRequest() bool  { return uint16(c)&capCFPollRequest != 0 }
func (c Capabilities) Privacy() bool        { return uint16(c)&capPrivacy != 0 }
func (c Capabilities) ShortPreamble() bool  { return uint16(c)&capShortPreamble != 0 }
func (c Capabilities) PBCC() bool           { return uint16(c)&capPBCC != 0 }
func (c Capabilities) ChannelAgility() bool { return uint16(c)&capChannelAgility != 0 }
func (c Capabilities) SpectrumMgmt() bool   { return uint16(c)&capSpectrumMgmt != 0 }
func (c Capabilities) QoS() bool            { return uint16(c)&capQoS != 0 }
func (c Capabilities) ShortSlotTime() bool  { return uint16(c)&capShortSlotTime != 0 }
func (c Capabilities) APSD() bool           { return uint16(c)&capAPSD != 0 }
func (c Capabilities) DSSSOFDM() bool       { return uint16(c)&capDSSSOFDM != 0 }
func (c Capabilities) DelayedBA() bool      { return uint16(c)&capDelayedBA != 0 }
func (c Capabilities) ImmediateBA() bool    { return uint16(c)&capImmediateBA != 0 }
