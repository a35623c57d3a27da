package pdu

// Kind discriminates the concrete protocol a PDU carries. The set is
// closed: adding a protocol means adding a constant here plus a demux
// table entry, never reopening the enumeration at runtime.
type Kind uint16

const (
	KindRaw Kind = iota
	KindLoopback
	KindEthernet
	KindARP
	KindLLC
	KindIPv4
	KindTCP
	KindUDP
	KindICMP
	KindDHCP
	KindDot11
	KindDot11ManagementFrame
	KindDot11Beacon
	KindDot11ProbeRequest
	KindDot11ProbeResponse
)

var kindNames = map[Kind]string{
	KindRaw:                  "RAW",
	KindLoopback:              "LOOPBACK",
	KindEthernet:              "ETHERNET",
	KindARP:                   "ARP",
	KindLLC:                   "LLC",
	KindIPv4:                  "IP",
	KindTCP:                   "TCP",
	KindUDP:                   "UDP",
	KindICMP:                  "ICMP",
	KindDHCP:                  "DHCP",
	KindDot11:                 "DOT11",
	KindDot11ManagementFrame:  "DOT11_MANAGEMENT",
	KindDot11Beacon:           "DOT11_BEACON",
	KindDot11ProbeRequest:     "DOT11_PROBE_REQUEST",
	KindDot11ProbeResponse:    "DOT11_PROBE_RESPONSE",
}

// String implements fmt.Stringer for use in logs and test failures.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}
