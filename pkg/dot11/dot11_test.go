package dot11

import "testing"

func TestBeaconLiteralBytes(t *testing.T) {
	buf := []byte{
		0x81, 0x01, 0x4F, 0x23, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x02, 0x03, 0x04, 0x05,
		0x06, 0x07, 0x00, 0x00, 0xFA, 0x01, 0x93, 0x28, 0x41, 0x23,
		0xAD, 0x1F, 0xFA, 0x14, 0x95, 0x20,
	}

	d, err := FromBytes(buf)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if d.Subtype() != SubtypeBeacon {
		t.Fatalf("Subtype() = %d, want %d", d.Subtype(), SubtypeBeacon)
	}

	beacon, ok := d.Inner().(*Beacon)
	if !ok {
		t.Fatalf("Inner() = %T, want *Beacon", d.Inner())
	}

	if beacon.Timestamp() != 0x1FAD2341289301FA {
		t.Errorf("Timestamp() = %#x, want 0x1FAD2341289301FA", beacon.Timestamp())
	}
	if beacon.Interval() != 0x14FA {
		t.Errorf("Interval() = %#x, want 0x14FA", beacon.Interval())
	}

	capability := beacon.Capability()
	wantTrue := map[string]bool{
		"ess":             capability.ESS(),
		"cf_poll":         capability.CFPollable(),
		"privacy":         capability.Privacy(),
		"channel_agility": capability.ChannelAgility(),
		"dsss_ofdm":       capability.DSSSOFDM(),
	}
	for name, got := range wantTrue {
		if !got {
			t.Errorf("capability.%s = false, want true", name)
		}
	}
	wantFalse := map[string]bool{
		"ibss":            capability.IBSS(),
		"cf_poll_request": capability.CFPollRequest(),
		"short_preamble":  capability.ShortPreamble(),
		"pbcc":            capability.PBCC(),
		"spectrum_mgmt":   capability.SpectrumMgmt(),
		"qos":             capability.QoS(),
		"short_slot_time": capability.ShortSlotTime(),
		"apsd":            capability.APSD(),
		"delayed_ba":      capability.DelayedBA(),
		"immediate_ba":    capability.ImmediateBA(),
	}
	for name, got := range wantFalse {
		if got {
			t.Errorf("capability.%s = true, want false", name)
		}
	}
}

func TestFromBytesFailsSoftOnTruncatedBeaconBody(t *testing.T) {
	buf := []byte{
		0x81, 0x01, 0x4F, 0x23, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x02, 0x03, 0x04, 0x05,
		0x06, 0x07, 0x00, 0x00, 0xFA, 0x01, // truncated beacon body, well short of 12 bytes
	}

	d, err := FromBytes(buf)
	if err != nil {
		t.Fatalf("FromBytes() error = %v, want nil (fail-soft on bad inner)", err)
	}
	if d.Inner() != nil {
		t.Errorf("Inner() = %v, want nil for an undecodable frame body", d.Inner())
	}
	want := string(buf[headerSize:])
	if string(d.Unparsed()) != want {
		t.Errorf("Unparsed() = %v, want %v", d.Unparsed(), []byte(want))
	}
}

func TestCountryElement(t *testing.T) {
	var elements ElementList
	buf := append([]byte{TagCountry, 6}, []byte("US \x01\x0D\x14")...)
	if err := elements.Parse(buf); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	country, ok := elements.Country()
	if !ok {
		t.Fatal("Country() ok = false, want true")
	}
	if country.Country != "US " {
		t.Errorf("Country.Country = %q, want %q", country.Country, "US ")
	}
	if len(country.Triples) != 1 {
		t.Fatalf("Country.Triples = %v, want one triple", country.Triples)
	}
	tr := country.Triples[0]
	if tr.FirstChannel != 1 || tr.NumChannels != 13 || tr.MaxTxPowerDBm != 20 {
		t.Errorf("Triples[0] = %+v, want {1,13,20}", tr)
	}
}

func TestElementListUnknownTagPreservesInsertionOrder(t *testing.T) {
	var elements ElementList
	elements.Add(TagSSID, []byte("test"))
	elements.Add(200, []byte{0x01}) // unknown tag
	elements.Add(TagSupportedRates, []byte{0x82, 0x04})

	out := elements.Serialize()
	var reparsed ElementList
	if err := reparsed.Parse(out); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	codes := make([]uint8, len(reparsed.entries))
	for i, e := range reparsed.entries {
		codes[i] = e.Code
	}
	want := []uint8{TagSSID, 200, TagSupportedRates}
	if len(codes) != len(want) {
		t.Fatalf("got %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d] = %d, want %d", i, codes[i], want[i])
		}
	}
}

func TestElementListCanonicalOrderWithoutUnknownTag(t *testing.T) {
	var elements ElementList
	elements.Add(TagSupportedRates, []byte{0x82})
	elements.Add(TagSSID, []byte("x"))

	out := elements.Serialize()
	var reparsed ElementList
	reparsed.Parse(out)
	if reparsed.entries[0].Code != TagSSID {
		t.Errorf("entries[0].Code = %d, want %d (canonical ascending order)", reparsed.entries[0].Code, TagSSID)
	}
}

func TestDSParameterSetElement(t *testing.T) {
	var elements ElementList
	elements.Add(TagDSParameterSet, []byte{0x01})

	ds, ok := elements.DSParameterSet()
	if !ok || ds != 1 {
		t.Errorf("DSParameterSet() = %d, %v, want 1, true", ds, ok)
	}
}

func TestBSSLoadChannelSwitchQuietElements(t *testing.T) {
	var elements ElementList
	elements.Add(TagBSSLoad, []byte{0x9f, 0x12, 42, 0xa2, 0xf5})
	elements.Add(TagChannelSwitch, []byte{13, 42, 98})
	elements.Add(TagQuiet, []byte{13, 42, 0x8f, 0x92, 0xad, 0xf1})

	load, ok := elements.BSSLoad()
	if !ok || load.StationCount != 0x129f || load.ChannelUtilization != 42 || load.AvailableAdmissionCapacity != 0xf5a2 {
		t.Errorf("BSSLoad() = %+v, %v, want {0x129f 42 0xf5a2}, true", load, ok)
	}

	cs, ok := elements.ChannelSwitch()
	if !ok || cs.SwitchMode != 13 || cs.NewChannel != 42 || cs.SwitchCount != 98 {
		t.Errorf("ChannelSwitch() = %+v, %v, want {13 42 98}, true", cs, ok)
	}

	quiet, ok := elements.Quiet()
	if !ok || quiet.Count != 13 || quiet.Period != 42 || quiet.Duration != 0x928f || quiet.Offset != 0xf1ad {
		t.Errorf("Quiet() = %+v, %v, want {13 42 0x928f 0xf1ad}, true", quiet, ok)
	}
}

func TestSupportedChannelsAndRequestInformationElements(t *testing.T) {
	var elements ElementList
	elements.Add(TagSupportedChannels, []byte{13, 19, 67, 159})
	elements.Add(TagRequestInformation, []byte{10, 15, 51, 42})

	channels, ok := elements.SupportedChannels()
	if !ok || len(channels) != 2 || channels[0] != (ChannelRange{13, 19}) || channels[1] != (ChannelRange{67, 159}) {
		t.Errorf("SupportedChannels() = %v, %v, want [{13 19} {67 159}], true", channels, ok)
	}

	info, ok := elements.RequestInformation()
	want := []uint8{10, 15, 51, 42}
	if !ok || len(info) != len(want) {
		t.Fatalf("RequestInformation() = %v, %v, want %v, true", info, ok, want)
	}
	for i := range want {
		if info[i] != want[i] {
			t.Errorf("RequestInformation()[%d] = %d, want %d", i, info[i], want[i])
		}
	}
}

func TestChallengeTextPowerConstraintERPInformationElements(t *testing.T) {
	var elements ElementList
	elements.Add(TagChallengeText, []byte("libtins ftw"))
	elements.Add(TagPowerConstraint, []byte{0x1e})
	elements.Add(TagERPInformation, []byte{0x1e})

	text, ok := elements.ChallengeText()
	if !ok || text != "libtins ftw" {
		t.Errorf("ChallengeText() = %q, %v, want %q, true", text, ok, "libtins ftw")
	}
	pc, ok := elements.PowerConstraint()
	if !ok || pc != 0x1e {
		t.Errorf("PowerConstraint() = %#x, %v, want 0x1e, true", pc, ok)
	}
	erp, ok := elements.ERPInformation()
	if !ok || erp != 0x1e {
		t.Errorf("ERPInformation() = %#x, %v, want 0x1e, true", erp, ok)
	}
}

func TestFHParameterSetAndIBSSParameterSetElements(t *testing.T) {
	var elements ElementList
	elements.Add(TagFHParameterSet, []byte{0x2f, 0x48, 67, 42, 0xa1})
	elements.Add(TagIBSSParameterSet, []byte{0xf3, 0x1e})

	fh, ok := elements.FHParameterSet()
	if !ok || fh.DwellTime != 0x482f || fh.HopSet != 67 || fh.HopPattern != 42 || fh.HopIndex != 0xa1 {
		t.Errorf("FHParameterSet() = %+v, %v, want {0x482f 67 42 0xa1}, true", fh, ok)
	}

	ibss, ok := elements.IBSSParameterSet()
	if !ok || ibss != 0x1ef3 {
		t.Errorf("IBSSParameterSet() = %#x, %v, want 0x1ef3, true", ibss, ok)
	}
}

func TestExtendedSupportedRates(t *testing.T) {
	var elements ElementList
	elements.Add(TagExtendedSupportedRates, []byte{0x30, 0x48, 0x60, 0x6c})
	rates, ok := elements.ExtendedSupportedRates()
	if !ok || len(rates) != 4 {
		t.Fatalf("ExtendedSupportedRates() = %v, %v", rates, ok)
	}
	want := []float64{24.0, 36.0, 48.0, 54.0}
	for i, r := range rates {
		if r.Mbps != want[i] {
			t.Errorf("rates[%d].Mbps = %v, want %v", i, r.Mbps, want[i])
		}
	}
}

func TestPowerCapabilityTPCReportQoSCapabilityElements(t *testing.T) {
	var elements ElementList
	elements.Add(TagPowerCapability, []byte{0xfa, 0xa2})
	elements.Add(TagTPCReport, []byte{42, 193})
	elements.Add(TagQoSCapability, []byte{0xfa})

	power, ok := elements.PowerCapability()
	if !ok || power.MinTxPower != 0xfa || power.MaxTxPower != 0xa2 {
		t.Errorf("PowerCapability() = %+v, %v, want {0xfa 0xa2}, true", power, ok)
	}

	tpc, ok := elements.TPCReport()
	if !ok || tpc.TxPower != 42 || tpc.LinkMargin != 193 {
		t.Errorf("TPCReport() = %+v, %v, want {42 193}, true", tpc, ok)
	}

	qos, ok := elements.QoSCapability()
	if !ok || qos != 0xfa {
		t.Errorf("QoSCapability() = %#x, %v, want 0xfa, true", qos, ok)
	}
}

func TestSupportedRatesBasicBit(t *testing.T) {
	var elements ElementList
	elements.Add(TagSupportedRates, []byte{0x82, 0x04})
	rates, ok := elements.SupportedRates()
	if !ok || len(rates) != 2 {
		t.Fatalf("SupportedRates() = %v, %v", rates, ok)
	}
	if rates[0].Mbps != 1.0 || !rates[0].Basic {
		t.Errorf("rates[0] = %+v, want {1.0, true}", rates[0])
	}
	if rates[1].Mbps != 2.0 || rates[1].Basic {
		t.Errorf("rates[1] = %+v, want {2.0, false}", rates[1])
	}
}
