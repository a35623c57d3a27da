package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adriancostin6/libtins/pkg/layers/ethernet"
	"github.com/adriancostin6/libtins/pkg/layers/ipv4"
	"github.com/adriancostin6/libtins/pkg/layers/raw"
	"github.com/adriancostin6/libtins/pkg/pdu"
)

func TestDescribeChain(t *testing.T) {
	eth := ethernet.New([6]byte{}, [6]byte{}, 0)
	ip := ipv4.New(ipv4.ProtoUDP, nil, nil)
	eth.SetInner(ip)

	assert.Equal(t, "ETHERNET -> IP", describe(eth))
}

func TestDescribeSingleLayer(t *testing.T) {
	assert.Equal(t, "RAW", describe(raw.New([]byte{1})))
}

func TestLogrusFieldsIncludesIndexAndDLT(t *testing.T) {
	fields := logrusFields(3, pdu.DLTEN10MB, assert.AnError)
	assert.Equal(t, 3, fields["index"])
	assert.Equal(t, pdu.DLTEN10MB, fields["dlt"])
	assert.Equal(t, assert.AnError, fields["error"])
}
