// Package protocols wires up the full protocol set by side-effect
// import: every concrete layer package registers its demux rows and
// DLT constructors from its own init(), the same way the standard
// library's image and compress packages register codecs. Importing
// this package (for its side effects) is the one-line way for a
// caller to get the whole demultiplexer populated without enumerating
// every layer package by hand.
package protocols

import (
	_ "github.com/adriancostin6/libtins/pkg/dhcp"
	_ "github.com/adriancostin6/libtins/pkg/dot11"
	_ "github.com/adriancostin6/libtins/pkg/layers/arp"
	_ "github.com/adriancostin6/libtins/pkg/layers/ethernet"
	_ "github.com/adriancostin6/libtins/pkg/layers/icmp"
	_ "github.com/adriancostin6/libtins/pkg/layers/ipv4"
	_ "github.com/adriancostin6/libtins/pkg/layers/llc"
	_ "github.com/adriancostin6/libtins/pkg/layers/loopback"
	_ "github.com/adriancostin6/libtins/pkg/layers/raw"
	_ "github.com/adriancostin6/libtins/pkg/layers/tcp"
	_ "github.com/adriancostin6/libtins/pkg/layers/udp"
)
