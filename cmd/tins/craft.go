package main

import (
	"encoding/hex"
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/adriancostin6/libtins/pkg/dhcp"
	"github.com/adriancostin6/libtins/pkg/layers/ethernet"
	"github.com/adriancostin6/libtins/pkg/layers/ipv4"
	"github.com/adriancostin6/libtins/pkg/layers/udp"
)

var craftCmd = &cobra.Command{
	Use:   "craft",
	Short: "build a sample Ethernet/IPv4/UDP/DHCP discover packet and print its wire bytes",
	RunE:  runCraft,
}

func runCraft(cmd *cobra.Command, args []string) error {
	eth := ethernet.New(
		[6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		[6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		0, // stamped from the inner PDU's kind on serialize
	)

	ip := ipv4.New(ipv4.ProtoUDP, net.IPv4(0, 0, 0, 0), net.IPv4(255, 255, 255, 255))

	u := udp.New(udp.PortDHCPClient, udp.PortDHCPServer)

	d := dhcp.New()
	d.SetXID(0x12345678)
	if err := d.AddMessageType(dhcp.Discover); err != nil {
		return err
	}

	u.SetInner(d)
	ip.SetInner(u)
	eth.SetInner(ip)

	out, err := eth.Serialize()
	if err != nil {
		return fmt.Errorf("serializing: %w", err)
	}

	log.WithField("bytes", len(out)).Info("crafted packet")
	fmt.Println(hex.EncodeToString(out))
	return nil
}
