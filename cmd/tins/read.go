package main

import (
	"fmt"
	"os"

	"github.com/google/gopacket/pcapgo"
	"github.com/spf13/cobra"

	"github.com/adriancostin6/libtins/pkg/pdu"
	_ "github.com/adriancostin6/libtins/pkg/protocols"
)

var readCmd = &cobra.Command{
	Use:   "read [pcap file]",
	Short: "decode every frame in a pcap file through the pdu engine",
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

func runRead(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	reader, err := pcapgo.NewReader(f)
	if err != nil {
		return fmt.Errorf("reading pcap header: %w", err)
	}

	dlt := pdu.DLT(uint32(reader.LinkType()))
	log.WithField("dlt", dlt).Debug("pcap link type")

	index := 0
	for {
		data, _, err := reader.ReadPacketData()
		if err != nil {
			break
		}
		index++

		p, err := pdu.FromBytes(dlt, data)
		if err != nil {
			log.WithFields(logrusFields(index, dlt, err)).Warn("decode failed")
			continue
		}
		fmt.Println(describe(p))
	}
	return nil
}

func describe(p pdu.PDU) string {
	s := p.Kind().String()
	for cur := p.Inner(); cur != nil; cur = cur.Inner() {
		s += " -> " + cur.Kind().String()
	}
	return s
}

func logrusFields(index int, dlt pdu.DLT, err error) map[string]interface{} {
	return map[string]interface{}{
		"index": index,
		"dlt":   dlt,
		"error": err,
	}
}
