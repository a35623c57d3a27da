// Package main implements tins, a thin demonstration CLI over the
// pdu engine: it reads captured frames from a pcap file and decodes
// them, or crafts a sample packet and prints its wire bytes. It is not
// a sniffer or a security tool — no session tracking, no reassembly,
// no application-layer behavior.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:     "tins",
	Short:   "tins decodes and crafts packets on top of the pdu engine",
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(craftCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
