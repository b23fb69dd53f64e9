package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	// Transfer flags
	bulkTimeout time.Duration
	retries     int
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "mwflash",
	Short: "Marvell Avastar USB firmware loader",
	Long: `mwflash - firmware loader for USB-attached Marvell Avastar wireless chips.

Speaks the vendor bulk block-transfer protocol to download a firmware
image onto the chip: a one-shot chip revision probe followed by a
block-by-block send/ack loop with bounded transport retries.

Supported devices (vendor id 1286):
  2040  Avastar 88W8782U
  2045  Avastar 88W8897

A failed download is not resumable; rerun to restart from block zero.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&bulkTimeout, "timeout", 100*time.Millisecond, "Per-transfer bulk timeout")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", 3, "Transport retry budget per block")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every frame exchanged")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
